package historyrepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/daily-briefing/internal/logging"
	"github.com/Philanthropists/daily-briefing/internal/types"
	"github.com/Philanthropists/daily-briefing/internal/util/slices"
	"github.com/Philanthropists/daily-briefing/pkg/pipe"
	"github.com/Philanthropists/daily-briefing/pkg/result"
)

const maxBatchSize = 25

type nosqlStore interface {
	Scan(ctx context.Context, table string) ([]map[string]any, error)
	GetItem(ctx context.Context, table string, key map[string]any) (map[string]any, error)
	PutItem(ctx context.Context, table string, item any) error
}

// HistoryRepository appends fetched rate observations to a NoSQL table so
// past briefings can be inspected later.
type HistoryRepository struct {
	Store nosqlStore
	Table string
}

type rateItem struct {
	PK    string  `dynamodbav:"PK"`
	Base  string  `dynamodbav:"Base"`
	Quote string  `dynamodbav:"Quote"`
	Value float64 `dynamodbav:"Value"`
	AsOf  string  `dynamodbav:"AsOf"`
}

func itemFromRate(r types.Rate) rateItem {
	return rateItem{
		PK:    fmt.Sprintf("%s#%s#%s", r.Base, r.Quote, r.AsOf.Format("2006-01-02")),
		Base:  r.Base,
		Quote: r.Quote,
		Value: r.Value,
		AsOf:  r.AsOf.Format(time.RFC3339),
	}
}

type batchOutcome struct {
	written int
	skipped int
}

// SaveRates writes every observation not already present, batching the writes
// so a large quote list does not serialize into one long chain of requests.
// An observation with the same base, quote and date as a stored one is
// skipped, keeping reruns of the same day idempotent.
func (r HistoryRepository) SaveRates(ctx context.Context, rates []types.Rate) error {
	if r.Table == "" {
		return errs.New("history table is not configured")
	}

	if len(rates) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return errs.New("context finished: %w", err)
	}

	log := logging.FromContext(ctx)

	groups := (len(rates) + maxBatchSize - 1) / maxBatchSize
	batches, err := slices.Split(groups, rates)
	if err != nil {
		return err
	}

	saved := pipe.ConcurrentMap(
		ctx.Done(), len(batches),
		pipe.FromSlice(ctx.Done(), batches),
		func(batch []types.Rate) result.Result[batchOutcome] {
			var out batchOutcome
			for _, rate := range batch {
				item := itemFromRate(rate)

				stored, err := r.Store.GetItem(ctx, r.Table, map[string]any{"PK": item.PK})
				if err != nil {
					return result.Err[batchOutcome](err)
				}
				if len(stored) > 0 {
					out.skipped++
					continue
				}

				if err := r.Store.PutItem(ctx, r.Table, item); err != nil {
					return result.Err[batchOutcome](err)
				}
				out.written++
			}
			return result.Ok(out)
		})

	var written, skipped int
	var errorsFound []error
	for res := range saved {
		res.Match(
			func(out batchOutcome) {
				written += out.written
				skipped += out.skipped
			},
			func(err error) { errorsFound = append(errorsFound, err) },
		)
	}

	log.Debug("saved rate history",
		logging.Int("written", written),
		logging.Int("skipped", skipped),
		logging.Int("failed_batches", len(errorsFound)))

	if err := errs.Combine(errorsFound...); err != nil {
		return err
	}

	// a canceled context drains the pipeline before every batch reports,
	// which must not read as a complete write
	if written+skipped < len(rates) {
		if err := ctx.Err(); err != nil {
			return errs.New("context finished: %w", err)
		}
		return errs.New("only %d of %d observations were handled", written+skipped, len(rates))
	}

	return nil
}

// ListRates reads back every stored observation, oldest first.
func (r HistoryRepository) ListRates(ctx context.Context) ([]types.Rate, error) {
	if r.Table == "" {
		return nil, errs.New("history table is not configured")
	}

	items, err := r.Store.Scan(ctx, r.Table)
	if err != nil {
		return nil, err
	}

	rates := make([]types.Rate, 0, len(items))
	for _, item := range items {
		rate, err := rateFromItem(item)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}

	sort.Slice(rates, func(i, j int) bool {
		if !rates[i].AsOf.Equal(rates[j].AsOf) {
			return rates[i].AsOf.Before(rates[j].AsOf)
		}
		return rates[i].Quote < rates[j].Quote
	})

	return rates, nil
}

func rateFromItem(item map[string]any) (types.Rate, error) {
	base, okBase := item["Base"].(string)
	quote, okQuote := item["Quote"].(string)
	value, okValue := item["Value"].(float64)
	asOfRaw, okAsOf := item["AsOf"].(string)
	if !okBase || !okQuote || !okValue || !okAsOf {
		return types.Rate{}, errs.New("stored item %v has an unexpected shape", item["PK"])
	}

	asOf, err := time.Parse(time.RFC3339, asOfRaw)
	if err != nil {
		return types.Rate{}, errs.Wrap(err)
	}

	return types.Rate{
		Base:  base,
		Quote: quote,
		Value: value,
		AsOf:  asOf,
	}, nil
}
