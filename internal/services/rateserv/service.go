package rateserv

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/zeebo/errs"

	"github.com/Philanthropists/daily-briefing/internal/logging"
	"github.com/Philanthropists/daily-briefing/internal/repository/ratesrepo/ratesrepotypes"
	"github.com/Philanthropists/daily-briefing/internal/types"
	"github.com/Philanthropists/daily-briefing/internal/types/currency"
	"github.com/Philanthropists/daily-briefing/internal/util/slices"
	"github.com/Philanthropists/daily-briefing/pkg/pipe"
	"github.com/Philanthropists/daily-briefing/pkg/result"
)

const defaultCacheTTL = 5 * time.Minute

type ratesRepository interface {
	GetRatesTable(ctx context.Context, base string) (ratesrepotypes.Table, error)
}

type inMemoryCache interface {
	Set(k string, v any, t time.Duration)
	Get(k string) (any, bool)
}

type Service struct {
	Repo       ratesRepository
	CacheTTL   time.Duration
	Goroutines int

	once  sync.Once
	cache inMemoryCache
}

func (s *Service) init() {
	s.once.Do(func() {
		ttl := s.CacheTTL
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}

		s.cache = cache.New(ttl, time.Minute)
	})
}

func (s *Service) goroutines() int {
	if s.Goroutines <= 0 {
		return 4
	}
	return s.Goroutines
}

func (s *Service) table(ctx context.Context, base string) (ratesrepotypes.Table, error) {
	s.init()

	if v, ok := s.cache.Get(base); ok {
		return v.(ratesrepotypes.Table), nil
	}

	table, err := doCancelableOperation(ctx, func() (ratesrepotypes.Table, error) {
		return s.Repo.GetRatesTable(ctx, base)
	})
	if err != nil {
		return ratesrepotypes.Table{}, err
	}

	s.cache.Set(base, table, cache.DefaultExpiration)

	return table, nil
}

// GetRates resolves each requested quote currency against the base table.
// Quote failures are not fatal unless every quote fails.
func (s *Service) GetRates(ctx context.Context, base string, quotes []string) ([]types.Rate, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.New("context finished: %w", err)
	}

	log := logging.FromContext(ctx)

	base, ok := currency.NormalizeCode(base)
	if !ok {
		return nil, types.ErrUnsupportedCurrency{Code: base}
	}

	normalized := make([]string, 0, len(quotes))
	for _, q := range quotes {
		// invalid codes stay in, lookup reports them individually
		nq, _ := currency.NormalizeCode(q)
		normalized = append(normalized, nq)
	}

	quotes = slices.Dedup(normalized)
	if len(quotes) == 0 {
		return nil, errs.New("no quote currencies were requested")
	}

	log.Debug("resolving quotes",
		logging.String("base", base),
		logging.Strings("quotes", quotes))

	table, err := s.table(ctx, base)
	if err != nil {
		return nil, err
	}

	resolved := pipe.ConcurrentMap(
		ctx.Done(), s.goroutines(),
		pipe.FromSlice(ctx.Done(), quotes),
		func(quote string) result.Result[types.Rate] {
			return lookup(table, quote)
		})

	var rates []types.Rate
	var errorsFound []error
	for res := range resolved {
		res.Match(
			func(r types.Rate) { rates = append(rates, r) },
			func(err error) { errorsFound = append(errorsFound, err) },
		)
	}

	// a canceled context drains the pipeline empty, which must not read
	// as an empty success
	if len(rates)+len(errorsFound) < len(quotes) {
		if err := ctx.Err(); err != nil {
			return nil, errs.New("context finished: %w", err)
		}
	}

	if len(rates) == 0 {
		if len(errorsFound) == 0 {
			return nil, errs.New("no rates could be retrieved")
		}
		return nil, errs.Combine(errorsFound...)
	}

	if len(errorsFound) > 0 {
		log.Warn("some rates could not be retrieved",
			logging.Int("failures", len(errorsFound)),
			logging.Any("errors", errorsFound))
	}

	sort.Slice(rates, func(i, j int) bool {
		return rates[i].Quote < rates[j].Quote
	})

	return rates, nil
}

func lookup(table ratesrepotypes.Table, quote string) result.Result[types.Rate] {
	q, ok := currency.NormalizeCode(quote)
	if !ok {
		return result.Err[types.Rate](types.ErrUnsupportedCurrency{Code: quote})
	}

	value, ok := table.Rates[q]
	if !ok {
		return result.Err[types.Rate](types.ErrUnsupportedCurrency{Code: q})
	}

	return result.Ok(types.Rate{
		Base:  table.Base,
		Quote: q,
		Value: value,
		AsOf:  table.AsOf,
	})
}

func doCancelableOperation[T any](ctx context.Context, op func() (T, error)) (T, error) {
	type response struct {
		Value T
		Err   error
	}

	resp := make(chan response, 1)
	go func() {
		defer close(resp)
		v, err := op()
		resp <- response{
			Value: v,
			Err:   err,
		}
	}()

	var zeroValue T

	select {
	case <-ctx.Done():
		return zeroValue, errs.New("context finished: %w", ctx.Err())

	case r := <-resp:
		if r.Err != nil {
			return zeroValue, r.Err
		}

		return r.Value, nil
	}
}
