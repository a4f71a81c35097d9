package briefing

import (
	"context"

	"go.uber.org/zap"

	"github.com/Philanthropists/daily-briefing/internal/repository/historyrepo"
	"github.com/Philanthropists/daily-briefing/internal/repository/ratesrepo"
	"github.com/Philanthropists/daily-briefing/internal/services/rateserv"
	"github.com/Philanthropists/daily-briefing/internal/store/nosql/dynamodb"
	"github.com/Philanthropists/daily-briefing/internal/types"
	"github.com/Philanthropists/daily-briefing/pkg/pipe"
	"github.com/Philanthropists/daily-briefing/pkg/result"
)

func (s *Briefing) rates() ratesService {
	if s.Rates == nil {
		s.Rates = &rateserv.Service{
			Repo:       ratesrepo.RatesRepository{},
			Goroutines: int(s.goroutines()),
		}
	}

	return s.Rates
}

// fetchRates kicks off the exchange-rate lookup. Returns nil when rates are
// disabled.
func (s *Briefing) fetchRates(ctx context.Context) <-chan result.Result[[]types.Rate] {
	opts := s.Config.RateOptions
	if !opts.Enabled {
		return nil
	}

	serv := s.rates()

	return pipe.Await(func() ([]types.Rate, error) {
		return serv.GetRates(ctx, opts.Base, opts.Quotes)
	})
}

func (s *Briefing) history(ctx context.Context) (historyWriter, error) {
	if s.History == nil {
		opts := s.Config.HistoryOptions

		store, err := dynamodb.NewDynamoDBClient(ctx, opts.Region)
		if err != nil {
			return nil, err
		}

		s.History = historyrepo.HistoryRepository{
			Store: store,
			Table: opts.Table,
		}
	}

	return s.History, nil
}

// recordHistory appends the fetched rates to the configured history table.
// Failures are logged, never fatal to the briefing itself.
func (s *Briefing) recordHistory(ctx context.Context, rates []types.Rate) {
	if !s.Config.HistoryOptions.Enabled || s.DryRun {
		return
	}

	repo, err := s.history(ctx)
	if err != nil {
		s.log().Error("could not create history store", zap.Error(err))
		return
	}

	if err := repo.SaveRates(ctx, rates); err != nil {
		s.log().Error("could not save rate history", zap.Error(err))
	}
}
