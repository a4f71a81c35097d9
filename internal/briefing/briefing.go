package briefing

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	briefingtypes "github.com/Philanthropists/daily-briefing/internal/briefing/types"
	"github.com/Philanthropists/daily-briefing/internal/localize"
	"github.com/Philanthropists/daily-briefing/internal/logging"
	"github.com/Philanthropists/daily-briefing/internal/notifications"
	"github.com/Philanthropists/daily-briefing/internal/types"
)

type factsRepository interface {
	GetRandomFact(ctx context.Context, language string) (types.Fact, error)
}

type ratesService interface {
	GetRates(ctx context.Context, base string, quotes []string) ([]types.Rate, error)
}

type historyWriter interface {
	SaveRates(ctx context.Context, rates []types.Rate) error
}

// Briefing runs one briefing cycle: fetch a fact and the configured exchange
// rates, render everything for the configured locale, then deliver.
//
// Facts, Rates and History default to the real remote implementations when
// left nil.
type Briefing struct {
	Config briefingtypes.Config
	DryRun bool

	Facts   factsRepository
	Rates   ratesService
	History historyWriter

	Log        *zap.Logger
	Goroutines uint
}

func (s *Briefing) log() *zap.Logger {
	if s.Log == nil {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Panicf("could not create logger: %v", err)
		}
		s.Log = logger
	}

	return s.Log
}

func (s *Briefing) goroutines() uint {
	if s.Goroutines == 0 {
		cpus := runtime.NumCPU()
		return uint(cpus)
	}

	return s.Goroutines
}

func (s *Briefing) location() *time.Location {
	loc, err := time.LoadLocation(s.Config.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

func (s *Briefing) Run(ctx context.Context) error {
	s.log().Info("running briefing", zap.Bool("dryrun", s.DryRun))

	renderer := localize.NewRenderer(s.Config.Locale)

	notifStore := s.setupNotifications()
	defer func() {
		if err := notifStore.Close(); err != nil {
			s.log().Error("could not flush notifications", zap.Error(err))
		}
	}()

	reportFailure := func(err error) {
		localized := renderer.Error(err)
		fmt.Println(localized)

		if perr := notifStore.PushError(logging.New(), localized); perr != nil {
			s.log().Warn("could not queue failure notification", zap.Error(perr))
		}
	}

	// both fetches are single-shot and independent, so they run side by side
	factCh := s.fetchFact(ctx)
	ratesCh := s.fetchRates(ctx)

	b := types.Briefing{
		AsOf: time.Now().In(s.location()),
	}

	var failures []error

	if factCh != nil {
		res := <-factCh
		res.Match(
			func(f types.Fact) { b.Fact = &f },
			func(err error) {
				failures = append(failures, err)
				reportFailure(err)
			},
		)
	}

	if ratesCh != nil {
		res := <-ratesCh
		res.Match(
			func(rates []types.Rate) {
				b.Rates = rates
				s.recordHistory(ctx, rates)
			},
			func(err error) {
				failures = append(failures, err)
				reportFailure(err)
			},
		)
	}

	requested := boolToInt(factCh != nil) + boolToInt(ratesCh != nil)
	if requested > 0 && len(failures) == requested {
		return errs.Combine(failures...)
	}

	out := renderer.Briefing(b)
	fmt.Println(out)

	if err := notifStore.Push(out); err != nil {
		s.log().Warn("could not queue briefing notification", zap.Error(err))
	}

	return nil
}

func (s *Briefing) setupNotifications() *notifications.Store {
	if s.DryRun {
		return &notifications.Store{}
	}

	return s.notificationStore()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
