package briefing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	briefingtypes "github.com/Philanthropists/daily-briefing/internal/briefing/types"
	"github.com/Philanthropists/daily-briefing/internal/types"
)

type stubFacts struct {
	fact types.Fact
	err  error
}

func (s stubFacts) GetRandomFact(ctx context.Context, language string) (types.Fact, error) {
	return s.fact, s.err
}

type stubRates struct {
	rates []types.Rate
	err   error
}

func (s stubRates) GetRates(ctx context.Context, base string, quotes []string) ([]types.Rate, error) {
	return s.rates, s.err
}

type recordingHistory struct {
	saved [][]types.Rate
}

func (h *recordingHistory) SaveRates(ctx context.Context, rates []types.Rate) error {
	h.saved = append(h.saved, rates)
	return nil
}

func Test_RunFailsOnlyWhenEveryRequestedFetchFails(t *testing.T) {
	fact := types.Fact{ID: "1", Text: "honey never spoils", Language: "en"}
	rates := []types.Rate{{Base: "USD", Quote: "EUR", Value: 0.91, AsOf: time.Now()}}

	testCases := []struct {
		name        string
		factEnabled bool
		rateEnabled bool
		facts       factsRepository
		rateServ    ratesService
		wantErr     bool
	}{
		{
			name: "nothing requested",
		},
		{
			name:        "everything succeeds",
			factEnabled: true,
			rateEnabled: true,
			facts:       stubFacts{fact: fact},
			rateServ:    stubRates{rates: rates},
		},
		{
			name:        "fact fails but rates survive",
			factEnabled: true,
			rateEnabled: true,
			facts:       stubFacts{err: assert.AnError},
			rateServ:    stubRates{rates: rates},
		},
		{
			name:        "rates fail but the fact survives",
			factEnabled: true,
			rateEnabled: true,
			facts:       stubFacts{fact: fact},
			rateServ:    stubRates{err: assert.AnError},
		},
		{
			name:        "every requested fetch fails",
			factEnabled: true,
			rateEnabled: true,
			facts:       stubFacts{err: assert.AnError},
			rateServ:    stubRates{err: assert.AnError},
			wantErr:     true,
		},
		{
			name:        "the only requested fetch fails",
			rateEnabled: true,
			rateServ:    stubRates{err: assert.AnError},
			wantErr:     true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			b := Briefing{
				Config: briefingtypes.Config{
					Locale:      "en",
					FactOptions: briefingtypes.FactOptions{Enabled: tc.factEnabled},
					RateOptions: briefingtypes.RateOptions{
						Enabled: tc.rateEnabled,
						Base:    "USD",
						Quotes:  []string{"EUR"},
					},
				},
				DryRun: true,
				Facts:  tc.facts,
				Rates:  tc.rateServ,
				Log:    zap.NewNop(),
			}

			err := b.Run(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_RunRecordsHistoryAfterASuccessfulRatesFetch(t *testing.T) {
	rates := []types.Rate{{Base: "USD", Quote: "COP", Value: 4112.33, AsOf: time.Now()}}
	history := &recordingHistory{}

	b := Briefing{
		Config: briefingtypes.Config{
			Locale: "en",
			RateOptions: briefingtypes.RateOptions{
				Enabled: true,
				Base:    "USD",
				Quotes:  []string{"COP"},
			},
			HistoryOptions: briefingtypes.HistoryOptions{
				Enabled: true,
				Table:   "rate-history",
			},
		},
		Rates:   stubRates{rates: rates},
		History: history,
		Log:     zap.NewNop(),
	}

	assert.NoError(t, b.Run(context.Background()))
	assert.Equal(t, [][]types.Rate{rates}, history.saved)
}

func Test_RunSkipsHistoryOnADryRun(t *testing.T) {
	history := &recordingHistory{}

	b := Briefing{
		Config: briefingtypes.Config{
			Locale: "en",
			RateOptions: briefingtypes.RateOptions{
				Enabled: true,
				Base:    "USD",
				Quotes:  []string{"EUR"},
			},
			HistoryOptions: briefingtypes.HistoryOptions{
				Enabled: true,
				Table:   "rate-history",
			},
		},
		DryRun:  true,
		Rates:   stubRates{rates: []types.Rate{{Base: "USD", Quote: "EUR", Value: 0.91}}},
		History: history,
		Log:     zap.NewNop(),
	}

	assert.NoError(t, b.Run(context.Background()))
	assert.Empty(t, history.saved)
}
