package ratesrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/daily-briefing/internal/repository/ratesrepo/ratesrepotypes"
	"github.com/Philanthropists/daily-briefing/internal/types"
	"github.com/Philanthropists/daily-briefing/internal/types/currency"
	"github.com/Philanthropists/daily-briefing/internal/util/rest"
)

const (
	defaultHost = "https://open.er-api.com"
	latestPath  = "v6/latest"
)

type RatesRepository struct {
	Client rest.Doer
	Host   string
}

func (r RatesRepository) host() string {
	if r.Host == "" {
		return defaultHost
	}
	return r.Host
}

type ratesPayload struct {
	Result             string             `json:"result"`
	BaseCode           string             `json:"base_code"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	Rates              map[string]float64 `json:"rates"`
}

// GetRatesTable fetches the full exchange-rate table for base.
// One request, no retries.
func (r RatesRepository) GetRatesTable(ctx context.Context, base string) (ratesrepotypes.Table, error) {
	base, ok := currency.NormalizeCode(base)
	if !ok {
		return ratesrepotypes.Table{}, types.ErrUnsupportedCurrency{Code: base}
	}

	url := fmt.Sprintf("%s/%s/%s", r.host(), latestPath, base)

	var payload ratesPayload
	if err := rest.GetJSON(ctx, r.Client, url, &payload); err != nil {
		return ratesrepotypes.Table{}, err
	}

	if payload.Result != "success" {
		return ratesrepotypes.Table{}, errs.New("rates api reported %q for base %s", payload.Result, base)
	}

	if len(payload.Rates) == 0 {
		return ratesrepotypes.Table{}, errs.New("rates api returned an empty table for base %s", base)
	}

	return ratesrepotypes.Table{
		Base:  payload.BaseCode,
		AsOf:  time.Unix(payload.TimeLastUpdateUnix, 0).UTC(),
		Rates: payload.Rates,
	}, nil
}
