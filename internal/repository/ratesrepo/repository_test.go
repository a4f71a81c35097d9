package ratesrepo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Philanthropists/daily-briefing/internal/types"
)

const ratesBody = `{
	"result": "success",
	"base_code": "USD",
	"time_last_update_unix": 1700352001,
	"rates": {
		"USD": 1,
		"EUR": 0.91,
		"COP": 4112.33
	}
}`

func Test_GetRatesTableDecodesThePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/latest/USD", r.URL.Path)
		_, _ = w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	repo := RatesRepository{Client: srv.Client(), Host: srv.URL}

	table, err := repo.GetRatesTable(context.Background(), "usd")
	assert.NoError(t, err)
	assert.Equal(t, "USD", table.Base)
	assert.Equal(t, time.Unix(1700352001, 0).UTC(), table.AsOf)
	assert.InDelta(t, 4112.33, table.Rates["COP"], 1e-9)
}

func Test_GetRatesTableRejectsInvalidBaseCodes(t *testing.T) {
	repo := RatesRepository{}

	for _, base := range []string{"", "US", "DOLLAR", "U$D"} {
		_, err := repo.GetRatesTable(context.Background(), base)

		var unsupported types.ErrUnsupportedCurrency
		assert.ErrorAs(t, err, &unsupported, "base %q", base)
	}
}

func Test_GetRatesTableFailsOnApiLevelErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	}))
	defer srv.Close()

	repo := RatesRepository{Client: srv.Client(), Host: srv.URL}

	_, err := repo.GetRatesTable(context.Background(), "USD")
	assert.Error(t, err)
}

func Test_GetRatesTableFailsOnAnEmptyTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","base_code":"USD","rates":{}}`))
	}))
	defer srv.Close()

	repo := RatesRepository{Client: srv.Client(), Host: srv.URL}

	_, err := repo.GetRatesTable(context.Background(), "USD")
	assert.Error(t, err)
}
