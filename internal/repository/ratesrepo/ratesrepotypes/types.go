package ratesrepotypes

import "time"

// Table is one snapshot of the exchange-rate table for a base currency.
type Table struct {
	Base  string
	AsOf  time.Time
	Rates map[string]float64
}
