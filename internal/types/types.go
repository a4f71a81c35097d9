package types

import (
	"time"

	"github.com/Philanthropists/daily-briefing/internal/types/currency"
)

type ContextKey string

const Version ContextKey = "version"

// Fact is a single trivia entry as served by the random-fact API.
type Fact struct {
	ID       string
	Text     string
	Source   string
	Language string
}

// Rate is one observed exchange rate: one unit of Base expressed in Quote.
type Rate struct {
	Base  string
	Quote string
	Value float64
	AsOf  time.Time
}

func (r Rate) Amount() currency.Amount {
	return currency.Amount{
		Code:   r.Quote,
		Number: r.Value,
	}
}

// Briefing is the composed output of one run: a fact plus the rates that
// could be fetched. Either part may be missing when its fetch failed.
type Briefing struct {
	Fact  *Fact
	Rates []Rate
	AsOf  time.Time
}
