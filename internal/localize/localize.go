// Package localize renders briefing output and domain errors in the locale
// requested by the user, falling back to English for unknown tags.
package localize

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	xcurrency "golang.org/x/text/currency"

	"github.com/Philanthropists/daily-briefing/internal/types"
	"github.com/Philanthropists/daily-briefing/internal/types/currency"
)

func init() {
	es := language.Spanish

	_ = message.SetString(es, "Did you know? %s", "¿Sabías que...? %s")
	_ = message.SetString(es, "No fact available today", "Hoy no hay dato curioso disponible")
	_ = message.SetString(es, "Daily briefing for %s", "Resumen diario para %s")
	_ = message.SetString(es, "request to %s failed", "falló la petición a %s")
	_ = message.SetString(es, "unexpected status %d from %s", "estado inesperado %d de %s")
	_ = message.SetString(es, "could not decode the response", "no fue posible decodificar la respuesta")
	_ = message.SetString(es, "currency %s is not supported", "la moneda %s no está soportada")
	_ = message.SetString(es, "something unexpected went wrong", "algo inesperado salió mal")
}

type Renderer struct {
	tag language.Tag
	p   *message.Printer
}

// NewRenderer builds a renderer for the given BCP 47 locale tag.
func NewRenderer(locale string) Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return Renderer{
		tag: tag,
		p:   message.NewPrinter(tag),
	}
}

func (r Renderer) Tag() language.Tag {
	return r.tag
}

// Amount formats a monetary amount with its currency symbol. Codes outside
// ISO 4217 fall back to the plain Amount representation.
func (r Renderer) Amount(a currency.Amount) string {
	unit, err := xcurrency.ParseISO(a.Code)
	if err != nil {
		return a.String()
	}

	return r.p.Sprintf("%v", xcurrency.Symbol(unit.Amount(a.Number)))
}

func (r Renderer) Rate(rate types.Rate) string {
	value := number.Decimal(rate.Value,
		number.MaxFractionDigits(4),
		number.MinFractionDigits(2))

	return r.p.Sprintf("1 %s = %v %s", rate.Base, value, rate.Quote)
}

func (r Renderer) Fact(fact types.Fact) string {
	return r.p.Sprintf("Did you know? %s", fact.Text)
}

// Error maps the closed set of domain error kinds to a localized message.
func (r Renderer) Error(err error) string {
	var transport types.ErrTransport
	if errors.As(err, &transport) {
		return r.p.Sprintf("request to %s failed", transport.URL)
	}

	var badStatus types.ErrBadStatus
	if errors.As(err, &badStatus) {
		return r.p.Sprintf("unexpected status %d from %s", badStatus.StatusCode, badStatus.URL)
	}

	var decode types.ErrDecode
	if errors.As(err, &decode) {
		return r.p.Sprintf("could not decode the response")
	}

	var unsupported types.ErrUnsupportedCurrency
	if errors.As(err, &unsupported) {
		return r.p.Sprintf("currency %s is not supported", unsupported.Code)
	}

	return r.p.Sprintf("something unexpected went wrong")
}

// Briefing renders the whole briefing as a multi-line block.
func (r Renderer) Briefing(b types.Briefing) string {
	var lines []string

	lines = append(lines, r.p.Sprintf("Daily briefing for %s", b.AsOf.Format("2006-01-02")))

	if b.Fact != nil {
		lines = append(lines, r.Fact(*b.Fact))
	} else {
		lines = append(lines, r.p.Sprintf("No fact available today"))
	}

	for _, rate := range b.Rates {
		lines = append(lines, r.Rate(rate))
	}

	return strings.Join(lines, "\n")
}
