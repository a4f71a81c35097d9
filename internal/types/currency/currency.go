package currency

import (
	"fmt"
	"strings"
)

type Amount struct {
	Code   string
	Number float64
}

func (a Amount) String() string {
	return fmt.Sprintf("$%.2f %s", a.Number, a.Code)
}

// NormalizeCode uppercases a currency code and reports whether it looks like
// a valid ISO 4217 alphabetic code.
func NormalizeCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return code, false
	}

	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return code, false
		}
	}

	return code, true
}
