package types

import "fmt"

type ErrTransport struct {
	URL   string
	Cause error
}

func (e ErrTransport) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Cause)
}

func (e ErrTransport) Unwrap() error {
	return e.Cause
}

type ErrBadStatus struct {
	URL        string
	StatusCode int
}

func (e ErrBadStatus) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

type ErrDecode struct {
	Cause error
	Body  []byte
}

func (e ErrDecode) Error() string {
	return fmt.Sprintf("error decoding response: %s", e.Cause)
}

func (e ErrDecode) Unwrap() error {
	return e.Cause
}

type ErrUnsupportedCurrency struct {
	Code string
}

func (e ErrUnsupportedCurrency) Error() string {
	return fmt.Sprintf("currency %q is not supported", e.Code)
}
