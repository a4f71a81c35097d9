package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/bytebufferpool"

	"github.com/Philanthropists/daily-briefing/internal/types"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// GetJSON performs a single GET against url and decodes the JSON body into
// out. One request, no retries. Failures map to the domain error kinds.
func GetJSON(ctx context.Context, client Doer, url string, out any) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.ErrTransport{URL: url, Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return types.ErrTransport{URL: url, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return types.ErrBadStatus{URL: url, StatusCode: resp.StatusCode}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return types.ErrTransport{URL: url, Cause: err}
	}

	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		body := make([]byte, len(buf.Bytes()))
		copy(body, buf.Bytes())
		return types.ErrDecode{Cause: err, Body: body}
	}

	return nil
}
