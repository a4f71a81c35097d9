package factsrepo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Philanthropists/daily-briefing/internal/types"
)

const factBody = `{
	"id": "4a9e4a6cd10a0e2e69b3b2e5",
	"text": "Bananas are berries, but strawberries are not.",
	"source": "djtech.net",
	"source_url": "http://www.djtech.net/humor/useless_facts.htm",
	"language": "en",
	"permalink": "https://uselessfacts.jsph.pl/api/v2/facts/4a9e4a6cd10a0e2e69b3b2e5"
}`

func Test_GetRandomFactDecodesThePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/facts/random", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(factBody))
	}))
	defer srv.Close()

	repo := FactsRepository{Client: srv.Client(), Host: srv.URL}

	fact, err := repo.GetRandomFact(context.Background(), "en")
	assert.NoError(t, err)
	assert.Equal(t, "4a9e4a6cd10a0e2e69b3b2e5", fact.ID)
	assert.Equal(t, "Bananas are berries, but strawberries are not.", fact.Text)
	assert.Equal(t, "djtech.net", fact.Source)
	assert.Equal(t, "en", fact.Language)
}

func Test_GetRandomFactOmitsLanguageWhenUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("language"))
		_, _ = w.Write([]byte(factBody))
	}))
	defer srv.Close()

	repo := FactsRepository{Client: srv.Client(), Host: srv.URL}

	_, err := repo.GetRandomFact(context.Background(), "")
	assert.NoError(t, err)
}

func Test_GetRandomFactPropagatesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	repo := FactsRepository{Client: srv.Client(), Host: srv.URL}

	_, err := repo.GetRandomFact(context.Background(), "en")

	var badStatus types.ErrBadStatus
	assert.ErrorAs(t, err, &badStatus)
	assert.Equal(t, http.StatusTooManyRequests, badStatus.StatusCode)
}
