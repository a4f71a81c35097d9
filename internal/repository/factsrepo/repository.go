package factsrepo

import (
	"context"
	"fmt"

	"github.com/Philanthropists/daily-briefing/internal/types"
	"github.com/Philanthropists/daily-briefing/internal/util/rest"
)

const (
	defaultHost    = "https://uselessfacts.jsph.pl"
	randomFactPath = "api/v2/facts/random"
)

type FactsRepository struct {
	Client rest.Doer
	Host   string
}

func (r FactsRepository) host() string {
	if r.Host == "" {
		return defaultHost
	}
	return r.Host
}

type factPayload struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url"`
	Language  string `json:"language"`
	Permalink string `json:"permalink"`
}

// GetRandomFact fetches a single random fact. One request, no retries.
func (r FactsRepository) GetRandomFact(ctx context.Context, language string) (types.Fact, error) {
	url := fmt.Sprintf("%s/%s", r.host(), randomFactPath)
	if language != "" {
		url = fmt.Sprintf("%s?language=%s", url, language)
	}

	var payload factPayload
	if err := rest.GetJSON(ctx, r.Client, url, &payload); err != nil {
		return types.Fact{}, err
	}

	return types.Fact{
		ID:       payload.ID,
		Text:     payload.Text,
		Source:   payload.Source,
		Language: payload.Language,
	}, nil
}
