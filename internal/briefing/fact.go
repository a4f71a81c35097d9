package briefing

import (
	"context"

	"github.com/Philanthropists/daily-briefing/internal/repository/factsrepo"
	"github.com/Philanthropists/daily-briefing/internal/types"
	"github.com/Philanthropists/daily-briefing/pkg/pipe"
	"github.com/Philanthropists/daily-briefing/pkg/result"
)

func (s *Briefing) facts() factsRepository {
	if s.Facts == nil {
		s.Facts = factsrepo.FactsRepository{}
	}

	return s.Facts
}

// fetchFact kicks off the single-shot fact request. Returns nil when facts
// are disabled.
func (s *Briefing) fetchFact(ctx context.Context) <-chan result.Result[types.Fact] {
	if !s.Config.FactOptions.Enabled {
		return nil
	}

	repo := s.facts()

	return pipe.Await(func() (types.Fact, error) {
		return repo.GetRandomFact(ctx, s.Config.FactOptions.Language)
	})
}
