package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/repository"
)

// Seeder populates an empty store from a JSON file of create-request shaped
// records. It is a startup convenience, not a runtime-critical path.
type Seeder struct {
	repo repository.Repository
	file string
}

// New creates a seeder reading from the given file.
func New(repo repository.Repository, file string) *Seeder {
	return &Seeder{repo: repo, file: file}
}

// Run loads the seed file and saves its books, but only when the store is
// empty. Records failing validation or colliding on isbn are skipped and
// logged rather than aborting the run.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count books: %w", err)
	}
	if count != 0 {
		log.Debug().Int64("count", count).Msg("Store already holds books, skipping seed")
		return nil
	}

	data, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var requests []model.CreateBookRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	valid := make([]model.CreateBookRequest, 0, len(requests))
	for i := range requests {
		if err := requests[i].Validate(); err != nil {
			log.Warn().Err(err).Str("isbn", requests[i].ISBN).Msg("Skipping invalid seed record")
			continue
		}
		valid = append(valid, requests[i])
	}

	seeded := 0
	for _, book := range model.ToEntityList(valid) {
		if _, err := s.repo.Save(ctx, book); err != nil {
			log.Warn().Err(err).Str("isbn", book.ISBN).Msg("Skipping seed book")
			continue
		}
		seeded++
	}

	log.Info().Int("count", seeded).Msg("Seeded books")
	return nil
}
