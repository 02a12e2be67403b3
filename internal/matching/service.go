package matching

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Mapping ties a fragment of a bank description to a spending category.
type Mapping struct {
	ID         int64
	RawPattern string
	Category   string
	CreatedAt  time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	Mappings(ctx context.Context) ([]Mapping, error)
	CreateMapping(ctx context.Context, rawPattern, category string) error
	DeleteMapping(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the category of the longest pattern contained in the
// description, ignoring case. Ties go to the newest mapping. Returns empty
// string if no match found.
func (s *Service) Suggest(ctx context.Context, description string) (string, error) {
	mappings, err := s.repo.Mappings(ctx)
	if err != nil {
		return "", err
	}

	return bestMatch(mappings, description), nil
}

// Suggester caches the mappings for categorising many descriptions in a row.
type Suggester struct {
	mappings []Mapping
}

func (s *Service) Suggester(ctx context.Context) (*Suggester, error) {
	mappings, err := s.repo.Mappings(ctx)
	if err != nil {
		return nil, err
	}

	return &Suggester{mappings: mappings}, nil
}

func (s *Suggester) Suggest(description string) string {
	return bestMatch(s.mappings, description)
}

func bestMatch(mappings []Mapping, description string) string {
	desc := strings.ToLower(description)

	var best *Mapping

	for i := range mappings {
		m := &mappings[i]

		pattern := strings.ToLower(strings.TrimSpace(m.RawPattern))
		if pattern == "" || !strings.Contains(desc, pattern) {
			continue
		}

		if best == nil ||
			len(pattern) > len(strings.TrimSpace(best.RawPattern)) ||
			(len(pattern) == len(strings.TrimSpace(best.RawPattern)) && m.CreatedAt.After(best.CreatedAt)) {
			best = m
		}
	}

	if best == nil {
		return ""
	}

	return best.Category
}

// Learn remembers that descriptions containing rawPattern belong to category.
func (s *Service) Learn(ctx context.Context, rawPattern, category string) error {
	rawPattern = strings.TrimSpace(rawPattern)
	category = strings.TrimSpace(category)

	if rawPattern == "" || category == "" {
		return fmt.Errorf("pattern and category are required")
	}

	return s.repo.CreateMapping(ctx, rawPattern, category)
}

func (s *Service) List(ctx context.Context) ([]Mapping, error) {
	return s.repo.Mappings(ctx)
}

func (s *Service) Forget(ctx context.Context, id int64) error {
	return s.repo.DeleteMapping(ctx, id)
}
