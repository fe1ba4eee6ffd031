package services

import (
	"techmart/internal/domain"
	"techmart/internal/query"
	"techmart/internal/repos"
)

const (
	maxTermSuggestions       = 5
	maxCategorySuggestions   = 3
	maxCompletionSuggestions = 3
)

// SuggestService builds typeahead suggestions for a partial query:
// matching product names, matching category names and fixed-template
// completions.
type SuggestService struct {
	Catalog *repos.CatalogRepo
	Cats    *repos.CategoryRepo
}

func NewSuggestService(catalog *repos.CatalogRepo, cats *repos.CategoryRepo) *SuggestService {
	return &SuggestService{Catalog: catalog, Cats: cats}
}

func (s *SuggestService) Suggest(partial string) (domain.Suggestions, error) {
	out := domain.Suggestions{
		PopularTerms:     []string{},
		Categories:       []string{},
		SmartCompletions: []string{},
	}

	terms, err := s.Catalog.SuggestNames(partial, maxTermSuggestions)
	if err != nil {
		return out, err
	}
	if terms != nil {
		out.PopularTerms = terms
	}

	cats, err := s.Cats.SuggestNames(partial, maxCategorySuggestions)
	if err != nil {
		return out, err
	}
	if cats != nil {
		out.Categories = cats
	}

	for _, suffix := range query.SmartCompletionSuffixes {
		if len(out.SmartCompletions) == maxCompletionSuggestions {
			break
		}
		out.SmartCompletions = append(out.SmartCompletions, partial+suffix)
	}
	return out, nil
}
