package services

import (
	"database/sql"
	"errors"
	"time"

	"techmart/internal/domain"
	"techmart/internal/repos"
)

// trendingWindowDays is the hard lookback for recency signals; there is
// no decay inside the window.
const trendingWindowDays = 30

// similarPriceTolerance bounds similar-product candidates to ±30% of
// the target's price.
const similarPriceTolerance = 0.3

// RecommendService covers the three recommendation modes: similar,
// trending and personalized. All are read-only and idempotent against
// an unchanged store; "not found" and "not enough data" come back as
// short or empty slices, never as errors.
type RecommendService struct {
	Catalog *repos.CatalogRepo
	History *repos.HistoryRepo
	Profile *ProfileService
}

func NewRecommendService(catalog *repos.CatalogRepo, history *repos.HistoryRepo, profile *ProfileService) *RecommendService {
	return &RecommendService{Catalog: catalog, History: history, Profile: profile}
}

// SimilarProducts returns up to count products in the target's category
// priced within ±30% of it, best-rated first, never including the
// target itself. An absent target yields an empty result.
func (s *RecommendService) SimilarProducts(productID int64, count int) ([]domain.Product, error) {
	target, err := s.Catalog.Get(productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	tol := target.Price * similarPriceTolerance
	band := domain.PriceRange{Min: target.Price - tol, Max: target.Price + tol}
	cands, err := s.Catalog.Similar(target.CategoryID, band, target.ID)
	if err != nil {
		return nil, err
	}
	return rankTop(cands, byRating, count), nil
}

// TrendingProducts ranks the whole active catalog by the windowed
// engagement score, ties by product id ascending.
func (s *RecommendService) TrendingProducts(count int) ([]domain.Product, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -trendingWindowDays).Format(repos.TimeFormat)
	cands, err := s.Catalog.TrendingCandidates(cutoff)
	if err != nil {
		return nil, err
	}
	return rankTop(cands, byTrend, count), nil
}

// PersonalizedRecommendations filters the catalog to the user's
// preferred categories and price band, excludes everything they already
// bought, ranks by rating, and pads any shortfall with trending
// products (deduplicated, purchased items still excluded, personalized
// results first). A user with no history at all gets trending directly.
func (s *RecommendService) PersonalizedRecommendations(userID string, count int) ([]domain.Product, error) {
	profile, err := s.Profile.Build(userID)
	if err != nil {
		return nil, err
	}
	if len(profile.PreferredCategories) == 0 {
		return s.TrendingProducts(count)
	}

	purchased, err := s.History.PurchasedProducts(userID)
	if err != nil {
		return nil, err
	}
	exclude := make(map[int64]struct{}, len(purchased))
	excludeIDs := make([]int64, 0, len(purchased))
	for _, p := range purchased {
		if _, dup := exclude[p.ID]; dup {
			continue
		}
		exclude[p.ID] = struct{}{}
		excludeIDs = append(excludeIDs, p.ID)
	}

	cands, err := s.Catalog.ByCategories(profile.PreferredCategories, profile.PriceBand, excludeIDs)
	if err != nil {
		return nil, err
	}
	recs := rankTop(cands, byRating, count)

	if len(recs) < count {
		trending, err := s.TrendingProducts(count - len(recs))
		if err != nil {
			return nil, err
		}
		seen := make(map[int64]struct{}, len(recs))
		for _, p := range recs {
			seen[p.ID] = struct{}{}
		}
		for _, p := range trending {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			if _, bought := exclude[p.ID]; bought {
				continue
			}
			recs = append(recs, p)
		}
	}

	if len(recs) > count {
		recs = recs[:count]
	}
	return recs, nil
}
