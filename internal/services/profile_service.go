package services

import (
	"math"
	"sort"

	"techmart/internal/domain"
	"techmart/internal/repos"
)

// minBandHalfWidth keeps the personalization price band usable for
// light buyers: at least ±1,000,000 VND around the average.
const minBandHalfWidth = 1_000_000

// ProfileService derives a user's preference profile from purchase and
// view history. No persistence: every call rescans the history, so the
// profile is always current. Acceptable at storefront scale; bound the
// scan before pointing this at high-cardinality histories.
type ProfileService struct {
	History *repos.HistoryRepo
}

func NewProfileService(history *repos.HistoryRepo) *ProfileService {
	return &ProfileService{History: history}
}

// Build returns the user's top-3 preferred categories (by frequency
// across purchases and views, ties by category id ascending), the mean
// purchase price and a price band of ±max(50% of mean, 1M VND).
// A user with no history yields an empty preferred-category list.
func (s *ProfileService) Build(userID string) (domain.UserProfile, error) {
	purchased, err := s.History.PurchasedProducts(userID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	viewed, err := s.History.ViewedProducts(userID)
	if err != nil {
		return domain.UserProfile{}, err
	}

	freq := make(map[int64]int)
	for _, p := range purchased {
		freq[p.CategoryID]++
	}
	for _, p := range viewed {
		freq[p.CategoryID]++
	}

	cats := make([]int64, 0, len(freq))
	for id := range freq {
		cats = append(cats, id)
	}
	sort.Slice(cats, func(i, j int) bool {
		if freq[cats[i]] != freq[cats[j]] {
			return freq[cats[i]] > freq[cats[j]]
		}
		return cats[i] < cats[j]
	})
	if len(cats) > 3 {
		cats = cats[:3]
	}

	avg := 0.0
	if len(purchased) > 0 {
		sum := 0.0
		for _, p := range purchased {
			sum += p.Price
		}
		avg = sum / float64(len(purchased))
	}
	hw := math.Max(0.5*avg, minBandHalfWidth)

	return domain.UserProfile{
		PreferredCategories: cats,
		AvgPurchasePrice:    avg,
		PriceBand:           domain.PriceRange{Min: avg - hw, Max: avg + hw},
	}, nil
}
