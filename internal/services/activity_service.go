package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"techmart/internal/domain"
	"techmart/internal/repos"
)

// ErrProductNotFound marks a view event for a product that is not in
// the catalog.
var ErrProductNotFound = errors.New("product not found")

// ActivityService records browsing activity that later feeds trending
// and personalization.
type ActivityService struct {
	Catalog *repos.CatalogRepo
	History *repos.HistoryRepo
}

func NewActivityService(catalog *repos.CatalogRepo, history *repos.HistoryRepo) *ActivityService {
	return &ActivityService{Catalog: catalog, History: history}
}

// RecordView appends a view event for an existing product. Anonymous
// views pass an empty userID; a missing sessionID gets a fresh one.
func (s *ActivityService) RecordView(productID int64, userID, sessionID string) error {
	if _, err := s.Catalog.Get(productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		return err
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return s.History.RecordView(domain.ViewEvent{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		SessionID: sessionID,
		ViewedAt:  time.Now().UTC().Format(repos.TimeFormat),
	})
}
