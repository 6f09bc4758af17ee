package logbook

import (
	"context"

	logbookRepo "complyhub/database/repository/logbook"
	propertyRepo "complyhub/database/repository/property"
	"complyhub/models"
	"complyhub/services/compliance"

	"go.uber.org/zap"
)

// LogbookSummary pairs a logbook with its derived due state.
type LogbookSummary struct {
	Logbook    models.Logbook               `json:"logbook"`
	Projection compliance.LogbookProjection `json:"projection"`
}

// LogbookService manages recurring compliance obligations and their
// append-only entries.
type LogbookService interface {
	Create(ctx context.Context, actor *models.User, logbook models.Logbook) (*models.Logbook, error)
	Update(ctx context.Context, actor *models.User, logbook models.Logbook) (*models.Logbook, error)
	SetActive(ctx context.Context, actor *models.User, logbookID string, active bool) (*models.Logbook, error)
	Delete(ctx context.Context, actor *models.User, logbookID string) error
	List(ctx context.Context, actor *models.User, propertyID string) ([]LogbookSummary, error)

	AddEntry(ctx context.Context, actor *models.User, entry models.LogbookEntry) (*models.LogbookEntry, error)
	ListEntries(ctx context.Context, actor *models.User, logbookID string) ([]models.LogbookEntry, error)
}

// DefaultLogbookService is the production implementation.
type DefaultLogbookService struct {
	Repo         logbookRepo.LogbookRepository
	PropertyRepo propertyRepo.PropertyRepository
	Logger       *zap.Logger
}
