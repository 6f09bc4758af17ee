package logbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"complyhub/models"
	"complyhub/services/compliance"
)

func (svc *DefaultLogbookService) ownedLogbook(ctx context.Context, actor *models.User, logbookID string) (*models.Logbook, error) {
	logbook, err := svc.Repo.GetByID(ctx, logbookID)
	if err != nil {
		return nil, err
	}
	if _, err := svc.ownedProperty(ctx, actor, logbook.PropertyID); err != nil {
		return nil, err
	}
	return logbook, nil
}

func (svc *DefaultLogbookService) ownedProperty(ctx context.Context, actor *models.User, propertyID string) (*models.Property, error) {
	property, err := svc.PropertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.UserID != actor.ID {
		return nil, errors.New("property not found")
	}
	return property, nil
}

// Create adds a logbook; the frequency must be one of the enumerated
// values since it drives due-date projection.
func (svc *DefaultLogbookService) Create(ctx context.Context, actor *models.User, logbook models.Logbook) (*models.Logbook, error) {
	if logbook.Name == "" {
		return nil, errors.New("logbook name is required")
	}
	if !logbook.Frequency.Valid() {
		return nil, fmt.Errorf("invalid frequency %q", logbook.Frequency)
	}
	if _, err := svc.ownedProperty(ctx, actor, logbook.PropertyID); err != nil {
		return nil, err
	}

	logbook.Active = true
	id, err := svc.Repo.Create(ctx, logbook)
	if err != nil {
		return nil, err
	}
	return svc.Repo.GetByID(ctx, id)
}

// Update edits name, frequency and description.
func (svc *DefaultLogbookService) Update(ctx context.Context, actor *models.User, logbook models.Logbook) (*models.Logbook, error) {
	current, err := svc.ownedLogbook(ctx, actor, logbook.ID)
	if err != nil {
		return nil, err
	}
	if logbook.Frequency != "" && !logbook.Frequency.Valid() {
		return nil, fmt.Errorf("invalid frequency %q", logbook.Frequency)
	}

	if logbook.Name != "" {
		current.Name = logbook.Name
	}
	if logbook.Frequency != "" {
		current.Frequency = logbook.Frequency
	}
	current.Description = logbook.Description

	if err := svc.Repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// SetActive toggles a logbook without deleting it.
func (svc *DefaultLogbookService) SetActive(ctx context.Context, actor *models.User, logbookID string, active bool) (*models.Logbook, error) {
	current, err := svc.ownedLogbook(ctx, actor, logbookID)
	if err != nil {
		return nil, err
	}
	current.Active = active
	if err := svc.Repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a logbook and its entries.
func (svc *DefaultLogbookService) Delete(ctx context.Context, actor *models.User, logbookID string) error {
	if _, err := svc.ownedLogbook(ctx, actor, logbookID); err != nil {
		return err
	}
	return svc.Repo.DeleteByID(ctx, logbookID)
}

// List returns a property's logbooks with their due projections.
func (svc *DefaultLogbookService) List(ctx context.Context, actor *models.User, propertyID string) ([]LogbookSummary, error) {
	if _, err := svc.ownedProperty(ctx, actor, propertyID); err != nil {
		return nil, err
	}
	logbooks, err := svc.Repo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]LogbookSummary, 0, len(logbooks))
	for _, lb := range logbooks {
		entries, err := svc.Repo.GetEntries(ctx, lb.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, LogbookSummary{
			Logbook:    lb,
			Projection: compliance.ProjectLogbook(lb, entries, now),
		})
	}
	return summaries, nil
}

// AddEntry appends a performed check. An issue comment is required
// exactly when the status is "Issue Identified"; a comment on a
// working check is discarded to keep the invariant.
func (svc *DefaultLogbookService) AddEntry(ctx context.Context, actor *models.User, entry models.LogbookEntry) (*models.LogbookEntry, error) {
	if _, err := svc.ownedLogbook(ctx, actor, entry.LogbookID); err != nil {
		return nil, err
	}

	switch entry.Status {
	case models.EntryWorking:
		entry.IssueComment = ""
	case models.EntryIssue:
		if entry.IssueComment == "" {
			return nil, errors.New("an issue comment is required when an issue is identified")
		}
	default:
		return nil, fmt.Errorf("invalid entry status %q", entry.Status)
	}
	if entry.PerformedBy == "" {
		return nil, errors.New("performed by is required")
	}
	if entry.PerformedAt.IsZero() {
		entry.PerformedAt = time.Now()
	}

	id, err := svc.Repo.CreateEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return &entry, nil
}

// ListEntries returns a logbook's entries, most recent first.
func (svc *DefaultLogbookService) ListEntries(ctx context.Context, actor *models.User, logbookID string) ([]models.LogbookEntry, error) {
	if _, err := svc.ownedLogbook(ctx, actor, logbookID); err != nil {
		return nil, err
	}
	return svc.Repo.GetEntries(ctx, logbookID)
}
