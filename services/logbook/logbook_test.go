package logbook

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"complyhub/models"
)

type fakePropertyRepo struct {
	properties map[string]models.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[string]models.Property)}
}

func (r *fakePropertyRepo) Create(ctx context.Context, p models.Property) (string, error) {
	r.properties[p.ID] = p
	return p.ID, nil
}

func (r *fakePropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, errors.New("property not found")
	}
	return &p, nil
}

func (r *fakePropertyRepo) GetByUserID(ctx context.Context, userID string) ([]models.Property, error) {
	var out []models.Property
	for _, p := range r.properties {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) GetAll(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	for _, p := range r.properties {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePropertyRepo) Update(ctx context.Context, p *models.Property) error {
	r.properties[p.ID] = *p
	return nil
}

func (r *fakePropertyRepo) UpdateComplianceScore(ctx context.Context, id string, score int) error {
	p, ok := r.properties[id]
	if !ok {
		return errors.New("property not found")
	}
	p.ComplianceScore = score
	r.properties[id] = p
	return nil
}

func (r *fakePropertyRepo) DeleteByID(ctx context.Context, id string) error {
	delete(r.properties, id)
	return nil
}

type fakeLogbookRepo struct {
	logbooks map[string]models.Logbook
	entries  map[string][]models.LogbookEntry
	nextID   int
}

func newFakeLogbookRepo() *fakeLogbookRepo {
	return &fakeLogbookRepo{
		logbooks: make(map[string]models.Logbook),
		entries:  make(map[string][]models.LogbookEntry),
	}
}

func (r *fakeLogbookRepo) Create(ctx context.Context, lb models.Logbook) (string, error) {
	if lb.ID == "" {
		r.nextID++
		lb.ID = fmt.Sprintf("lb-%d", r.nextID)
	}
	r.logbooks[lb.ID] = lb
	return lb.ID, nil
}

func (r *fakeLogbookRepo) GetByID(ctx context.Context, id string) (*models.Logbook, error) {
	lb, ok := r.logbooks[id]
	if !ok {
		return nil, errors.New("logbook not found")
	}
	return &lb, nil
}

func (r *fakeLogbookRepo) GetByPropertyID(ctx context.Context, propertyID string) ([]models.Logbook, error) {
	var out []models.Logbook
	for _, lb := range r.logbooks {
		if lb.PropertyID == propertyID {
			out = append(out, lb)
		}
	}
	return out, nil
}

func (r *fakeLogbookRepo) Update(ctx context.Context, lb *models.Logbook) error {
	if _, ok := r.logbooks[lb.ID]; !ok {
		return errors.New("logbook not found")
	}
	r.logbooks[lb.ID] = *lb
	return nil
}

func (r *fakeLogbookRepo) DeleteByID(ctx context.Context, id string) error {
	delete(r.logbooks, id)
	delete(r.entries, id)
	return nil
}

func (r *fakeLogbookRepo) CreateEntry(ctx context.Context, e models.LogbookEntry) (string, error) {
	r.nextID++
	e.ID = fmt.Sprintf("entry-%d", r.nextID)
	r.entries[e.LogbookID] = append(r.entries[e.LogbookID], e)
	return e.ID, nil
}

func (r *fakeLogbookRepo) GetEntries(ctx context.Context, logbookID string) ([]models.LogbookEntry, error) {
	return r.entries[logbookID], nil
}

func newLogbookTestService(t *testing.T) (*DefaultLogbookService, string) {
	t.Helper()
	props := newFakePropertyRepo()
	_, err := props.Create(context.Background(), models.Property{ID: "p1", UserID: "user-1"})
	require.NoError(t, err)

	svc := &DefaultLogbookService{
		Repo:         newFakeLogbookRepo(),
		PropertyRepo: props,
		Logger:       zap.NewNop(),
	}
	lb, err := svc.Create(context.Background(), logbookOwner(), models.Logbook{
		PropertyID: "p1",
		Name:       "Fire alarm test",
		Frequency:  models.FreqWeekly,
	})
	require.NoError(t, err)
	return svc, lb.ID
}

func logbookOwner() *models.User {
	return &models.User{ID: "user-1", Role: models.RoleOwner}
}

func TestAddEntryRequiresCommentWhenIssueIdentified(t *testing.T) {
	svc, lbID := newLogbookTestService(t)

	_, err := svc.AddEntry(context.Background(), logbookOwner(), models.LogbookEntry{
		LogbookID:   lbID,
		Status:      models.EntryIssue,
		PerformedBy: "Jane Doe",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue comment is required")

	entry, err := svc.AddEntry(context.Background(), logbookOwner(), models.LogbookEntry{
		LogbookID:    lbID,
		Status:       models.EntryIssue,
		IssueComment: "Sounder not audible on second floor",
		PerformedBy:  "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sounder not audible on second floor", entry.IssueComment)
}

func TestAddEntryDiscardsCommentWhenWorking(t *testing.T) {
	svc, lbID := newLogbookTestService(t)

	entry, err := svc.AddEntry(context.Background(), logbookOwner(), models.LogbookEntry{
		LogbookID:    lbID,
		Status:       models.EntryWorking,
		IssueComment: "left over from a previous draft",
		PerformedBy:  "Jane Doe",
	})
	require.NoError(t, err)
	assert.Empty(t, entry.IssueComment)

	stored, err := svc.ListEntries(context.Background(), logbookOwner(), lbID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Empty(t, stored[0].IssueComment)
}

func TestAddEntryRejectsUnknownStatus(t *testing.T) {
	svc, lbID := newLogbookTestService(t)

	_, err := svc.AddEntry(context.Background(), logbookOwner(), models.LogbookEntry{
		LogbookID:   lbID,
		Status:      "Broken",
		PerformedBy: "Jane Doe",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entry status")
}

func TestAddEntryDefaultsPerformedAt(t *testing.T) {
	svc, lbID := newLogbookTestService(t)

	before := time.Now()
	entry, err := svc.AddEntry(context.Background(), logbookOwner(), models.LogbookEntry{
		LogbookID:   lbID,
		Status:      models.EntryWorking,
		PerformedBy: "Jane Doe",
	})
	require.NoError(t, err)
	assert.False(t, entry.PerformedAt.Before(before))
}

func TestCreateRejectsUnknownFrequency(t *testing.T) {
	svc, _ := newLogbookTestService(t)

	_, err := svc.Create(context.Background(), logbookOwner(), models.Logbook{
		PropertyID: "p1",
		Name:       "Lift inspection",
		Frequency:  "Fortnightly",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid frequency")
}
