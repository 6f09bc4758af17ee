package property

import (
	"context"
	"errors"

	propertyRepo "complyhub/database/repository/property"
	"complyhub/models"
)

// PropertyService manages the caller's property portfolio.
type PropertyService interface {
	Create(ctx context.Context, actor *models.User, property models.Property) (*models.Property, error)
	GetByID(ctx context.Context, actor *models.User, propertyID string) (*models.Property, error)
	List(ctx context.Context, actor *models.User) ([]models.Property, error)
	Update(ctx context.Context, actor *models.User, property models.Property) (*models.Property, error)
	Delete(ctx context.Context, actor *models.User, propertyID string) error
}

// DefaultPropertyService is the production implementation.
type DefaultPropertyService struct {
	Repo propertyRepo.PropertyRepository
}

// Create adds a property to the caller's portfolio.
func (svc *DefaultPropertyService) Create(ctx context.Context, actor *models.User, property models.Property) (*models.Property, error) {
	if property.Name == "" || property.Address == "" {
		return nil, errors.New("property name and address are required")
	}
	property.UserID = actor.ID

	id, err := svc.Repo.Create(ctx, property)
	if err != nil {
		return nil, err
	}
	return svc.Repo.GetByID(ctx, id)
}

// GetByID fetches one of the caller's properties.
func (svc *DefaultPropertyService) GetByID(ctx context.Context, actor *models.User, propertyID string) (*models.Property, error) {
	property, err := svc.Repo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.UserID != actor.ID {
		return nil, errors.New("property not found")
	}
	return property, nil
}

// List returns the caller's properties.
func (svc *DefaultPropertyService) List(ctx context.Context, actor *models.User) ([]models.Property, error) {
	return svc.Repo.GetByUserID(ctx, actor.ID)
}

// Update edits a property's details. The stored compliance score is
// owned by the recompute job and cannot be set here.
func (svc *DefaultPropertyService) Update(ctx context.Context, actor *models.User, property models.Property) (*models.Property, error) {
	current, err := svc.GetByID(ctx, actor, property.ID)
	if err != nil {
		return nil, err
	}

	if property.Name != "" {
		current.Name = property.Name
	}
	if property.Address != "" {
		current.Address = property.Address
	}
	if property.Postcode != "" {
		current.Postcode = property.Postcode
	}
	if property.BuildingType != "" {
		current.BuildingType = property.BuildingType
	}

	if err := svc.Repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a property.
func (svc *DefaultPropertyService) Delete(ctx context.Context, actor *models.User, propertyID string) error {
	if _, err := svc.GetByID(ctx, actor, propertyID); err != nil {
		return err
	}
	return svc.Repo.DeleteByID(ctx, propertyID)
}
