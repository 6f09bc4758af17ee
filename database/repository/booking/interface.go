package bookingRepo

import (
	"context"

	"complyhub/database"
	"complyhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByPropertyID(ctx context.Context, propertyID string) ([]models.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
