package repository

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/hotelguestmodule/hotelchat-api/internal/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const guestCollection = "guests"

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// GuestRepository reads guest documents from Firestore
type GuestRepository struct {
	client *firestore.Client
}

func NewGuestRepository(client *firestore.Client) *GuestRepository {
	return &GuestRepository{client: client}
}

// FindByEmail fetches the guest document keyed by email
func (r *GuestRepository) FindByEmail(ctx context.Context, email string) (*model.Guest, error) {
	doc, err := r.client.Collection(guestCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var guest model.Guest
	if err := doc.DataTo(&guest); err != nil {
		return nil, err
	}
	return &guest, nil
}
