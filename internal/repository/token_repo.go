package repository

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const guestTokenCollection = "guest_tokens"

// GuestTokenRepository reads guest device-token documents from Firestore
type GuestTokenRepository struct {
	client *firestore.Client
}

func NewGuestTokenRepository(client *firestore.Client) *GuestTokenRepository {
	return &GuestTokenRepository{client: client}
}

// ListTokensByEmail returns every push token registered for the guest.
// The token is the document ID, not a field.
func (r *GuestTokenRepository) ListTokensByEmail(ctx context.Context, email string) ([]string, error) {
	iter := r.client.Collection(guestTokenCollection).
		Where("email", "==", email).
		Documents(ctx)
	defer iter.Stop()

	var tokens []string
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, doc.Ref.ID)
	}
	return tokens, nil
}
