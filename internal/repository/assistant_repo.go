package repository

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/hotelguestmodule/hotelchat-api/internal/model"
	"google.golang.org/api/iterator"
)

const assistantCollection = "assistants"

// AssistantRepository reads assistant documents from Firestore
type AssistantRepository struct {
	client *firestore.Client
}

func NewAssistantRepository(client *firestore.Client) *AssistantRepository {
	return &AssistantRepository{client: client}
}

// ListByHotel returns every assistant document assigned to the given hotel
func (r *AssistantRepository) ListByHotel(ctx context.Context, hotel string) ([]model.Assistant, error) {
	iter := r.client.Collection(assistantCollection).
		Where("hotel", "==", hotel).
		Documents(ctx)
	defer iter.Stop()

	var assistants []model.Assistant
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		var assistant model.Assistant
		if err := doc.DataTo(&assistant); err != nil {
			return nil, err
		}
		assistants = append(assistants, assistant)
	}
	return assistants, nil
}
