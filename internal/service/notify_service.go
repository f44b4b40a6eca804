package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/hotelguestmodule/hotelchat-api/internal/model"
	"github.com/hotelguestmodule/hotelchat-api/internal/repository"
	"github.com/hotelguestmodule/hotelchat-api/pkg/notification"
)

var (
	ErrGuestNotFound     = errors.New("Guest not found")
	ErrHotelNotSet       = errors.New("Hotel not set for guest")
	ErrNoAssistantTokens = errors.New("No assistants with valid FCM tokens")
	ErrNoGuestTokens     = errors.New("No guest FCM tokens found")
)

// GuestFinder looks up a guest document by email
type GuestFinder interface {
	FindByEmail(ctx context.Context, email string) (*model.Guest, error)
}

// AssistantLister lists the assistants assigned to a hotel
type AssistantLister interface {
	ListByHotel(ctx context.Context, hotel string) ([]model.Assistant, error)
}

// GuestTokenLister resolves a guest's registered FCM tokens
type GuestTokenLister interface {
	ListTokensByEmail(ctx context.Context, email string) ([]string, error)
}

// Pusher delivers one push notification to one device token
type Pusher interface {
	Send(ctx context.Context, msg notification.Message) error
}

// NotifyService orchestrates push-notification fan-out
type NotifyService struct {
	guests      GuestFinder
	assistants  AssistantLister
	guestTokens GuestTokenLister
	push        Pusher
}

func NewNotifyService(
	guests GuestFinder,
	assistants AssistantLister,
	guestTokens GuestTokenLister,
	push Pusher,
) *NotifyService {
	return &NotifyService{
		guests:      guests,
		assistants:  assistants,
		guestTokens: guestTokens,
		push:        push,
	}
}

// NotifyAssistants pushes a guest's message to every assistant of the
// guest's hotel and returns how many sends succeeded.
func (s *NotifyService) NotifyAssistants(ctx context.Context, guestEmail, message string) (int, error) {
	guest, err := s.guests.FindByEmail(ctx, guestEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrGuestNotFound
		}
		return 0, err
	}

	if guest.Hotel == "" {
		return 0, ErrHotelNotSet
	}

	assistants, err := s.assistants.ListByHotel(ctx, guest.Hotel)
	if err != nil {
		return 0, err
	}

	// Assistants without a registered token are skipped, not errored
	var tokens []string
	for _, a := range assistants {
		if a.FCMToken != "" {
			tokens = append(tokens, a.FCMToken)
		}
	}
	if len(tokens) == 0 {
		return 0, ErrNoAssistantTokens
	}

	title := fmt.Sprintf("New message from %s", guestEmail)
	if guest.Name != "" {
		title = fmt.Sprintf("New message from %s", guest.Name)
	}

	sent := s.dispatch(ctx, tokens, title, message, map[string]string{
		"guestEmail": guestEmail,
		"hotel":      guest.Hotel,
	})
	log.Printf("✅ Notification sent to assistants: %d", sent)
	return sent, nil
}

// NotifyGuest pushes an assistant's reply to every device the guest has
// registered and returns how many sends succeeded.
func (s *NotifyService) NotifyGuest(ctx context.Context, guestEmail, message string) (int, error) {
	tokens, err := s.guestTokens.ListTokensByEmail(ctx, guestEmail)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, ErrNoGuestTokens
	}

	sent := s.dispatch(ctx, tokens, "Assistant replied", message, map[string]string{
		"guestEmail": guestEmail,
		"role":       "guest",
	})
	log.Printf("✅ Notification sent to guest: %d", sent)
	return sent, nil
}

// dispatch fans out one send per token and waits for every send to settle.
// A failed send becomes a failure result; it never aborts the siblings.
func (s *NotifyService) dispatch(ctx context.Context, tokens []string, title, body string, data map[string]string) int {
	results := make([]model.DispatchResult, len(tokens))

	var wg sync.WaitGroup
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			err := s.push.Send(ctx, notification.Message{
				Token: token,
				Title: title,
				Body:  body,
				Data:  data,
			})
			if err != nil {
				results[i] = model.DispatchResult{Token: token, Success: false, Error: err.Error()}
				return
			}
			results[i] = model.DispatchResult{Token: token, Success: true}
		}(i, token)
	}
	wg.Wait()

	sent := 0
	for _, r := range results {
		if r.Success {
			sent++
		}
	}
	return sent
}
