package notification

import (
	"context"
	"errors"
	"fmt"
	"log"

	"firebase.google.com/go/v4/messaging"
)

// Message is a single-device push notification
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// Client wraps the FCM messaging client
type Client struct {
	fcm *messaging.Client
}

// New creates a new FCM notification client
func New(fcm *messaging.Client) *Client {
	return &Client{fcm: fcm}
}

// Send delivers one push notification to one device token. Callers fan out
// and aggregate per-token outcomes; an error here never aborts siblings.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c == nil || c.fcm == nil {
		return errors.New("messaging client not configured")
	}

	_, err := c.fcm.Send(ctx, &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		if messaging.IsRegistrationTokenNotRegistered(err) {
			log.Printf("⚠️ FCM token no longer registered: %s", msg.Token)
		} else {
			log.Printf("❌ FCM send failed for token %s: %v", msg.Token, err)
		}
		return fmt.Errorf("fcm send: %w", err)
	}

	return nil
}
