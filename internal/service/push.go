package service

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmPushSender struct {
	client *messaging.Client
}

// NewFCMPushSender builds a Firebase Cloud Messaging sender from a service
// account credentials file.
func NewFCMPushSender(ctx context.Context, credentialsFile string) (PushSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize fcm client: %w", err)
	}
	return &fcmPushSender{client: client}, nil
}

func (s *fcmPushSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := s.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("send push message: %w", err)
	}
	return nil
}
