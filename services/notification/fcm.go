// Package notifsvc pushes schedule update alerts to mobile clients over
// Firebase Cloud Messaging. Group and teacher audiences map to FCM topics.
package notifsvc

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/studyline/studyline/core"
)

const (
	notificationTitle = "Schedule updated!"
	notificationBody  = "Check the changes in the app."
)

type fcmService struct {
	client *messaging.Client
}

var _ core.Notifier = (*fcmService)(nil)

func NewFCMService(ctx context.Context, conf *core.Config) (core.Notifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(conf.FCMCredFile))
	if err != nil {
		return nil, errors.Wrap(err, "initializing firebase app")
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initializing messaging client")
	}
	return &fcmService{client: client}, nil
}

func (svc *fcmService) SendToGroup(ctx context.Context, groupID int64) error {
	return svc.send(ctx, fmt.Sprintf("group%d", groupID))
}

func (svc *fcmService) SendToTeacher(ctx context.Context, teacherID int64) error {
	return svc.send(ctx, fmt.Sprintf("teacher%d", teacherID))
}

func (svc *fcmService) send(ctx context.Context, topic string) error {
	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: notificationTitle,
			Body:  notificationBody,
		},
	}
	if _, err := svc.client.Send(ctx, msg); err != nil {
		return errors.Wrapf(err, "sending to topic %s", topic)
	}
	return nil
}
