package notifsvc

import (
	"context"
	"fmt"

	"github.com/studyline/studyline/core"
)

// consoleService logs deliveries instead of pushing them. Used in DEV mode.
type consoleService struct {
	logger core.Logger
}

var _ core.Notifier = (*consoleService)(nil)

func NewConsoleService(logger core.Logger) core.Notifier {
	return &consoleService{logger: logger}
}

func (svc *consoleService) SendToGroup(_ context.Context, groupID int64) error {
	svc.send(fmt.Sprintf("group%d", groupID))
	return nil
}

func (svc *consoleService) SendToTeacher(_ context.Context, teacherID int64) error {
	svc.send(fmt.Sprintf("teacher%d", teacherID))
	return nil
}

func (svc *consoleService) send(topic string) {
	svc.logger.Info(fmt.Sprintf("notification sent: topic=%s title=%q", topic, notificationTitle))
}
