package notifsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	infos []string
}

func (l *recordingLogger) Enable(bool)                  {}
func (l *recordingLogger) Debug(string, ...interface{}) {}
func (l *recordingLogger) Warn(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}
func (l *recordingLogger) Fatal(string, ...interface{}) {}

func (l *recordingLogger) Info(msg string, _ ...interface{}) {
	l.infos = append(l.infos, msg)
}

func Test_consoleService(t *testing.T) {
	logger := &recordingLogger{}
	svc := NewConsoleService(logger)
	ctx := context.Background()

	assert.NoError(t, svc.SendToGroup(ctx, 7))
	assert.NoError(t, svc.SendToTeacher(ctx, 5))

	// topics follow the FCM naming the mobile clients subscribe to
	assert.Len(t, logger.infos, 2)
	assert.Contains(t, logger.infos[0], "topic=group7")
	assert.Contains(t, logger.infos[1], "topic=teacher5")
	assert.Contains(t, logger.infos[0], notificationTitle)
}
