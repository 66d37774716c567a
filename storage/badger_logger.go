package storage

import (
	"context"
	"fmt"
	"strings"

	"tripstats/logger"
)

// BadgerLogger satisfies badger.Logger on top of the structured logger.
type BadgerLogger struct {
	log logger.Logger
	ctx context.Context
}

func NewBadgerLogger(log logger.Logger) *BadgerLogger {
	return &BadgerLogger{
		log: log,
		ctx: logger.WithAction(context.Background(), "badger"),
	}
}

func (bl *BadgerLogger) Errorf(format string, args ...interface{}) {
	msg := badgerMessage(format, args...)
	bl.log.Error(bl.ctx, msg, fmt.Errorf("%s", msg))
}

func (bl *BadgerLogger) Warningf(format string, args ...interface{}) {
	bl.log.Warn(bl.ctx, badgerMessage(format, args...))
}

func (bl *BadgerLogger) Infof(format string, args ...interface{}) {
	bl.log.Debug(bl.ctx, badgerMessage(format, args...))
}

func (bl *BadgerLogger) Debugf(format string, args ...interface{}) {
	bl.log.Debug(bl.ctx, badgerMessage(format, args...))
}

func badgerMessage(format string, args ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
