package core

import "errors"

var (
	ErrUnreadable      = errors.New("trip source is unreadable")
	ErrCorruptSnapshot = errors.New("corrupt tally snapshot")
	ErrEmptyName       = errors.New("snapshot name is empty")
)
