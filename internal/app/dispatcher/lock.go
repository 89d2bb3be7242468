package dispatcher

import (
	"context"
	"sync"
)

// Locker grants exclusive use of the notification queue for one pass.
type Locker interface {
	TryLock(ctx context.Context) (release func(context.Context) error, ok bool, err error)
}

// LocalLock is a process-local Locker used when Redis is not configured.
// It only protects against overlapping passes inside one process.
type LocalLock struct {
	mu sync.Mutex
}

// NewLocalLock creates an unlocked LocalLock.
func NewLocalLock() *LocalLock {
	return &LocalLock{}
}

func (l *LocalLock) TryLock(context.Context) (func(context.Context) error, bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}
	return func(context.Context) error {
		l.mu.Unlock()
		return nil
	}, true, nil
}
