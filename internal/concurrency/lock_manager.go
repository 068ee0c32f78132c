package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Services key it by user ID so that
// every read-modify-write of an account runs alone.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the key's mutex and returns the matching unlock function.
func (lm *LockManager) Lock(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// WithLock runs fn while holding the key's mutex.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	unlock := lm.Lock(key)
	defer unlock()
	return fn()
}
