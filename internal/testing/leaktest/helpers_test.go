package leaktest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures Errorf calls so failures can be asserted on
type recordingTB struct {
	testing.TB
	mu     sync.Mutex
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...interface{}) {
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
}

func TestGoroutineChecker_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() { defer wg.Done() }()
		wg.Wait()
	})
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	started := make(chan struct{})
	go func() {
		close(started)
		<-done
	}()
	<-started

	checker.Check(0)
	assert.True(t, rec.failed)
}

func TestGoroutineChecker_WithinTolerance(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	started := make(chan struct{})
	go func() {
		close(started)
		<-done
	}()
	<-started

	checker.Check(1)
	assert.False(t, rec.failed)
}
