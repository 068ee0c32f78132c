package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SpinEconomy_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
	panics   bool
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	if j.panics {
		panic("boom")
	}
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_SurvivesFailingJobs(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("failed")})
	pool.Enqueue(&testJob{executed: &executed, panics: true})
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 3
	}, time.Second, 5*time.Millisecond)
}

func TestPool_EnqueueWhenFullOrStopped(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1) // not started, so nothing drains the queue

	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "queue full")

	pool.Stop()
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "stopped")
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		var executed int32
		pool := NewPool(TestWorkerCount, TestQueueSize)
		pool.Start()
		pool.Enqueue(&testJob{executed: &executed})
		pool.Stop()
	})
}
