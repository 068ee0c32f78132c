package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgWorkerQueueFull   = "Worker queue full, dropping job"
)

// ============================================================================
// Log Messages - Session Sweep
// ============================================================================

const (
	LogMsgSessionSweepCompleted = "Session sweep completed"
)

// JobNameSessionSweep names the blackjack session sweep
const JobNameSessionSweep = "blackjack_session_sweep"

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
