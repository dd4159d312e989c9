package service

import (
	"context"
	"time"
)

// Completion outcome labels recorded by the instrumented client.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// CompletionObserver receives one observation per upstream completion
// call. The metrics package implements it; keeping the interface here
// leaves this package free of any metrics dependency.
type CompletionObserver interface {
	ObserveCompletion(outcome string, duration time.Duration)
}

type instrumentedCompletionClient struct {
	next     ICompletionClient
	observer CompletionObserver
}

// InstrumentCompletionClient wraps a completion client so every call is
// reported to the observer with its outcome and latency.
func InstrumentCompletionClient(next ICompletionClient, observer CompletionObserver) ICompletionClient {
	return &instrumentedCompletionClient{next: next, observer: observer}
}

func (c *instrumentedCompletionClient) Complete(ctx context.Context, systemMsg, userMsg string) (string, error) {
	start := time.Now()
	content, err := c.next.Complete(ctx, systemMsg, userMsg)

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	c.observer.ObserveCompletion(outcome, time.Since(start))

	return content, err
}
