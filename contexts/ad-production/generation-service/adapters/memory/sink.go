package memory

import (
	"context"
	"sync"

	"adforge/contexts/ad-production/generation-service/ports"
)

// Sink records pipeline callbacks so tests can wait for and inspect
// completions.
type Sink struct {
	mu          sync.Mutex
	submissions []Submission
	completions []ports.CompletionResult
	done        chan ports.CompletionResult
}

type Submission struct {
	AssetID string
	Task    ports.SubmittedTask
}

func NewSink() *Sink {
	return &Sink{done: make(chan ports.CompletionResult, 64)}
}

func (s *Sink) TaskSubmitted(_ context.Context, assetID string, task ports.SubmittedTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, Submission{AssetID: assetID, Task: task})
	return nil
}

func (s *Sink) JobCompleted(_ context.Context, result ports.CompletionResult) error {
	s.mu.Lock()
	s.completions = append(s.completions, result)
	s.mu.Unlock()
	s.done <- result
	return nil
}

// Wait blocks until the next completion arrives or the context ends.
func (s *Sink) Wait(ctx context.Context) (ports.CompletionResult, error) {
	select {
	case result := <-s.done:
		return result, nil
	case <-ctx.Done():
		return ports.CompletionResult{}, ctx.Err()
	}
}

func (s *Sink) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Submission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

func (s *Sink) Completions() []ports.CompletionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.CompletionResult, len(s.completions))
	copy(out, s.completions)
	return out
}
