package memory

import (
	"context"
	"fmt"
	"sync"

	"adforge/contexts/ad-production/generation-service/domain/entities"
	"adforge/contexts/ad-production/generation-service/ports"
)

// Outcome scripts one provider attempt for tests: how many polls the task
// stays in running before going terminal, and what it resolves to.
type Outcome struct {
	SubmitErr    error
	RunningPolls int
	Succeed      bool
	ResultURL    string
	Reason       string
}

// Provider is a scripted in-process backend. Outcomes are consumed in
// submission order; once the script runs out every task succeeds with a
// synthetic URL.
type Provider struct {
	ProviderName string
	Model        string

	mu       sync.Mutex
	script   []Outcome
	tasks    map[string]*taskState
	sequence int
}

type taskState struct {
	outcome Outcome
	polls   int
}

func NewProvider(name string) *Provider {
	return &Provider{
		ProviderName: name,
		Model:        name + "-model",
		tasks:        make(map[string]*taskState),
	}
}

func (p *Provider) Enqueue(outcomes ...Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script = append(p.script, outcomes...)
}

func (p *Provider) Name() string { return p.ProviderName }

func (p *Provider) Submit(_ context.Context, req ports.SubmitRequest) (ports.SubmittedTask, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	outcome := Outcome{Succeed: true}
	if len(p.script) > 0 {
		outcome = p.script[0]
		p.script = p.script[1:]
	}
	if outcome.SubmitErr != nil {
		return ports.SubmittedTask{}, outcome.SubmitErr
	}
	p.sequence++
	taskID := fmt.Sprintf("%s-task-%d", p.ProviderName, p.sequence)
	if outcome.ResultURL == "" {
		outcome.ResultURL = fmt.Sprintf("https://assets.local/%s/%s.%s", p.ProviderName, taskID, extensionFor(req.Kind))
	}
	p.tasks[taskID] = &taskState{outcome: outcome}
	return ports.SubmittedTask{TaskID: taskID, Provider: p.ProviderName, Model: p.Model}, nil
}

func (p *Provider) Poll(_ context.Context, taskID string) (ports.PollResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	state, ok := p.tasks[taskID]
	if !ok {
		return ports.PollResult{}, fmt.Errorf("unknown task %s", taskID)
	}
	state.polls++
	if state.polls <= state.outcome.RunningPolls {
		return ports.PollResult{State: ports.TaskStateRunning}, nil
	}
	if state.outcome.Succeed {
		return ports.PollResult{State: ports.TaskStateSucceeded, ResultURL: state.outcome.ResultURL}, nil
	}
	reason := state.outcome.Reason
	if reason == "" {
		reason = "scripted failure"
	}
	return ports.PollResult{State: ports.TaskStateFailed, Reason: reason}, nil
}

func extensionFor(kind entities.JobKind) string {
	if kind == entities.JobKindVideo {
		return "mp4"
	}
	return "jpg"
}
