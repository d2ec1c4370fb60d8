package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	domainerrors "adforge/contexts/ad-production/creative-agents/domain/errors"
	"adforge/contexts/ad-production/creative-agents/ports"
)

// completeJSON runs one prompt and decodes the completion into out. Models
// occasionally wrap JSON in markdown fences, those are stripped before
// decoding.
func completeJSON(ctx context.Context, model ports.TextModel, prompt ports.Prompt, out any) error {
	prompt.ForceJSON = true
	raw, err := model.Complete(ctx, prompt)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domainerrors.ErrModelUnavailable, prompt.Agent, err)
	}
	cleaned := stripFences(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: %s: %v", domainerrors.ErrBadModelOutput, prompt.Agent, err)
	}
	return nil
}

func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func joinList(items []string, sep string) string {
	return strings.Join(items, sep)
}
