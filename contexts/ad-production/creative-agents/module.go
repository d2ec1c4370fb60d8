package creativeagents

import (
	"log/slog"

	"adforge/contexts/ad-production/creative-agents/adapters/static"
	"adforge/contexts/ad-production/creative-agents/application"
	"adforge/contexts/ad-production/creative-agents/ports"
)

// Module bundles the content agents behind one construction point. All
// agents share the same text model.
type Module struct {
	OfferBuilder        application.OfferBuilder
	AvatarResearcher    application.AvatarResearcher
	HookWriter          application.HookWriter
	ScriptWriter        application.ScriptWriter
	ConsistencyEnforcer application.ConsistencyEnforcer
	PromptEngineer      application.PromptEngineer
}

type Dependencies struct {
	Model  ports.TextModel
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		OfferBuilder:        application.OfferBuilder{Model: deps.Model, Logger: deps.Logger},
		AvatarResearcher:    application.AvatarResearcher{Model: deps.Model, Logger: deps.Logger},
		HookWriter:          application.HookWriter{Model: deps.Model, Logger: deps.Logger},
		ScriptWriter:        application.ScriptWriter{Model: deps.Model, Logger: deps.Logger},
		ConsistencyEnforcer: application.ConsistencyEnforcer{Model: deps.Model, Logger: deps.Logger},
		PromptEngineer:      application.PromptEngineer{Model: deps.Model, Logger: deps.Logger},
	}
}

// NewInMemoryModule wires the agents against the deterministic static model.
func NewInMemoryModule(logger *slog.Logger) Module {
	return NewModule(Dependencies{Model: static.NewModel(), Logger: logger})
}
