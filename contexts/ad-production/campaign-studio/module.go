package campaignstudio

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	httpadapter "adforge/contexts/ad-production/campaign-studio/adapters/http"
	"adforge/contexts/ad-production/campaign-studio/adapters/memory"
	"adforge/contexts/ad-production/campaign-studio/application/commands"
	"adforge/contexts/ad-production/campaign-studio/application/operations"
	"adforge/contexts/ad-production/campaign-studio/application/queries"
	"adforge/contexts/ad-production/campaign-studio/application/workers"
	"adforge/contexts/ad-production/campaign-studio/ports"
)

// Module is the campaign-studio composition unit: the HTTP handler, the
// operation dispatcher, the generation completion entry points for platform
// glue, and the outbox relay for the worker binary.
type Module struct {
	Handler     httpadapter.Handler
	Operations  operations.Dispatcher
	RecordTask  commands.RecordGenerationTaskUseCase
	Complete    commands.CompleteGenerationUseCase
	OutboxRelay workers.OutboxRelay
	Store       *memory.Store
	Publisher   *memory.Publisher
}

type Dependencies struct {
	Campaigns   ports.CampaignRepository
	Offers      ports.OfferRepository
	Avatars     ports.AvatarRepository
	Hooks       ports.HookOptionRepository
	Scripts     ports.ScriptRepository
	Keyframes   ports.KeyframeRepository
	Transitions ports.TransitionRepository
	Segments    ports.SegmentRepository
	Outbox      ports.OutboxWriter
	OutboxRepo  ports.OutboxRepository
	Publisher   ports.EventPublisher
	Director    ports.CreativeDirector
	Media       ports.MediaGenerator
	Clock       ports.Clock
	IDGenerator ports.IDGenerator

	AutoApproveStoryboard bool

	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	saveOffer := commands.SaveOfferUseCase{
		Offers: deps.Offers,
		Clock:  deps.Clock,
		IDGen:  deps.IDGenerator,
		Logger: deps.Logger,
	}
	saveAvatar := commands.SaveAvatarUseCase{
		Avatars: deps.Avatars,
		Clock:   deps.Clock,
		IDGen:   deps.IDGenerator,
		Logger:  deps.Logger,
	}
	buildOffer := commands.BuildOfferUseCase{
		Offers:   deps.Offers,
		Director: deps.Director,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}
	buildAvatar := commands.BuildAvatarUseCase{
		Offers:   deps.Offers,
		Avatars:  deps.Avatars,
		Director: deps.Director,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}
	createCampaign := commands.CreateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Offers:    deps.Offers,
		Avatars:   deps.Avatars,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	advancePhase := commands.AdvancePhaseUseCase{
		Campaigns:             deps.Campaigns,
		Scripts:               deps.Scripts,
		Keyframes:             deps.Keyframes,
		Segments:              deps.Segments,
		Outbox:                deps.Outbox,
		AutoApproveStoryboard: deps.AutoApproveStoryboard,
		Clock:                 deps.Clock,
		Logger:                deps.Logger,
	}
	generateHooks := commands.GenerateHooksUseCase{
		Campaigns: deps.Campaigns,
		Offers:    deps.Offers,
		Avatars:   deps.Avatars,
		Hooks:     deps.Hooks,
		Director:  deps.Director,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	selectHook := commands.SelectHookUseCase{
		Campaigns: deps.Campaigns,
		Hooks:     deps.Hooks,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	generateScript := commands.GenerateScriptUseCase{
		Campaigns: deps.Campaigns,
		Offers:    deps.Offers,
		Avatars:   deps.Avatars,
		Hooks:     deps.Hooks,
		Scripts:   deps.Scripts,
		Director:  deps.Director,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	updateScript := commands.UpdateScriptUseCase{
		Scripts: deps.Scripts,
		Clock:   deps.Clock,
		Logger:  deps.Logger,
	}
	approveScript := commands.ApproveScriptUseCase{
		Scripts: deps.Scripts,
		Clock:   deps.Clock,
		Logger:  deps.Logger,
	}
	generateConsistency := commands.GenerateConsistencySpecUseCase{
		Campaigns: deps.Campaigns,
		Avatars:   deps.Avatars,
		Director:  deps.Director,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	updateConsistency := commands.UpdateConsistencySpecUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	lockConsistency := commands.LockConsistencySpecUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	generateKeyframes := commands.GenerateKeyframesUseCase{
		Campaigns: deps.Campaigns,
		Scripts:   deps.Scripts,
		Keyframes: deps.Keyframes,
		Director:  deps.Director,
		Media:     deps.Media,
		Outbox:    deps.Outbox,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	selectKeyframe := commands.SelectKeyframeUseCase{
		Campaigns: deps.Campaigns,
		Keyframes: deps.Keyframes,
		Outbox:    deps.Outbox,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	generateTransitions := commands.GenerateTransitionsUseCase{
		Campaigns:   deps.Campaigns,
		Scripts:     deps.Scripts,
		Keyframes:   deps.Keyframes,
		Transitions: deps.Transitions,
		Director:    deps.Director,
		Clock:       deps.Clock,
		IDGen:       deps.IDGenerator,
		Logger:      deps.Logger,
	}
	editTransition := commands.EditTransitionUseCase{
		Transitions: deps.Transitions,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	assembleStoryboard := commands.AssembleStoryboardUseCase{
		Campaigns:   deps.Campaigns,
		Scripts:     deps.Scripts,
		Keyframes:   deps.Keyframes,
		Transitions: deps.Transitions,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	approveStoryboard := commands.ApproveStoryboardUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	generateVideo := commands.GenerateVideoUseCase{
		Campaigns: deps.Campaigns,
		Segments:  deps.Segments,
		Director:  deps.Director,
		Media:     deps.Media,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	approveSegment := commands.ApproveSegmentUseCase{
		Segments: deps.Segments,
		Outbox:   deps.Outbox,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	regenerateSegment := commands.RegenerateSegmentUseCase{
		Segments: deps.Segments,
		Media:    deps.Media,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	export := commands.ExportCampaignUseCase{
		Campaigns: deps.Campaigns,
		Segments:  deps.Segments,
		Outbox:    deps.Outbox,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	recordTask := commands.RecordGenerationTaskUseCase{
		Keyframes: deps.Keyframes,
		Segments:  deps.Segments,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	complete := commands.CompleteGenerationUseCase{
		Keyframes: deps.Keyframes,
		Segments:  deps.Segments,
		Outbox:    deps.Outbox,
		Logger:    deps.Logger,
	}
	completeByTask := commands.CompleteGenerationByTaskUseCase{
		Keyframes: deps.Keyframes,
		Segments:  deps.Segments,
		Complete:  complete,
		Logger:    deps.Logger,
	}

	getCampaignState := queries.GetCampaignStateUseCase{
		Campaigns:   deps.Campaigns,
		Hooks:       deps.Hooks,
		Scripts:     deps.Scripts,
		Keyframes:   deps.Keyframes,
		Transitions: deps.Transitions,
		Segments:    deps.Segments,
		Logger:      deps.Logger,
	}
	listCampaigns := queries.ListCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	getOffer := queries.GetOfferUseCase{Offers: deps.Offers, Logger: deps.Logger}
	listOffers := queries.ListOffersUseCase{Offers: deps.Offers, Logger: deps.Logger}
	getAvatar := queries.GetAvatarUseCase{Avatars: deps.Avatars, Logger: deps.Logger}
	listAvatars := queries.ListAvatarsUseCase{Avatars: deps.Avatars, Logger: deps.Logger}
	renderBrief := queries.RenderAvatarBriefUseCase{Avatars: deps.Avatars, Logger: deps.Logger}

	dispatcher := operations.Dispatcher{
		BuildOffer:          buildOffer,
		BuildAvatar:         buildAvatar,
		CreateCampaign:      createCampaign,
		AdvancePhase:        advancePhase,
		GenerateHooks:       generateHooks,
		SelectHook:          selectHook,
		GenerateScript:      generateScript,
		ApproveScript:       approveScript,
		GenerateConsistency: generateConsistency,
		LockConsistency:     lockConsistency,
		GenerateKeyframes:   generateKeyframes,
		SelectKeyframe:      selectKeyframe,
		GenerateTransitions: generateTransitions,
		EditTransition:      editTransition,
		AssembleStoryboard:  assembleStoryboard,
		ApproveStoryboard:   approveStoryboard,
		GenerateVideo:       generateVideo,
		ApproveSegment:      approveSegment,
		RegenerateSegment:   regenerateSegment,
		Export:              export,
		GetCampaignState:    getCampaignState,
		Logger:              deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			SaveOffer:           saveOffer,
			SaveAvatar:          saveAvatar,
			BuildOffer:          buildOffer,
			BuildAvatar:         buildAvatar,
			CreateCampaign:      createCampaign,
			AdvancePhase:        advancePhase,
			GenerateHooks:       generateHooks,
			SelectHook:          selectHook,
			GenerateScript:      generateScript,
			UpdateScript:        updateScript,
			ApproveScript:       approveScript,
			GenerateConsistency: generateConsistency,
			UpdateConsistency:   updateConsistency,
			LockConsistency:     lockConsistency,
			GenerateKeyframes:   generateKeyframes,
			SelectKeyframe:      selectKeyframe,
			GenerateTransitions: generateTransitions,
			EditTransition:      editTransition,
			AssembleStoryboard:  assembleStoryboard,
			ApproveStoryboard:   approveStoryboard,
			GenerateVideo:       generateVideo,
			ApproveSegment:      approveSegment,
			RegenerateSegment:   regenerateSegment,
			Export:              export,
			CompleteByTask:      completeByTask,
			GetCampaignState:    getCampaignState,
			ListCampaigns:       listCampaigns,
			GetOffer:            getOffer,
			ListOffers:          listOffers,
			GetAvatar:           getAvatar,
			ListAvatars:         listAvatars,
			RenderBrief:         renderBrief,
			Operations:          dispatcher,
			Validate:            validator.New(),
			Logger:              deps.Logger,
		},
		Operations: dispatcher,
		RecordTask: recordTask,
		Complete:   complete,
		OutboxRelay: workers.OutboxRelay{
			Outbox:    deps.OutboxRepo,
			Publisher: deps.Publisher,
			Clock:     deps.Clock,
			Logger:    deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against the in-memory store. Director
// and media implementations still come from the caller so tests can use
// deterministic fakes.
func NewInMemoryModule(director ports.CreativeDirector, media ports.MediaGenerator, logger *slog.Logger) Module {
	store := memory.NewStore()
	publisher := memory.NewPublisher()
	module := NewModule(Dependencies{
		Campaigns:   store,
		Offers:      store,
		Avatars:     store,
		Hooks:       store,
		Scripts:     store,
		Keyframes:   store,
		Transitions: store,
		Segments:    store,
		Outbox:      store,
		OutboxRepo:  store,
		Publisher:   publisher,
		Director:    director,
		Media:       media,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	module.Publisher = publisher
	return module
}
