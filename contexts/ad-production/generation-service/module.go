package generationservice

import (
	"log/slog"
	"time"

	"adforge/contexts/ad-production/generation-service/adapters/memory"
	"adforge/contexts/ad-production/generation-service/application"
	"adforge/contexts/ad-production/generation-service/ports"
)

const (
	DefaultImageWorkers = 4
	DefaultVideoWorkers = 3
)

type Module struct {
	Manager *application.Manager
}

type Dependencies struct {
	ImagePrimary  ports.Provider
	VideoPrimary  ports.Provider
	VideoFallback ports.Provider
	Assets        ports.AssetStore
	Sink          ports.ResultSink
	Clock         ports.Clock

	ImageWorkers int
	VideoWorkers int
	Poll         application.PollPolicy

	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	imageWorkers := deps.ImageWorkers
	if imageWorkers <= 0 {
		imageWorkers = DefaultImageWorkers
	}
	videoWorkers := deps.VideoWorkers
	if videoWorkers <= 0 {
		videoWorkers = DefaultVideoWorkers
	}
	poll := deps.Poll
	if poll.MaxAttempts <= 0 {
		poll = application.DefaultPollPolicy()
	}
	return Module{
		Manager: &application.Manager{
			Images:        application.NewPool("images", imageWorkers, 0, deps.Logger),
			Videos:        application.NewPool("videos", videoWorkers, 0, deps.Logger),
			ImagePrimary:  deps.ImagePrimary,
			VideoPrimary:  deps.VideoPrimary,
			VideoFallback: deps.VideoFallback,
			Assets:        deps.Assets,
			Sink:          deps.Sink,
			Clock:         deps.Clock,
			Poll:          poll,
			Logger:        deps.Logger,
		},
	}
}

// NewInMemoryModule wires scripted providers with a fast poll policy for
// tests. Both media kinds share the image provider as primary; the second
// provider acts as the video fallback.
func NewInMemoryModule(sink ports.ResultSink, logger *slog.Logger) (Module, *memory.Provider, *memory.Provider) {
	primary := memory.NewProvider("primary")
	fallback := memory.NewProvider("fallback")
	module := NewModule(Dependencies{
		ImagePrimary:  primary,
		VideoPrimary:  primary,
		VideoFallback: fallback,
		Sink:          sink,
		Poll: application.PollPolicy{
			Initial:     time.Millisecond,
			Multiplier:  1.5,
			Max:         5 * time.Millisecond,
			MaxAttempts: 10,
		},
		Logger: logger,
	})
	return module, primary, fallback
}
