package config

import "github.com/caarlos0/env/v11"

// Config is centralized process configuration, populated from environment
// variables. Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"adforge"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	FreepikAPIKey  string `env:"FREEPIK_API_KEY"`
	OpenAIAPIKey   string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL  string `env:"OPENAI_BASE_URL"`
	OpenAIModel    string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	WebhookBaseURL string `env:"WEBHOOK_BASE_URL"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	ImageWorkers int `env:"IMAGE_WORKERS" envDefault:"4"`
	VideoWorkers int `env:"VIDEO_WORKERS" envDefault:"3"`

	OutboxInterval string `env:"OUTBOX_INTERVAL" envDefault:"2s"`

	// AutoApproveStoryboard lets unattended pipelines enter video generation
	// without an explicit storyboard approval.
	AutoApproveStoryboard bool `env:"AUTO_APPROVE_STORYBOARD" envDefault:"false"`

	// StaticAgents swaps the OpenAI-backed content agents for deterministic
	// offline ones.
	StaticAgents bool `env:"STATIC_AGENTS" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
