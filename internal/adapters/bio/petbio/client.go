package petbio

import (
	"strings"
	"time"

	"pet-care-platform/internal/platform/httpclient"
)

// Config para el upstream de generación de bios.
// Si falta BaseURL o APIKey el generador queda en modo fallback.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func (c Config) IsConfigured() bool {
	return strings.TrimSpace(c.BaseURL) != "" && strings.TrimSpace(c.APIKey) != ""
}

// Client habla con el upstream de completions compatible con chat.
type Client struct {
	http  *httpclient.Client
	cfg   Config
	model string
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{http: hc, cfg: cfg, model: model}, nil
}
