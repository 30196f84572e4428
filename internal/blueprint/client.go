package blueprint

import "context"

// SamplingParams are the generation knobs sent with every request.
type SamplingParams struct {
	Temperature     float64
	TopP            float64
	ReasoningEffort string // minimal|low|medium|high, empty to omit
}

// Request is a single generation exchange. It is immutable once built and
// constructed fresh per call.
type Request struct {
	System string
	User   string
	Params SamplingParams
}

// Client abstracts the hosted text-generation endpoint so the service can
// be exercised against a mock.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ClientConfig carries the transport settings for a concrete client.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}
