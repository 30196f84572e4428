package blueprint

import (
	"context"
	"errors"
	"log"
)

// ErrGeneration is the single user-facing failure for the generation call.
// The underlying cause is logged but never propagated to the caller.
var ErrGeneration = errors.New("unable to reach AI services; check your connection and API key, then try again")

// FallbackContent is returned when the endpoint answers with an empty
// payload. That outcome is a policy decision, not an error.
const FallbackContent = "Failed to generate blueprint content."

// Service builds prompts and runs the generation call.
type Service struct {
	client Client
	params SamplingParams
	log    *log.Logger
}

// NewService wires a generation service. A nil logger falls back to the
// process default.
func NewService(client Client, params SamplingParams, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{client: client, params: params, log: logger}
}

// Generate produces the Markdown blueprint for one device model.
//
// The caller is responsible for validating that deviceModel is non-empty
// and trimmed before invoking. Exactly one outbound call is made; there is
// no retry and no timeout beyond the transport default.
func (s *Service) Generate(ctx context.Context, deviceModel string) (string, error) {
	req := BuildRequest(deviceModel, s.params)

	text, err := s.client.Complete(ctx, req)
	if err != nil {
		s.log.Printf("generation failed device_model=%q err=%v", deviceModel, err)
		return "", ErrGeneration
	}
	if text == "" {
		return FallbackContent, nil
	}
	return text, nil
}
