package blueprint

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingClient captures every request and returns a canned result.
type recordingClient struct {
	calls []Request
	text  string
	err   error
}

func (c *recordingClient) Complete(_ context.Context, req Request) (string, error) {
	c.calls = append(c.calls, req)
	return c.text, c.err
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestGenerateIssuesExactlyOneCall(t *testing.T) {
	client := &recordingClient{text: "# Blueprint"}
	svc := NewService(client, DefaultSamplingParams(), quietLogger())

	for _, model := range []string{"MX-480", "Catalyst 9300", "FortiGate 100F"} {
		client.calls = nil
		out, err := svc.Generate(context.Background(), model)
		require.NoError(t, err)
		assert.Equal(t, "# Blueprint", out)

		require.Len(t, client.calls, 1, "exactly one outbound call per Generate")
		assert.Contains(t, client.calls[0].User, model, "prompt must interpolate the device model")
	}
}

func TestGenerateCarriesSamplingParams(t *testing.T) {
	client := &recordingClient{text: "ok"}
	params := SamplingParams{Temperature: 0.7, TopP: 0.95, ReasoningEffort: "low"}
	svc := NewService(client, params, quietLogger())

	_, err := svc.Generate(context.Background(), "MX-480")
	require.NoError(t, err)
	require.Len(t, client.calls, 1)
	assert.Equal(t, params, client.calls[0].Params)
	assert.Equal(t, systemInstruction, client.calls[0].System)
}

func TestGenerateCollapsesFailures(t *testing.T) {
	causes := []error{
		errors.New("dial tcp: connection refused"),
		errors.New("401 unauthorized"),
		errors.New("openai: empty choices"),
	}
	for _, cause := range causes {
		client := &recordingClient{err: cause}
		svc := NewService(client, DefaultSamplingParams(), quietLogger())

		out, err := svc.Generate(context.Background(), "MX-480")
		assert.Empty(t, out)
		assert.ErrorIs(t, err, ErrGeneration, "every cause collapses to the same error")
		assert.NotContains(t, err.Error(), cause.Error(), "cause detail must not leak")
	}
}

func TestGenerateEmptyPayloadFallsBack(t *testing.T) {
	client := &recordingClient{text: ""}
	svc := NewService(client, DefaultSamplingParams(), quietLogger())

	out, err := svc.Generate(context.Background(), "MX-480")
	require.NoError(t, err, "empty payload is a policy fallback, not an error")
	assert.Equal(t, FallbackContent, out)
}
