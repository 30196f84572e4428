package blueprint

import (
	"context"
	"strings"
)

// MockClient fabricates a small blueprint locally. Useful for development
// and CLI tests without touching an external model.
type MockClient struct{}

func (MockClient) Complete(_ context.Context, req Request) (string, error) {
	var sb strings.Builder
	sb.WriteString("# Deployment Blueprint (mock)\n\n")
	sb.WriteString("## Executive Summary\n\n")
	sb.WriteString("Locally fabricated blueprint for offline use. **No model was contacted.**\n\n")
	sb.WriteString("## Request\n\n")
	sb.WriteString("```\n")
	sb.WriteString(req.User)
	sb.WriteString("\n```\n")
	return sb.String(), nil
}
