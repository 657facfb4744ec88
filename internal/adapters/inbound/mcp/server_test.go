package mcp_test

import (
	"testing"

	mcpadapter "github.com/agds-alt/inspekta/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInspektaMCPServer(t *testing.T) {
	s := mcpadapter.NewInspektaMCPServer(".", "")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewInspektaMCPServer(".", "")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"inspekta_score",
		"inspekta_validate",
		"inspekta_aggregate",
		"inspekta_template",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
