package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roam/internal/llm"
)

func TestBuildMessagesOrder(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "first ask"},
		{Role: RoleAssistant, Content: "first plan"},
	}

	msgs := BuildMessages("system rules", history, "refine it")
	require.Len(t, msgs, 4)
	assert.Equal(t, llm.Message{Role: llm.RoleSystem, Content: "system rules"}, msgs[0])
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "first ask"}, msgs[1])
	assert.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "first plan"}, msgs[2])
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "refine it"}, msgs[3])
}

func TestBuildMessagesEmptyHistory(t *testing.T) {
	msgs := BuildMessages(SystemPrompt, nil, "plan a trip to Kyoto for five days")
	require.Len(t, msgs, 2)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, llm.RoleUser, msgs[1].Role)
}

func TestSystemPromptContract(t *testing.T) {
	// The extractor and the response format both depend on these literals.
	assert.Contains(t, SystemPrompt, FollowUpMarker)
	assert.Contains(t, SystemPrompt, "# Day X")
	assert.Contains(t, SystemPrompt, "### Morning")
	assert.Contains(t, SystemPrompt, "### Afternoon")
	assert.Contains(t, SystemPrompt, "### Evening")
	assert.Contains(t, SystemPrompt, "https://www.google.com/search?q=")
}

func TestRefinementPromptEmbedsFeedback(t *testing.T) {
	p := RefinementPrompt("more beach time please")
	assert.True(t, strings.Contains(p, "more beach time please"))
	assert.Contains(t, p, FollowUpMarker)
}
