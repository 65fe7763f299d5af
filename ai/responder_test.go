package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"framed-chat/domain"
)

func TestToCompletionMessages(t *testing.T) {
	req := require.New(t)

	turns := []Turn{
		{Role: domain.RoleSystem, Content: ScenarioPrompt},
		{Role: domain.RoleUser, Content: "who took the painting?"},
		{Role: domain.RoleAssistant, Content: "bold of you to ask"},
	}

	messages := toCompletionMessages(turns)

	req.Len(messages, 3)
	req.Equal("system", messages[0].Role)
	req.Equal(ScenarioPrompt, messages[0].Content)
	req.Equal("user", messages[1].Role)
	req.Equal("assistant", messages[2].Role)
}

func TestDeathPrompt_Names_The_Player(t *testing.T) {
	req := require.New(t)

	prompt := DeathPrompt("Dizzy Dan")

	req.Contains(prompt, "Dizzy Dan")
	req.Contains(prompt, "art gallery")
}
