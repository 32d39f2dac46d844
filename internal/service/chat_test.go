package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain json", `{"approved":true}`, `{"approved":true}`},
		{"json fence", "```json\n{\"approved\":true}\n```", `{"approved":true}`},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"surrounding whitespace", "  {\"approved\":false} \n", `{"approved":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripJSONFences(tt.raw))
		})
	}
}

func TestModerate_MissingAPIKeyRejectsWithBusyReason(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	chat := newChatService(zap.NewNop())

	verdict, err := chat.Moderate(context.Background(), "một lời tâm sự")
	require.NoError(t, err)
	assert.False(t, verdict.Approved)
	assert.Equal(t, moderationBusyReason, verdict.Reason)
}

func TestStreamReply_MissingAPIKeyIsUnavailable(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	chat := newChatService(zap.NewNop())

	err := chat.StreamReply(context.Background(), "An", "chào bạn", func(string) {})
	assert.ErrorIs(t, err, ErrChatUnavailable)
}
