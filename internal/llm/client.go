// Package llm defines the gateway to hosted chat-completion models and a
// concrete OpenAI-backed client.
package llm

import "context"

// Message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ResponseFormatJSON asks the model to emit a JSON object.
const ResponseFormatJSON = "json_object"

// Message is one role-tagged entry in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompleteOptions carries per-request hints for the completion call.
type CompleteOptions struct {
	// ResponseFormat is the response-format hint, e.g. ResponseFormatJSON.
	// Empty means no hint.
	ResponseFormat string
}

// Client is the minimal completion capability the assistant needs: an
// ordered message list in, the assistant message text out.
type Client interface {
	Complete(ctx context.Context, messages []Message, opts CompleteOptions) (string, error)
}
