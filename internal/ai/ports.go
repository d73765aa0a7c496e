package ai

import "context"

// Client — the language-generation service. Knows nothing about trips,
// providers or storage.
type Client interface {
	Complete(ctx context.Context, msgs []Message) (string, error)
}

// Message — one role-tagged segment of a model request.
type Message struct {
	Role    string // "system" | "user" | "assistant"
	Content string
}

func System(content string) Message {
	return Message{Role: "system", Content: content}
}

func User(content string) Message {
	return Message{Role: "user", Content: content}
}

func Assistant(content string) Message {
	return Message{Role: "assistant", Content: content}
}
