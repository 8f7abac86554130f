package llm

import "context"

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content string
	Model   string
}

type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
