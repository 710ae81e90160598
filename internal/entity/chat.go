package entity

import (
	"time"
)

type ChatSender string

const (
	ChatSenderUser ChatSender = "user"
	ChatSenderBot  ChatSender = "bot"
)

// ChatMessage is one turn of the assistant transcript. Messages live only in
// session state and on the wire; they are never persisted.
type ChatMessage struct {
	ID        string     `json:"id"`
	Sender    ChatSender `json:"sender"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
}

// ChatChunk is one increment of model output relayed to the caller. A chunk
// may carry a text fragment, completed function calls, or both. Done marks
// the terminal sentinel chunk.
type ChatChunk struct {
	Text          string         `json:"text,omitempty"`
	FunctionCalls []FunctionCall `json:"functionCalls,omitempty"`
	Done          bool           `json:"done,omitempty"`
}

// ChatStream yields provider chunks in generation order. Recv returns io.EOF
// when the provider closes the stream.
type ChatStream interface {
	Recv() (ChatChunk, error)
	Close() error
}
