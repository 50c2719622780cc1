package entity

// ChatMessage is one turn of the assistant conversation. The history lives
// only in the caller's request; nothing is persisted.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReply is the assistant's answer plus the provider's token usage, if
// it reported any.
type ChatReply struct {
	Message string                 `json:"message"`
	Usage   map[string]interface{} `json:"usage,omitempty"`
}
