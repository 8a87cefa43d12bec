package model

// Message is one turn of a conversation. A conversation is an ordered []Message
// whose order is the conversational order and is never rearranged.
type Message struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

// ChatRequest is the outbound chat completion payload shared by every provider.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// NewChatRequest builds the payload for modelName. A nil history is sent as an empty array, never null.
func NewChatRequest(modelName string, messages []Message) ChatRequest {
	if messages == nil {
		messages = []Message{}
	}
	return ChatRequest{
		Model:    modelName,
		Messages: messages,
	}
}
