package models

// ChatMessage is one prior turn of the site chat widget.
type ChatMessage struct {
	Sender string `json:"sender"` // "user" or "ai"
	Text   string `json:"text"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Response string `json:"response"`
}

// IsUser reports whether the turn was written by the customer.
func (m ChatMessage) IsUser() bool {
	return m.Sender == "user"
}
