package models

import "time"

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // user or assistant
	Content string `json:"content"`
}

// Session is the per-conversation state held in the session store. The
// itinerary itself is NOT identified by the session id; the id only scopes
// calls to the remote trip store.
type Session struct {
	ID           string        `json:"id"`
	WebSessionID string        `json:"web_session_id,omitempty"`
	ScenarioID   string        `json:"scenario_id,omitempty"`
	Transcript   []ChatMessage `json:"transcript,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
