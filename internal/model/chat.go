// Package model contains the application data models.
package model

import "time"

// ChatMessage is a single conversation turn held in the session store.
// Turns are immutable once created.
type ChatMessage struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Media is an attached binary payload in a chat request.
type Media struct {
	Format string `json:"format"`
	Data   string `json:"data"` // base64
}

// ChatData carries the message payload; exactly one of Text/Media is set.
type ChatData struct {
	Text  string `json:"text,omitempty"`
	Media *Media `json:"media,omitempty"`
}

// ChatRequest is the inbound message envelope.
type ChatRequest struct {
	UserID      string   `json:"user_id" binding:"required"`
	ContentType string   `json:"content_type"`
	Timestamp   string   `json:"timestamp"`
	Data        ChatData `json:"data"`
}
