package server

import (
	"encoding/json"
	"time"
)

// MessageType identifies a WebSocket message
type MessageType string

const (
	// Client → Server
	MessageAdvise MessageType = "advise"

	// Server → Client
	MessageAdvice MessageType = "advice"
	MessageError  MessageType = "error"
)

// Message is the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

// AdviseData asks for a stay-or-fold recommendation. BudgetMs is
// optional; the server default applies when it is zero.
type AdviseData struct {
	Hole     string `json:"hole"`
	Board    string `json:"board,omitempty"`
	BudgetMs int    `json:"budgetMs,omitempty"`
}

// Server → Client Messages

type AdviceData struct {
	Phase    string  `json:"phase"`
	WinRate  float64 `json:"winRate"`
	Trials   int     `json:"trials"`
	Wins     int     `json:"wins"`
	Decision string  `json:"decision"`
}

type ErrorData struct {
	Message string `json:"message"`
}
