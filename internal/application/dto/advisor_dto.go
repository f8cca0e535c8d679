package dto

import "time"

// AdvisorMessageRequest body for POST /api/advisor/messages.
type AdvisorMessageRequest struct {
	Query string `json:"query"`
}

// AdvisoryTurnDTO one message of the transcript.
type AdvisoryTurnDTO struct {
	Speaker string    `json:"speaker"` // "user" | "advisor"
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

// TranscriptResponse ordered transcript plus the in-flight flag so the client
// can show a composing indicator.
type TranscriptResponse struct {
	Turns   []AdvisoryTurnDTO `json:"turns"`
	Waiting bool              `json:"waiting"`
}
