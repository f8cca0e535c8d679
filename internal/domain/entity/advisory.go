package entity

import "time"

// Speaker of an advisory turn.
type Speaker string

const (
	SpeakerUser    Speaker = "user"
	SpeakerAdvisor Speaker = "advisor"
)

// AdvisoryTurn is one message in an advisory transcript.
// Turns are append-only and never edited or reordered.
type AdvisoryTurn struct {
	Speaker Speaker
	Text    string
	At      time.Time
}
