// Package advisor holds the AI advisory sessions: one append-only transcript
// per user with a single-flight guard around the external recommendation call.
package advisor

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/ports"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
)

// FallbackReply is appended as the advisor turn when the external service
// fails or times out. Failures recover here; they never surface to the caller.
const FallbackReply = "I'm unable to respond right now. Please try again in a moment."

// Session is one user's advisory exchange: Idle -> Awaiting -> Idle.
// The transcript is append-only and strictly chronological. The waiting flag
// is the single-flight guard; it is enforced here, not in any UI.
type Session struct {
	svc     ports.AdvisorService
	timeout time.Duration

	mu      sync.Mutex
	turns   []entity.AdvisoryTurn
	waiting bool
}

// NewSession constructs an idle session bound to the advisory service.
func NewSession(svc ports.AdvisorService, timeout time.Duration) *Session {
	return &Session{svc: svc, timeout: timeout}
}

// Submit appends the user turn, calls the advisory service and appends the
// reply (or FallbackReply on any failure), then returns to idle.
//
// A whitespace-only query returns ErrInvalidInput without touching the
// transcript or the service. A submit while a request is in flight returns
// ErrAdvisorBusy. Only those two errors are possible; external failures are
// absorbed into the fallback turn.
func (s *Session) Submit(ctx context.Context, query string) (*entity.AdvisoryTurn, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	if s.waiting {
		s.mu.Unlock()
		return nil, domain.ErrAdvisorBusy
	}
	s.waiting = true
	s.turns = append(s.turns, entity.AdvisoryTurn{
		Speaker: entity.SpeakerUser,
		Text:    query,
		At:      time.Now(),
	})
	s.mu.Unlock()

	// The lock is not held across the external call; the waiting flag keeps
	// the session single-flight so turn order matches submit order.
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.svc.Recommend(callCtx, query)
	if err != nil || strings.TrimSpace(text) == "" {
		text = FallbackReply
	}

	reply := entity.AdvisoryTurn{
		Speaker: entity.SpeakerAdvisor,
		Text:    text,
		At:      time.Now(),
	}

	s.mu.Lock()
	s.turns = append(s.turns, reply)
	s.waiting = false
	s.mu.Unlock()

	return &reply, nil
}

// Transcript returns an ordered copy of the turns and the in-flight flag.
func (s *Session) Transcript() ([]entity.AdvisoryTurn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.AdvisoryTurn, len(s.turns))
	copy(out, s.turns)
	return out, s.waiting
}
