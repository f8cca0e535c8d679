package advisor

import (
	"context"
	"sync"
	"time"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/ports"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain/entity"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/pkg/logger"
)

// Manager owns the advisory sessions, keyed by user id. Sessions are created
// lazily on first use and dropped on logout.
type Manager struct {
	svc     ports.AdvisorService
	timeout time.Duration
	log     *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager constructs the session manager.
func NewManager(svc ports.AdvisorService, timeout time.Duration, log *logger.Logger) *Manager {
	return &Manager{
		svc:      svc,
		timeout:  timeout,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		s = NewSession(m.svc, m.timeout)
		m.sessions[userID] = s
	}
	return s
}

// Submit forwards the query to the user's session and returns the advisor
// reply turn. Errors are limited to ErrInvalidInput and ErrAdvisorBusy.
func (m *Manager) Submit(ctx context.Context, userID, query string) (*dto.AdvisoryTurnDTO, error) {
	reply, err := m.session(userID).Submit(ctx, query)
	if err != nil {
		return nil, err
	}
	if reply.Text == FallbackReply {
		m.log.Warn().Str("user_id", userID).Msg("advisory service unavailable, fallback reply appended")
	}
	return toTurnDTO(*reply), nil
}

// Transcript returns the ordered transcript for the user plus the in-flight
// flag. A user without a session gets an empty, idle transcript.
func (m *Manager) Transcript(userID string) *dto.TranscriptResponse {
	turns, waiting := m.session(userID).Transcript()
	out := &dto.TranscriptResponse{
		Turns:   make([]dto.AdvisoryTurnDTO, 0, len(turns)),
		Waiting: waiting,
	}
	for _, t := range turns {
		out.Turns = append(out.Turns, *toTurnDTO(t))
	}
	return out
}

// Reset discards the user's session. Called on logout.
func (m *Manager) Reset(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

func toTurnDTO(t entity.AdvisoryTurn) *dto.AdvisoryTurnDTO {
	return &dto.AdvisoryTurnDTO{
		Speaker: string(t.Speaker),
		Text:    t.Text,
		At:      t.At,
	}
}
