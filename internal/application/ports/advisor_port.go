package ports

import "context"

// AdvisorService is the outbound port for the external recommendation service.
// Any adapter (Gemini, Anthropic, mock) must implement this interface; the
// application layer only knows this contract, never the concrete backend.
type AdvisorService interface {
	// Recommend answers a free-text showroom query with a free-text reply.
	// The context should carry a timeout: external latency is unbounded.
	Recommend(ctx context.Context, query string) (string, error)
}
