package usecase

import (
	"sync"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/domain"
)

// Panel identifiers, in display order.
const (
	PanelOverview     = "overview"
	PanelAnalytics    = "analytics"
	PanelCatalog      = "catalog"
	PanelBookings     = "bookings"
	PanelArchitecture = "architecture"
	PanelAdvisor      = "advisor"
)

// panels is the fixed display order of the dashboard tabs.
var panels = []string{
	PanelOverview, PanelAnalytics, PanelCatalog,
	PanelBookings, PanelArchitecture, PanelAdvisor,
}

// NavigationUseCase tracks which panel is active per user. Exactly one panel
// is active at a time; selection has no side effects beyond the view swap and
// holds no business data.
type NavigationUseCase struct {
	mu     sync.Mutex
	active map[string]string // user id -> panel id
}

// NewNavigationUseCase constructs the use case.
func NewNavigationUseCase() *NavigationUseCase {
	return &NavigationUseCase{active: make(map[string]string)}
}

// Active returns the user's current panel, defaulting to overview.
func (uc *NavigationUseCase) Active(userID string) *dto.NavigationResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	panel, ok := uc.active[userID]
	if !ok {
		panel = PanelOverview
	}
	return &dto.NavigationResponse{Active: panel, Panels: append([]string(nil), panels...)}
}

// Select makes the given panel active for the user. Unknown panel ids are
// rejected with ErrInvalidInput.
func (uc *NavigationUseCase) Select(userID, panel string) (*dto.NavigationResponse, error) {
	if !validPanel(panel) {
		return nil, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	uc.active[userID] = panel
	uc.mu.Unlock()
	return uc.Active(userID), nil
}

// Reset drops the user's navigation state. Called on logout.
func (uc *NavigationUseCase) Reset(userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.active, userID)
}

func validPanel(panel string) bool {
	for _, p := range panels {
		if p == panel {
			return true
		}
	}
	return false
}
