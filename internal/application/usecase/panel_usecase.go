package usecase

import "github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"

// PanelUseCase serves the static overview and architecture panels. The
// content is fixed; rendering is the client's concern.
type PanelUseCase struct{}

// NewPanelUseCase constructs the use case.
func NewPanelUseCase() *PanelUseCase {
	return &PanelUseCase{}
}

// Overview returns the project summary shown on the landing tab.
func (uc *PanelUseCase) Overview() *dto.PanelContentDTO {
	return &dto.PanelContentDTO{
		Title: "ShowroomOS — AI-Driven Management System",
		Sections: []dto.PanelSectionDTO{
			{
				Heading: "What this is",
				Items: []string{
					"Dealership showroom management dashboard",
					"Sales analytics with live booking aggregates",
					"Vehicle catalog with fuel-type and stock filters",
					"Test-drive booking queue with approval workflow",
					"AI advisor for vehicle recommendations",
				},
			},
			{
				Heading: "Roles",
				Items:   []string{"Admin", "Sales Manager", "Sales Executive", "Customer"},
			},
		},
	}
}

// Architecture returns the static component diagram as structured text.
func (uc *PanelUseCase) Architecture() *dto.PanelContentDTO {
	return &dto.PanelContentDTO{
		Title: "System Architecture",
		Sections: []dto.PanelSectionDTO{
			{
				Heading: "Core stores",
				Items: []string{
					"Session/identity store (JWT-backed)",
					"Vehicle catalog (immutable, seeded at startup)",
					"Booking registry (status lifecycle only mutation)",
					"Advisory sessions (append-only transcripts)",
				},
			},
			{
				Heading: "Derived views",
				Items: []string{
					"Analytics projector: stats recomputed per request",
					"Navigation: one active panel per user",
				},
			},
			{
				Heading: "External services",
				Items: []string{
					"Recommendation API (Gemini or Anthropic), text in / text out",
				},
			},
		},
	}
}
