package dto

// NavigationResponse active panel plus the full panel set in display order.
type NavigationResponse struct {
	Active string   `json:"active"`
	Panels []string `json:"panels"`
}

// SelectPanelRequest body for PUT /api/navigation.
type SelectPanelRequest struct {
	Panel string `json:"panel"`
}

// PanelContentDTO static content for the overview and architecture panels.
type PanelContentDTO struct {
	Title    string            `json:"title"`
	Sections []PanelSectionDTO `json:"sections"`
}

// PanelSectionDTO one block of static panel content.
type PanelSectionDTO struct {
	Heading string   `json:"heading"`
	Items   []string `json:"items"`
}
