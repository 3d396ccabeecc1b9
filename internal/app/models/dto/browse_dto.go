package dto

// SearchState is the search input and its suggestion dropdown
type SearchState struct {
	Query     string           `json:"query"`
	Results   []ScholarshipRow `json:"results"`
	Open      bool             `json:"open"`
	Highlight int              `json:"highlight" example:"-1"`
	NotFound  bool             `json:"notFound"`
}

// CarouselState is the recommendation carousel
type CarouselState struct {
	Groups     [][]ScholarshipCard `json:"groups"`
	GroupCount int                 `json:"groupCount"`
	Index      int                 `json:"index"`
	Offset     float64             `json:"offset"`
	Dragging   bool                `json:"dragging"`
}

// BrowseState is a snapshot of one browse session. It is what the front end
// renders and what websocket subscribers receive.
type BrowseState struct {
	SessionID      string              `json:"sessionId" example:"5b1f0c7e-8d1e-4e0a-9a43-2f8a1c3d9e10"`
	Version        uint64              `json:"version" example:"7"`
	Filters        map[string][]string `json:"filters"`
	ActiveFilters  map[string]int      `json:"activeFilters"`
	FiltersPending bool                `json:"filtersPending"`
	Items          []ScholarshipRow    `json:"items"`
	Total          int                 `json:"total"`
	Selected       *ScholarshipDetail  `json:"selected,omitempty"`
	Search         SearchState         `json:"search"`
	Carousel       CarouselState       `json:"carousel"`
}

// ToggleFilterRequest checks or unchecks one filter option
type ToggleFilterRequest struct {
	Category string `json:"category" binding:"required,filtercategory" example:"educationLevel"`
	Value    string `json:"value" binding:"required,max=200" example:"Бакалавриат"`
	Checked  bool   `json:"checked" example:"true"`
}

// SetQueryRequest replaces the search text
type SetQueryRequest struct {
	Query string `json:"query" binding:"max=200" example:"стипендия"`
}

// KeyRequest sends a keyboard key to the search dropdown
type KeyRequest struct {
	Key string `json:"key" binding:"required,oneof=ArrowDown ArrowUp Enter Escape" example:"ArrowDown"`
}

// SelectRequest selects a scholarship by ID
type SelectRequest struct {
	ID     int64  `json:"id" binding:"required,gt=0" example:"3"`
	Source string `json:"source" binding:"omitempty,oneof=row card" example:"row"`
}

// CarouselRequest pages the carousel
type CarouselRequest struct {
	Action string `json:"action" binding:"required,oneof=next prev goto" example:"goto"`
	Index  int    `json:"index" example:"2"`
}

// DragRequest moves the carousel track with a pointer
type DragRequest struct {
	Phase    string  `json:"phase" binding:"required,oneof=start move end" example:"move"`
	Position float64 `json:"position" example:"-130"`
}

// CommandRequest is the generic command form accepted by the commands endpoint
type CommandRequest struct {
	Kind     string  `json:"kind" binding:"required" example:"toggleFilter"`
	Category string  `json:"category,omitempty"`
	Value    string  `json:"value,omitempty"`
	Checked  bool    `json:"checked,omitempty"`
	Query    string  `json:"query,omitempty"`
	Key      string  `json:"key,omitempty"`
	ID       int64   `json:"id,omitempty"`
	Action   string  `json:"action,omitempty"`
	Index    int     `json:"index,omitempty"`
	Phase    string  `json:"phase,omitempty"`
	Position float64 `json:"position,omitempty"`
}
