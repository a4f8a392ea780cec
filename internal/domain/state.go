package domain

// PopupState represents the popup's visibility state
type PopupState int

const (
	StateHidden PopupState = iota
	StateVisible
)

// String returns a human-readable state name
func (s PopupState) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateVisible:
		return "visible"
	default:
		return "unknown"
	}
}
