package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the pointer is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being pressed.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// UIComponent marks an entity as a UI element and tracks its interaction state.
// Entities with this component are drawn by the UI render pass, above sprites.
type UIComponent struct {
	State UIState
	// Layer 绘制顺序，数值大的后绘制
	Layer int
}
