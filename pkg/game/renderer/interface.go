package renderer

// Renderer defines the interface for host toolkit backends.
// A backend owns the window and feeds the map view its input and paint calls.
type Renderer interface {
	// Run opens the window and blocks until it closes
	Run() error

	// Quit asks the backend to close after the current frame
	Quit()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Run runs the current renderer
func Run() error {
	if Current == nil {
		return ErrNoRenderer
	}
	return Current.Run()
}
