package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	log "github.com/sirupsen/logrus"

	"starmap/pkg/game/config"
	"starmap/pkg/game/renderer"
	"starmap/pkg/game/starmap"
	"starmap/pkg/game/state"
)

// keyRepeatInfo tracks the repeat state for a key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// Options configures a new renderer.
type Options struct {
	MapPath string // empty generates a starfield
	Seed    int64  // starfield seed

	Width  int
	Height int

	Prefs *config.Preferences
	Game  *state.Game
}

// EbitenRenderer hosts the map view in an Ebiten window
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	view  *starmap.MapView
	game  *state.Game
	prefs *config.Preferences

	// Pending repaints reported by the view
	queue *renderer.RepaintQueue

	// Font source and cached face for labels and the status line
	fontSource   *text.GoTextFaceSource
	cachedUIFace *text.GoTextFace

	keyRepeatState map[string]keyRepeatInfo

	// Last cursor position sent to the view
	lastCursorX, lastCursorY int
	cursorKnown              bool

	windowOpenedLogged bool
	quitting           bool
	screenshotPending  bool
}

// New creates the renderer, loads its artwork and wires the view to the game.
func New(opts Options) (*EbitenRenderer, error) {
	if opts.Game == nil {
		return nil, errors.New("ebiten: no game state")
	}
	if opts.Prefs == nil {
		opts.Prefs = config.Current()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = opts.Prefs.WindowWidth, opts.Prefs.WindowHeight
	}

	src, err := loadFontSource()
	if err != nil {
		return nil, err
	}

	e := &EbitenRenderer{
		windowWidth:    max(opts.Width, minWindowWidth),
		windowHeight:   max(opts.Height, minWindowHeight),
		game:           opts.Game,
		prefs:          opts.Prefs,
		queue:          renderer.NewRepaintQueue(),
		fontSource:     src,
		keyRepeatState: make(map[string]keyRepeatInfo),
	}

	assets, err := e.loadAssets(opts.MapPath, opts.Seed)
	if err != nil {
		return nil, err
	}

	viewOpts := []starmap.Option{
		starmap.WithInvalidator(e.queue),
		starmap.WithZoomListener(e.saveZoomPreference),
	}
	if opts.Prefs.ScrollStep > 0 {
		viewOpts = append(viewOpts, starmap.WithScrollStep(opts.Prefs.ScrollStep))
	}
	if opts.Prefs.MagnifyNotch >= 0 {
		viewOpts = append(viewOpts, starmap.WithNotch(opts.Prefs.MagnifyNotch))
	}
	e.view = starmap.New(assets, viewOpts...)
	e.bindGame()
	e.view.Resize(e.windowWidth, e.windowHeight)

	return e, nil
}

// View returns the hosted map view.
func (e *EbitenRenderer) View() *starmap.MapView {
	return e.view
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run() error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(minWindowWidth, minWindowHeight, -1, -1)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Quit closes the window at the end of the current frame
func (e *EbitenRenderer) Quit() {
	e.quitting = true
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
	}
	e.view.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// shutdown stores the window size for the next run
func (e *EbitenRenderer) shutdown() error {
	if err := e.prefs.SetWindowSize(e.windowWidth, e.windowHeight); err != nil {
		log.WithError(err).Warn("could not save preferences")
	}
	log.Info("window closed")
	return ebiten.Termination
}
