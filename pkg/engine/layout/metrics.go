package layout

// Metrics is the layout-constants table. Every offset and size the layout
// engine uses that does not come from an asset lives here. Offsets named
// FromRight are subtracted from the widget width.
type Metrics struct {
	// Scrollbar tracks
	ScrollInset     int // gap between the content frame and a track
	ScrollThickness int
	HScrollTrim     int // horizontal track is w - HScrollTrim wide
	VScrollTrim     int // extra rows removed from the vertical track

	// Ship control box in the bottom panel
	ShipControlFromRight int
	ShipControlDown      int // below the top of the bottom content panel
	ShipControlW         int
	ShipControlH         int

	// Minimap in the bottom right corner
	MinimapFromRight  int
	MinimapFromBottom int // above the bottom info bar
	MinimapW          int
	MinimapH          int

	// Right-hand panel: colony and equipment lists
	PanelFromRight  int
	PanelTopPad     int
	StepButtonW     int // prev/next
	StepButtonH     int
	StepButtonGap   int // x distance from prev to next
	ListW           int
	ListOverhang    int // colony list extends this far into the bottom right piece
	WideButtonH     int // colony and equipment buttons
	EquipmentGap    int
	EquipmentListH  int
	EquipmentW      int
	InfoDown        int // below the equipment button
	InfoW           int
	InfoH           int
	MagnifyRight    int // from the equipment button's left edge
	MagnifyDown     int
	MagnifyW        int
	MagnifyH        int

	// Bottom panel: colonize, layer toggles, name mode, ship commands
	ColonizeFromRight int
	ColonizeDown      int
	ColonizeW         int
	ColonizeH         int
	ToggleW           int
	ToggleH           int
	ToggleColGap      int
	ToggleRowGap      int
	ToggleFirstDown   int // radars below colonize
	NameW             int
	ShipCmdLeft       int // move button left of the stars button
	ShipCmdW          int
	ShipCmdH          int
	ShipCmdGap        int

	// Satellite launch buttons stacked left of colonize
	SatelliteLeft int
	SatelliteW    int
	SatelliteH    int
	SatelliteGap  int
}

// DefaultMetrics is tuned for the 640x480 chrome set.
var DefaultMetrics = Metrics{
	ScrollInset:     3,
	ScrollThickness: 18,
	HScrollTrim:     142,
	VScrollTrim:     7,

	ShipControlFromRight: 355,
	ShipControlDown:      28,
	ShipControlW:         106,
	ShipControlH:         83,

	MinimapFromRight:  133,
	MinimapFromBottom: 109,
	MinimapW:          131,
	MinimapH:          108,

	PanelFromRight: 105,
	PanelTopPad:    5,
	StepButtonW:    50,
	StepButtonH:    20,
	StepButtonGap:  52,
	ListW:          105,
	ListOverhang:   16,
	WideButtonH:    28,
	EquipmentGap:   7,
	EquipmentListH: 33,
	EquipmentW:     103,
	InfoDown:       105,
	InfoW:          102,
	InfoH:          39,
	MagnifyRight:   69,
	MagnifyDown:    35,
	MagnifyW:       33,
	MagnifyH:       64,

	ColonizeFromRight: 245,
	ColonizeDown:      30,
	ColonizeW:         108,
	ColonizeH:         15,
	ToggleW:           53,
	ToggleH:           18,
	ToggleColGap:      55,
	ToggleRowGap:      20,
	ToggleFirstDown:   21,
	NameW:             108,
	ShipCmdLeft:       105,
	ShipCmdW:          98,
	ShipCmdH:          23,
	ShipCmdGap:        27,

	SatelliteLeft: 91,
	SatelliteW:    84,
	SatelliteH:    17,
	SatelliteGap:  20,
}
