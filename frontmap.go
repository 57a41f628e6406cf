package frontmap

// TileSize is the edge length in pixels of a slippy-map tile.
const TileSize = 256

// Zoom clamp range for the Web Mercator tile pyramid.
const (
	MinZoom = 1
	MaxZoom = 19
)

const (
	// clickThreshold is the maximum pointer travel in pixels between down
	// and up for the gesture to count as a click rather than a drag.
	clickThreshold = 3.0
	// pointHitRadius is the half-size in pixels of the square hit region
	// around a line control point.
	pointHitRadius = 10.0
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// ObjectKind distinguishes the closed set of annotation kinds.
type ObjectKind uint8

const (
	KindUnitMarker   ObjectKind = iota // unit marker (point annotation)
	KindBattleMarker                   // battle marker (point annotation)
	KindDefenseLine                    // defense line (Bezier control polygon)
	KindBattleLine                     // battle line (Bezier control polygon)
)

// String returns the kind name used in diagnostics.
func (k ObjectKind) String() string {
	switch k {
	case KindUnitMarker:
		return "UnitMarker"
	case KindBattleMarker:
		return "BattleMarker"
	case KindDefenseLine:
		return "DefenseLine"
	case KindBattleLine:
		return "BattleLine"
	default:
		return "Unknown"
	}
}

// InteractionState identifies what the pointer stream is currently doing.
type InteractionState uint8

const (
	StateIdle              InteractionState = iota // no gesture in progress
	StateRectSelecting                             // secondary-button rectangle selection
	StatePanning                                   // map pan
	StateDraggingSelection                         // translating the selected objects
	StatePlacingPending                            // a pending-placement object follows the pointer
)

// clampZoom restricts a zoom level to the supported pyramid range.
func clampZoom(zoom int) int {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}
