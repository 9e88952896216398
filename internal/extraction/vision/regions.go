package vision

import "image"

// The profile screen lays equipment out as a 4x2 grid filling the bottom
// half of the screenshot. The top row holds the character portrait followed
// by racket, grip and shoes; the bottom row holds an icon column followed by
// wristband, nutrition and training. Each card shows its level on a badge
// whose position within the cell differs between the two rows.

const (
	// equipmentTop is where the equipment grid starts, as a fraction of
	// image height.
	equipmentTop = 0.5

	gridCols = 4
	gridRows = 2
)

// fracRect is a rectangle in cell-relative coordinates, each value a 0-1
// fraction of the cell's width or height.
type fracRect struct {
	Left, Top, Right, Bottom float64
}

// cardCell describes one grid cell and where its level badge sits.
// Slot 0 is the character portrait.
type cardCell struct {
	Slot  int
	Row   int
	Col   int
	Badge fracRect
}

// Badge geometry per row: top-row cards sit low in their cell so the badge
// lands in the bottom-left corner; bottom-row cards sit high so the badge
// lands in a mid-left band.
var (
	topRowBadge    = fracRect{Left: 0, Top: 0.75, Right: 0.22, Bottom: 1.0}
	bottomRowBadge = fracRect{Left: 0, Top: 0.38, Right: 0.22, Bottom: 0.58}
)

// cardGrid is the full declarative layout.
var cardGrid = []cardCell{
	{Slot: 0, Row: 0, Col: 0, Badge: topRowBadge},
	{Slot: 1, Row: 0, Col: 1, Badge: topRowBadge},
	{Slot: 2, Row: 0, Col: 2, Badge: topRowBadge},
	{Slot: 3, Row: 0, Col: 3, Badge: topRowBadge},
	{Slot: 4, Row: 1, Col: 1, Badge: bottomRowBadge},
	{Slot: 5, Row: 1, Col: 2, Badge: bottomRowBadge},
	{Slot: 6, Row: 1, Col: 3, Badge: bottomRowBadge},
}

// equipmentRegion returns the pixel bounds of the equipment grid within an
// image of the given size.
func equipmentRegion(bounds image.Rectangle) image.Rectangle {
	top := bounds.Min.Y + int(float64(bounds.Dy())*equipmentTop)
	return image.Rect(bounds.Min.X, top, bounds.Max.X, bounds.Max.Y)
}

// cellRegion returns the pixel bounds of a grid cell within the equipment
// region.
func cellRegion(equip image.Rectangle, cell cardCell) image.Rectangle {
	colW := equip.Dx() / gridCols
	rowH := equip.Dy() / gridRows
	x0 := equip.Min.X + cell.Col*colW
	y0 := equip.Min.Y + cell.Row*rowH
	return image.Rect(x0, y0, x0+colW, y0+rowH)
}

// badgeRegion returns the pixel bounds of the level badge within a cell.
func badgeRegion(cellBounds image.Rectangle, badge fracRect) image.Rectangle {
	w := float64(cellBounds.Dx())
	h := float64(cellBounds.Dy())
	return image.Rect(
		cellBounds.Min.X+int(w*badge.Left),
		cellBounds.Min.Y+int(h*badge.Top),
		cellBounds.Min.X+int(w*badge.Right),
		cellBounds.Min.Y+int(h*badge.Bottom),
	)
}
