package generator

import (
	"github.com/dhconnelly/rtreego"

	"simpledungeon/pkg/game/state"
)

// reservation is the footprint a room claims: floor, border and the
// spread gap around it.
type reservation struct {
	room   state.Room
	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (r *reservation) Bounds() rtreego.Rect {
	return r.bounds
}

// reservationIndex rejects rooms whose footprints would overlap.
// Cells are unit squares, so rectangles that only touch do not intersect.
type reservationIndex struct {
	tree   *rtreego.Rtree
	margin int
}

func newReservationIndex(spread int) *reservationIndex {
	return &reservationIndex{
		tree:   rtreego.NewTree(2, 2, 8), // 2D, rows then columns
		margin: 1 + spread,
	}
}

// footprint returns the rectangle of cells r claims
func (ix *reservationIndex) footprint(r state.Room) (rtreego.Rect, error) {
	m := ix.margin
	return rtreego.NewRect(
		rtreego.Point{float64(r.Y - m), float64(r.X - m)},
		[]float64{float64(r.Height + 2*m), float64(r.Width + 2*m)},
	)
}

// Reserve claims the footprint of r if nothing already overlaps it
func (ix *reservationIndex) Reserve(r state.Room) bool {
	bb, err := ix.footprint(r)
	if err != nil {
		return false
	}
	if len(ix.tree.SearchIntersect(bb)) > 0 {
		return false
	}
	ix.tree.Insert(&reservation{room: r, bounds: bb})
	return true
}

// Overlapping returns the rooms whose footprint intersects that of r
func (ix *reservationIndex) Overlapping(r state.Room) []state.Room {
	bb, err := ix.footprint(r)
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(bb)
	rooms := make([]state.Room, 0, len(hits))
	for _, h := range hits {
		rooms = append(rooms, h.(*reservation).room)
	}
	return rooms
}

// Len returns the number of reserved rooms
func (ix *reservationIndex) Len() int {
	return ix.tree.Size()
}
