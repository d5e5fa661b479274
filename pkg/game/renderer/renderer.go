// Package renderer holds what every backend shares: the active renderer and
// the repaint queue that coalesces redraw requests from the map view.
package renderer

import (
	"errors"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"starmap/pkg/engine/geom"
)

// ErrNoRenderer is returned by Run before SetRenderer.
var ErrNoRenderer = errors.New("no renderer set")

// RepaintQueue collects repaint requests between frames. Duplicate rectangles
// coalesce, and a full repaint swallows every pending rectangle.
type RepaintQueue struct {
	full  bool
	rects mapset.Set[geom.Rect]
}

// NewRepaintQueue returns a queue with a full repaint pending, so the first
// frame is always drawn.
func NewRepaintQueue() *RepaintQueue {
	return &RepaintQueue{
		full:  true,
		rects: mapset.New[geom.Rect](),
	}
}

// Repaint requests a repaint of everything.
func (q *RepaintQueue) Repaint() {
	q.full = true
}

// RepaintRect requests a repaint of r. Empty rectangles are dropped.
func (q *RepaintQueue) RepaintRect(r geom.Rect) {
	if r.Empty() || q.full {
		return
	}
	q.rects.Put(r)
}

// Pending reports whether anything needs drawing.
func (q *RepaintQueue) Pending() bool {
	return q.full || q.rects.Size() > 0
}

// Take empties the queue. It returns full when the whole frame must be
// redrawn, otherwise the damaged rectangles sorted top to bottom.
func (q *RepaintQueue) Take() (full bool, rects []geom.Rect) {
	full = q.full
	if !full {
		q.rects.Each(func(r geom.Rect) {
			rects = append(rects, r)
		})
		sort.Slice(rects, func(i, j int) bool {
			if rects[i].Y != rects[j].Y {
				return rects[i].Y < rects[j].Y
			}
			return rects[i].X < rects[j].X
		})
	}
	log.WithFields(log.Fields{
		"full":  full,
		"rects": len(rects),
	}).Trace("repaint")

	q.full = false
	q.rects = mapset.New[geom.Rect]()
	return full, rects
}
