// Package mouse maps terminal mouse events onto named screen regions.
//
// Components register rectangular hit regions while rendering; the handler
// resolves clicks, hovers, scrolls and drags against them. Overlapping
// regions resolve to the most recently registered one, so overlays
// registered after the background naturally shadow it.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a screen rectangle. The right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit region with optional associated data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap is an ordered set of hit regions for one rendered frame.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Later registrations take priority on overlap.
func (m *HitMap) AddRect(id string, x, y, w, h int, data any) {
	m.regions = append(m.regions, Region{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: w, H: h},
		Data: data,
	})
}

// Test returns the topmost region containing the point, or nil.
func (m *HitMap) Test(x, y int) *Region {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].Rect.Contains(x, y) {
			return &m.regions[i]
		}
	}
	return nil
}

// Clear drops all regions, ready for the next frame.
func (m *HitMap) Clear() {
	m.regions = m.regions[:0]
}

// Regions returns the registered regions in registration order.
func (m *HitMap) Regions() []Region {
	return m.regions
}

// ActionType classifies a resolved mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionDrag
	ActionDragEnd
)

// Action is a resolved mouse event against the current hit map.
type Action struct {
	Type          ActionType
	Region        *Region
	IsDoubleClick bool
	DragDX        int
	DragDY        int
}

// ClickResult is the outcome of a click resolution.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// doubleClickWindow is the maximum gap between two clicks on the same
// region that still counts as a double-click.
const doubleClickWindow = 500 * time.Millisecond

// Handler resolves mouse events and tracks click/drag state across frames.
type Handler struct {
	HitMap *HitMap

	lastClickID string
	lastClickAt time.Time

	dragging       bool
	dragStartX     int
	dragStartY     int
	dragRegion     string
	dragStartValue int
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// Clear resets the hit map for the next frame. Click/drag state survives
// so double-clicks work across re-renders.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// HandleClick resolves a left click, detecting double-clicks on the same
// region. After a double-click the state resets, so a third quick click
// starts a fresh single click.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)

	if region != nil && region.ID == h.lastClickID && time.Since(h.lastClickAt) < doubleClickWindow {
		h.lastClickID = ""
		return ClickResult{Region: region, IsDoubleClick: true}
	}

	if region != nil {
		h.lastClickID = region.ID
		h.lastClickAt = time.Now()
	} else {
		h.lastClickID = ""
	}
	return ClickResult{Region: region}
}

// StartDrag begins a drag anchored at (x, y). startValue is the host-side
// quantity being dragged (a split position, a scroll offset) captured at
// drag start.
func (h *Handler) StartDrag(x, y int, region string, startValue int) {
	h.dragging = true
	h.dragStartX = x
	h.dragStartY = y
	h.dragRegion = region
	h.dragStartValue = startValue
}

// IsDragging reports whether a drag is in progress.
func (h *Handler) IsDragging() bool { return h.dragging }

// DragRegion returns the region ID the current drag started on.
func (h *Handler) DragRegion() string { return h.dragRegion }

// DragStartValue returns the host value captured at drag start.
func (h *Handler) DragStartValue() int { return h.dragStartValue }

// DragDelta returns the displacement from the drag anchor.
func (h *Handler) DragDelta(x, y int) (dx, dy int) {
	return x - h.dragStartX, y - h.dragStartY
}

// EndDrag finishes the current drag.
func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
	h.dragStartValue = 0
}

// HandleMouse resolves a bubbletea mouse message into an Action.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if msg.Shift {
				return Action{Type: ActionScrollLeft}
			}
			return Action{Type: ActionScrollUp}
		case tea.MouseButtonWheelDown:
			if msg.Shift {
				return Action{Type: ActionScrollRight}
			}
			return Action{Type: ActionScrollDown}
		case tea.MouseButtonLeft:
			result := h.HandleClick(msg.X, msg.Y)
			return Action{
				Type:          ActionClick,
				Region:        result.Region,
				IsDoubleClick: result.IsDoubleClick,
			}
		}

	case tea.MouseActionMotion:
		if h.dragging {
			dx, dy := h.DragDelta(msg.X, msg.Y)
			return Action{Type: ActionDrag, DragDX: dx, DragDY: dy}
		}
		return Action{Type: ActionHover, Region: h.HitMap.Test(msg.X, msg.Y)}

	case tea.MouseActionRelease:
		if h.dragging {
			h.EndDrag()
			return Action{Type: ActionDragEnd}
		}
	}
	return Action{Type: ActionNone}
}
