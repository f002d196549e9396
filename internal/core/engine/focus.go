package engine

import "time"

// Keyboard focus moves over the visible row list and never wraps.
// Navigation is suspended while the engine is loading.

// FocusMove moves focus by delta rows, clamped to the visible range. The
// first move on an unfocused grid lands on the first row.
func (e *Engine[T]) FocusMove(delta int) {
	e.nav.Move(delta, e.VisibleCount())
}

// FocusPageMove moves focus by a whole page stride in the given
// direction, clamped like any other move.
func (e *Engine[T]) FocusPageMove(dir int) {
	if dir == 0 {
		return
	}
	e.nav.Move(dir*e.page.ItemsPerPage, e.VisibleCount())
}

// FocusHome moves focus to the first visible row.
func (e *Engine[T]) FocusHome() { e.nav.Home(e.VisibleCount()) }

// FocusEnd moves focus to the last visible row.
func (e *Engine[T]) FocusEnd() { e.nav.End(e.VisibleCount()) }

// Focused returns the focused visible row index, -1 when nothing is
// focused.
func (e *Engine[T]) Focused() int { return e.nav.Focused() }

// Activate applies the focused row as the active row and toggles its
// selection, mirroring a pointer click.
func (e *Engine[T]) Activate() {
	index, ok := e.nav.Activate()
	if !ok {
		return
	}
	e.SetActiveRow(index)
	e.ToggleSelectAt(index)
}

// OpenCallout opens a column's callout, implicitly dismissing any other
// open callout and cancelling its pending dismiss.
func (e *Engine[T]) OpenCallout(colKey string) {
	if !e.layout.Known(colKey) {
		e.logger.Warn().Str("column", colKey).Msg("callout request for unknown column")
		return
	}
	e.callout.Open(colKey)
}

// RequestCalloutDismiss arms the dismiss countdown. Re-entering the
// callout before it elapses keeps the callout open.
func (e *Engine[T]) RequestCalloutDismiss() { e.callout.RequestDismiss() }

// CancelCalloutDismiss disarms a pending dismiss.
func (e *Engine[T]) CancelCalloutDismiss() { e.callout.CancelDismiss() }

// DismissCallout closes the open callout immediately.
func (e *Engine[T]) DismissCallout() { e.callout.Dismiss() }

// TickCallout advances the dismiss countdown by elapsed time.
func (e *Engine[T]) TickCallout(elapsed time.Duration) { e.callout.Tick(elapsed) }

// OpenCalloutKey returns the open callout's column key, "" when closed.
func (e *Engine[T]) OpenCalloutKey() string { return e.callout.Active() }
