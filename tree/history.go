package tree

// History keeps undo and redo snapshots of a formula. Trees are immutable, so
// a snapshot keeps the IDs of the formula it was taken from and edits made
// after restoring it address the same elements. The zero value is an empty
// history whose current formula is empty.
type History struct {
	cur  []Element
	undo [][]Element
	redo [][]Element
}

// NewHistory creates a history starting at seq.
func NewHistory(seq []Element) *History {
	return &History{cur: snapshot(seq)}
}

// Current returns the current formula.
func (h *History) Current() []Element {
	return h.cur
}

// Push records seq as the result of an edit. The previous formula becomes
// undoable and the redo stack is discarded.
func (h *History) Push(seq []Element) {
	h.undo = append(h.undo, h.cur)
	h.redo = h.redo[:0]
	h.cur = snapshot(seq)
}

// Undo restores the formula before the last edit and returns it. If there is
// nothing to undo, it returns the current formula and false.
func (h *History) Undo() ([]Element, bool) {
	if len(h.undo) == 0 {
		return h.cur, false
	}
	h.redo = append(h.redo, h.cur)
	h.cur = h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return h.cur, true
}

// Redo reapplies the last undone edit and returns the result. If there is
// nothing to redo, it returns the current formula and false.
func (h *History) Redo() ([]Element, bool) {
	if len(h.redo) == 0 {
		return h.cur, false
	}
	h.undo = append(h.undo, h.cur)
	h.cur = h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return h.cur, true
}

// CanUndo reports whether Undo would change the formula.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would change the formula.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// snapshot copies the top level of seq so that later writes to the caller's
// slice do not reach the history.
func snapshot(seq []Element) []Element {
	return append([]Element(nil), seq...)
}
