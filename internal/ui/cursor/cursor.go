// Package cursor tracks the selected row and scroll window of a list.
package cursor

// Cursor holds the selected index and the first visible index. The list
// length and viewport height are passed in, since both change at runtime.
type Cursor struct {
	pos    int
	offset int
}

// Pos returns the selected index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible index.
func (c Cursor) Offset() int {
	return c.offset
}

// Move shifts the selection by delta, clamped to the list. It reports
// whether the selection changed.
func (c *Cursor) Move(delta, listLen, height int) bool {
	return c.Jump(c.pos+delta, listLen, height)
}

// Jump selects pos, clamped to the list. It reports whether the selection
// changed.
func (c *Cursor) Jump(pos, listLen, height int) bool {
	if listLen == 0 {
		return false
	}
	prev := c.pos
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
	return c.pos != prev
}

// JumpStart selects the first row.
func (c *Cursor) JumpStart(listLen, height int) bool {
	return c.Jump(0, listLen, height)
}

// JumpEnd selects the last row.
func (c *Cursor) JumpEnd(listLen, height int) bool {
	return c.Jump(listLen-1, listLen, height)
}

// Fit re-clamps the selection and window after a resize.
func (c *Cursor) Fit(listLen, height int) {
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = clamp(c.pos, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 {
		return
	}
	if c.pos < c.offset {
		c.offset = c.pos
	}
	if c.pos >= c.offset+height {
		c.offset = c.pos - height + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// VisibleRange returns the visible indices [start, end). A non-positive
// height shows everything.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 {
		return 0, 0
	}
	if height <= 0 {
		return 0, listLen
	}
	return c.offset, min(c.offset+height, listLen)
}

func clamp(v, maxVal int) int {
	return max(0, min(v, maxVal))
}
