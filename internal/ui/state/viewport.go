package state

// Cursor tracks the screen row of the selection indicator. Min <= Current < Max
// and Max-Min is the number of visible rows.
type Cursor struct {
	Current int
	Min     int
	Max     int
}

func visibleRange(length, height int) int {
	rng := height
	if length < height {
		rng = length
	}
	if rng < 1 {
		rng = 1
	}
	return rng
}

// Top places the cursor on the first row of the visible range.
func Top(length int, b Bounds) Cursor {
	rng := visibleRange(length, b.H)
	return Cursor{Current: b.Y, Min: b.Y, Max: b.Y + rng}
}

// Center places the cursor on the middle row of the visible range.
func Center(length int, b Bounds) Cursor {
	c := Top(length, b)
	c.Current = c.Min + (c.Range()-1)/2
	return c
}

// Range returns the number of visible rows.
func (c Cursor) Range() int {
	return c.Max - c.Min
}

// Offset returns the cursor row relative to the top of the visible range.
func (c Cursor) Offset() int {
	return c.Current - c.Min
}

// MoveUp moves the cursor up by step rows if it stays within range.
func (c *Cursor) MoveUp(step int) bool {
	if c.Current < c.Min+step {
		return false
	}
	c.Current -= step
	return true
}

// MoveDown moves the cursor down by step rows if it stays within range.
func (c *Cursor) MoveDown(step int) bool {
	if c.Current+step > c.Max-1 {
		return false
	}
	c.Current += step
	return true
}

// Scroll counts display lines scrolled past the top. 0 <= Current <= Max.
type Scroll struct {
	Current int
	Max     int
}

// NewScroll returns an unscrolled state for length lines shown rng at a time.
func NewScroll(length, rng int) Scroll {
	var s Scroll
	s.Resize(length, rng)
	return s
}

// Resize recomputes Max and clamps Current to it without resetting it.
func (s *Scroll) Resize(length, rng int) {
	s.Max = length - rng
	if s.Max < 0 {
		s.Max = 0
	}
	if s.Current > s.Max {
		s.Current = s.Max
	}
	if s.Current < 0 {
		s.Current = 0
	}
}

// MoveUp scrolls towards the start of the document.
func (s *Scroll) MoveUp(step int) bool {
	if s.Current < step {
		return false
	}
	s.Current -= step
	return true
}

// MoveDown scrolls towards the end of the document.
func (s *Scroll) MoveDown(step int) bool {
	if s.Current+step > s.Max {
		return false
	}
	s.Current += step
	return true
}

// Viewport combines a cursor and scroll position over length display lines.
type Viewport struct {
	Cursor Cursor
	Scroll Scroll
	length int
}

// NewViewport returns a viewport with the cursor on the top row.
func NewViewport(length int, b Bounds) Viewport {
	cursor := Top(length, b)
	return Viewport{
		Cursor: cursor,
		Scroll: NewScroll(length, cursor.Range()),
		length: length,
	}
}

// Resize recenters the cursor and clamps the scroll position for a new line
// count and region. Both are updated before Resize returns.
func (v *Viewport) Resize(length int, b Bounds) {
	v.length = length
	v.Cursor = Center(length, b)
	v.Scroll.Resize(length, v.Cursor.Range())
}

// MoveUp moves the cursor, scrolling once it reaches the top row. It reports
// false when already at the first line.
func (v *Viewport) MoveUp() bool {
	if v.Cursor.MoveUp(1) {
		return true
	}
	return v.Scroll.MoveUp(1)
}

// MoveDown moves the cursor, scrolling once it reaches the bottom row. It
// reports false when already at the last line.
func (v *Viewport) MoveDown() bool {
	if v.Cursor.MoveDown(1) {
		return true
	}
	return v.Scroll.MoveDown(1)
}

// Index returns the display line under the cursor.
func (v Viewport) Index() int {
	return v.Scroll.Current + v.Cursor.Offset()
}

// Window returns the half-open range of visible display lines.
func (v Viewport) Window() (start, end int) {
	start = v.Scroll.Current
	end = start + v.Cursor.Range()
	if end > v.length {
		end = v.length
	}
	return start, end
}

// Len returns the number of display lines the viewport covers.
func (v Viewport) Len() int {
	return v.length
}
