package core

// Mask is a per-pixel opacity bitmap used for shape-accurate collision.
// Pixels outside the mask are transparent.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates a fully transparent mask of the given size.
func NewMask(w, h int) *Mask {
	w = Max(w, 0)
	h = Max(h, 0)
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// MaskFromPattern scales a rune pattern to w x h pixels. Any rune other than
// space or '.' is opaque. Rows shorter than the widest row are padded with
// transparent pixels.
func MaskFromPattern(pattern []string, w, h int) *Mask {
	m := NewMask(w, h)
	rows := len(pattern)
	cols := 0
	grid := make([][]rune, rows)
	for i, line := range pattern {
		grid[i] = []rune(line)
		cols = Max(cols, len(grid[i]))
	}
	if rows == 0 || cols == 0 {
		return m
	}
	for y := 0; y < h; y++ {
		row := grid[y*rows/h]
		for x := 0; x < w; x++ {
			col := x * cols / w
			if col < len(row) && row[col] != ' ' && row[col] != '.' {
				m.bits[y*w+x] = true
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.w
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.h
}

// Set marks the pixel at (x, y) opaque. Out-of-bounds coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = true
}

// Get reports whether the pixel at (x, y) is opaque.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Fill marks every pixel of r (clipped to the mask) opaque.
func (m *Mask) Fill(r Rect) {
	x0 := Max(r.X, 0)
	y0 := Max(r.Y, 0)
	x1 := Min(r.Right(), m.w)
	y1 := Min(r.Bottom(), m.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m.bits[y*m.w+x] = true
		}
	}
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlaps reports whether any opaque pixel of m coincides with an opaque
// pixel of other when other's top-left corner sits at (dx, dy) in m's space.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	x0 := Max(0, dx)
	y0 := Max(0, dy)
	x1 := Min(m.w, dx+other.w)
	y1 := Min(m.h, dy+other.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.w+x] && other.bits[(y-dy)*other.w+(x-dx)] {
				return true
			}
		}
	}
	return false
}
