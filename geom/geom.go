// Package geom provides the integer-grid geometry used for widget
// hit-testing and coordinate translation.
package geom

// Point is a location in the integer grid.
type Point struct {
	X, Y int
}

// ZP is the zero point.
var ZP Point

// Pt returns the point (x, y).
func Pt(x, y int) Point {
	return Point{x, y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Eq reports whether p and q are equal.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// In reports whether p is in r.
func (p Point) In(r Rectangle) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Rectangle is a rectangle in the integer grid. Min is the top-left
// corner, Max the exclusive bottom-right corner.
type Rectangle struct {
	Min, Max Point
}

// ZR is the zero rectangle.
var ZR Rectangle

// Rect returns the rectangle with corners (x0, y0) and (x1, y1).
// The corners don't need to be in any particular order.
func Rect(x0, y0, x1, y1 int) Rectangle {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rectangle{Point{x0, y0}, Point{x1, y1}}
}

// Rpt returns the rectangle with corners min and max.
func Rpt(min, max Point) Rectangle {
	return Rectangle{min, max}
}

// Dx returns the width of r.
func (r Rectangle) Dx() int {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rectangle) Dy() int {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height of r as a Point.
func (r Rectangle) Size() Point {
	return Point{r.Dx(), r.Dy()}
}

// Empty reports whether r contains no points.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Eq reports whether r and s are equal.
func (r Rectangle) Eq(s Rectangle) bool {
	return r.Min.Eq(s.Min) && r.Max.Eq(s.Max)
}

// Contains reports whether the point (x, y) is in r.
func (r Rectangle) Contains(x, y int) bool {
	return Pt(x, y).In(r)
}

// Overlaps reports whether r and s share any point.
func (r Rectangle) Overlaps(s Rectangle) bool {
	return r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Add returns r translated by p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{r.Min.Add(p), r.Max.Add(p)}
}

// Sub returns r translated by -p.
func (r Rectangle) Sub(p Point) Rectangle {
	return Rectangle{r.Min.Sub(p), r.Max.Sub(p)}
}

// Clip clips r to be inside s, returning the clipped rectangle and
// whether any pixels remain.
func (r Rectangle) Clip(s Rectangle) (Rectangle, bool) {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r, !r.Empty()
}

// Combine returns the smallest rectangle containing both r and s.
func (r Rectangle) Combine(s Rectangle) Rectangle {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}
