package game

import "image"

// CheckBounds reports, per axis, whether r still touches the field [0,w]x[0,h].
// inX is false iff r lies entirely left of 0 or entirely right of w; inY is
// the vertical counterpart.
func CheckBounds(r image.Rectangle, w, h int) (inX, inY bool) {
	inX, inY = true, true
	if r.Max.X < 0 || w < r.Min.X {
		inX = false
	}
	if r.Max.Y < 0 || h < r.Min.Y {
		inY = false
	}
	return inX, inY
}

// inField reports whether r is in bounds on both axes
func inField(r image.Rectangle, field image.Point) bool {
	inX, inY := CheckBounds(r, field.X, field.Y)
	return inX && inY
}

// center returns the center of r, rounding toward Min like a pixel rect does
func center(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

// centeredAt returns a rectangle of the given size whose center is c
func centeredAt(size, c image.Point) image.Rectangle {
	tl := image.Pt(c.X-size.X/2, c.Y-size.Y/2)
	return image.Rectangle{Min: tl, Max: tl.Add(size)}
}
