package common

// Point is a grid cell coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// LinePositions returns the cells of a Bresenham line from start to end,
// both endpoints included.
func LinePositions(start, end Point) []Point {
	x0, y0 := start.X, start.Y
	dx := Abs(end.X - x0)
	dy := Abs(end.Y - y0)
	sx := sign(end.X - x0)
	sy := sign(end.Y - y0)
	err := dx - dy

	points := make([]Point, 0, max(dx, dy)+1)
	for {
		points = append(points, Point{X: x0, Y: y0})
		if x0 == end.X && y0 == end.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
	return points
}

// RectanglePositions returns the cells covered by the box spanned by start and
// end. The outline is walked clockwise from the top-left corner.
func RectanglePositions(start, end Point, filled bool) []Point {
	minX, maxX := min(start.X, end.X), max(start.X, end.X)
	minY, maxY := min(start.Y, end.Y), max(start.Y, end.Y)

	if filled {
		points := make([]Point, 0, (maxX-minX+1)*(maxY-minY+1))
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				points = append(points, Point{X: x, Y: y})
			}
		}
		return points
	}

	if minX == maxX && minY == maxY {
		return []Point{{X: minX, Y: minY}}
	}
	if minX == maxX {
		points := make([]Point, 0, maxY-minY+1)
		for y := minY; y <= maxY; y++ {
			points = append(points, Point{X: minX, Y: y})
		}
		return points
	}
	if minY == maxY {
		points := make([]Point, 0, maxX-minX+1)
		for x := minX; x <= maxX; x++ {
			points = append(points, Point{X: x, Y: minY})
		}
		return points
	}

	points := make([]Point, 0, 2*((maxX-minX)+(maxY-minY)))
	for x := minX; x <= maxX; x++ {
		points = append(points, Point{X: x, Y: minY})
	}
	for y := minY + 1; y <= maxY; y++ {
		points = append(points, Point{X: maxX, Y: y})
	}
	for x := maxX - 1; x >= minX; x-- {
		points = append(points, Point{X: x, Y: maxY})
	}
	for y := maxY - 1; y > minY; y-- {
		points = append(points, Point{X: minX, Y: y})
	}
	return points
}
