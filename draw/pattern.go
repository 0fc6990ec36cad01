package draw

// Pattern decides per-pixel fill state from coordinates local to the filled
// region. Patterns are pure functions with no state.
type Pattern func(x, y int) bool

// Fixed patterns.
var (
	// Solid lights every pixel.
	Solid Pattern = func(x, y int) bool { return true }

	// Empty lights no pixel.
	Empty Pattern = func(x, y int) bool { return false }
)

// Dots is a pattern of single lit pixels where both axes align to the step
// distance. A distance of 0 defaults to 2.
func Dots(distance, xOffset, yOffset int) Pattern {
	if distance == 0 {
		distance = 2
	}
	return func(x, y int) bool {
		return mod(x-xOffset, distance) == 0 && mod(y-yOffset, distance) == 0
	}
}

// HorizontalStripes is a pattern of lit rows with an unlit row every
// distance rows. A distance of 0 defaults to 2.
func HorizontalStripes(distance int) Pattern {
	if distance == 0 {
		distance = 2
	}
	return func(x, y int) bool {
		return mod(y, distance) != 0
	}
}

// VerticalStripes is a pattern of lit columns with an unlit column every
// distance columns. A distance of 0 defaults to 2.
func VerticalStripes(distance int) Pattern {
	if distance == 0 {
		distance = 2
	}
	return func(x, y int) bool {
		return mod(x, distance) != 0
	}
}

// CrossStripes is the complement of [Dots].
func CrossStripes(distance, xOffset, yOffset int) Pattern {
	dots := Dots(distance, xOffset, yOffset)
	return func(x, y int) bool {
		return !dots(x, y)
	}
}

// mod is the Euclidean remainder, non-negative for positive m.
func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
