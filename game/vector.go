package game

import "math"

// Vec2 is a 2D vector in sector coordinates.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared magnitude of v, avoiding the square root.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle returns the direction of v in radians. The zero vector maps to 0.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector pointing along dir radians.
func FromAngle(dir float64) Vec2 {
	return Vec2{math.Cos(dir), math.Sin(dir)}
}

// Distance calculates the distance between two points.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Length()
}

// Bearing returns the direction of the line from one point to another.
// Coincident points yield 0 rather than an undefined angle.
func Bearing(from, to Vec2) float64 {
	return to.Sub(from).Angle()
}

// NormalizeAngle keeps angle between 0 and 2*PI
func NormalizeAngle(angle float64) float64 {
	for angle < 0 {
		angle += 2 * math.Pi
	}
	for angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// NormalizeAngleSigned keeps angle between -PI and PI
func NormalizeAngleSigned(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleDiff returns the smallest signed difference a-b, in [-PI, PI].
func AngleDiff(a, b float64) float64 {
	return NormalizeAngleSigned(a - b)
}
