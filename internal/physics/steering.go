package physics

import "math"

// Heading returns the facing angle in degrees for a direction vector, using the
// sprite convention: 0 points up the screen and positive angles turn counter-clockwise.
func Heading(dx, dy float64) float64 {
	return math.Atan2(dx, dy)*180/math.Pi - 180
}

// Unwrap shifts current by a full turn when target is more than half a turn
// away, so the remaining delta is the short way round.
func Unwrap(current, target float64) float64 {
	if math.Abs(target-current) > 180 {
		if current > target {
			return current - 360
		}
		return current + 360
	}
	return current
}

// StepToward moves current toward target by step degrees, snapping onto the
// target once it is closer than step.
func StepToward(current, target, step float64) float64 {
	if math.Abs(target-current) < step {
		return target
	}
	if target > current {
		return current + step
	}
	return current - step
}

// Direction returns the unit vector an entity facing angle (degrees) travels along.
func Direction(angle float64) (float64, float64) {
	rad := angle * math.Pi / 180
	return -math.Sin(rad), -math.Cos(rad)
}

// Damp scales a velocity by factor on both axes.
func Damp(vx, vy, factor float64) (float64, float64) {
	return vx * factor, vy * factor
}
