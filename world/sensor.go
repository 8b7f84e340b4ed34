package world

import (
	"math"

	"github.com/solarlune/resolv"
)

const sensorCellSize = 32

var tagGoal = resolv.NewTag("goal")

// GoalSensor holds the flag in a resolv space so the per-frame goal check is a
// cell lookup. Hits are confirmed against the flag's strict overlap test.
type GoalSensor struct {
	space  *resolv.Space
	bounds Rect
	flag   Flag
}

func NewGoalSensor(l *Level, height float64) *GoalSensor {
	bounds := Rect{
		W: math.Ceil(math.Max(l.End, l.Flag.Right()+pennantSize)) + sensorCellSize,
		H: math.Ceil(math.Max(height, l.Flag.Bottom())),
	}
	space := resolv.NewSpace(int(bounds.W), int(bounds.H), sensorCellSize, sensorCellSize)

	var goal resolv.IShape = resolv.NewRectangleFromTopLeft(l.Flag.X, l.Flag.Y, l.Flag.W, l.Flag.H)
	goal.Tags().Set(tagGoal)
	space.Add(goal)

	return &GoalSensor{
		space:  space,
		bounds: bounds,
		flag:   l.Flag,
	}
}

func (s *GoalSensor) Touches(r Rect) bool {
	// Nothing outside the space can reach the flag.
	if !s.bounds.Contains(r) {
		return false
	}

	var probe resolv.IShape = resolv.NewRectangleFromTopLeft(r.X, r.Y, r.W, r.H)
	s.space.Add(probe)
	defer s.space.Remove(probe)

	hit := false
	probe.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: probe.SelectTouchingCells(0).FilterShapes().ByTags(tagGoal),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			hit = true
			return false
		},
	})
	return hit && s.flag.Touches(r)
}
