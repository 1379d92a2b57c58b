package world

import (
	"wildgrid/internal/ecs"
	"wildgrid/internal/geom"
)

// Behavior is one candidate activity an agent's controller can pick.
// Evaluate is a pure function of current world state: 0 means "not
// applicable now", anything higher a normalized urgency in (0, 1]. Update
// commits the actual decision — usually by building and committing an
// Action — and returns the resulting delay (0 when nothing happened).
//
// Behaviors may cache scratch state between Evaluate and the immediately
// following Update; the strictly sequential agent loop makes that safe.
type Behavior interface {
	Name() string
	Evaluate(id ecs.ID) float64
	Update() float64
}

// Controller ranks an agent's behaviors and executes the winner. Ties go to
// the earlier registration.
type Controller struct {
	w         *World
	behaviors []Behavior
}

func NewController(w *World) *Controller {
	return &Controller{w: w}
}

func (c *Controller) Register(b Behavior) {
	c.behaviors = append(c.behaviors, b)
}

// Act evaluates every registered behavior for the agent and runs the
// highest-scoring one. Returns the delay of the resulting action, or 0 when
// no behavior applies.
func (c *Controller) Act(id ecs.ID) float64 {
	best := -1
	bestScore := 0.0
	for i, b := range c.behaviors {
		if score := b.Evaluate(id); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return 0
	}
	return c.behaviors[best].Update()
}

// stepOrDetour commits a step toward dir, falling back to a randomized free
// exit when the straight path is blocked. Shared by the movement-driven
// behaviors.
func stepOrDetour(w *World, id ecs.ID, x, y int, dir geom.Side) float64 {
	if dir == geom.Here {
		return 0
	}
	if w.blocked(x, y, dir) {
		free, ok := w.terrain.FreeExitRandomised(x, y)
		if !ok {
			return 0
		}
		dir = free
	}
	delay, ok := w.Commit(w.Step(id, dir))
	if !ok {
		return 0
	}
	return delay
}

// blocked reports whether a step is stopped by terrain or by another
// creature already standing there.
func (w *World) blocked(x, y int, dir geom.Side) bool {
	if w.terrain.IsObstacle(x, y, dir) {
		return true
	}
	dx, dy := dir.Offset()
	return !w.creatures.IsEmpty(x+dx, y+dy)
}
