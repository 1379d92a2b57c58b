package world

import (
	"fmt"

	"go.uber.org/zap"

	"wildgrid/internal/ecs"
)

// Message is one observable event in the world, formatted for the log. The
// core fires them and forgets them; delivery and rendering belong to the
// excluded UI layers.
type Message interface {
	Format() string
}

type HitMsg struct {
	Damage    float64
	Remaining float64
}

func (m HitMsg) Format() string {
	return fmt.Sprintf("hits for %.1f (%.1f left)", m.Damage, m.Remaining)
}

type MissMsg struct{}

func (MissMsg) Format() string { return "misses" }

type KillMsg struct{}

func (KillMsg) Format() string { return "kills" }

type GetMsg struct{ Item string }

func (m GetMsg) Format() string { return "picks up the " + m.Item }

type DropMsg struct{ Item string }

func (m DropMsg) Format() string { return "drops the " + m.Item }

type DestroyMsg struct{ Verb string }

func (m DestroyMsg) Format() string {
	switch m.Verb {
	case "cut":
		return "cuts down"
	default:
		return "smashes apart"
	}
}

// MessageSystem logs source→target events. Fire-and-forget: nothing in the
// core waits on a message.
type MessageSystem struct {
	log   *zap.Logger
	names *ecs.Table[Name]
}

func (s *MessageSystem) Send(source, target ecs.ID, m Message) {
	s.log.Info(m.Format(),
		zap.String("source", s.name(source)),
		zap.String("target", s.name(target)),
		zap.Int32("source_id", int32(source)),
		zap.Int32("target_id", int32(target)),
	)
}

func (s *MessageSystem) name(id ecs.ID) string {
	if n, ok := s.names.Get(id); ok {
		return n.Value
	}
	return fmt.Sprintf("#%d", id)
}
