package world

import "wildgrid/internal/ecs"

// StaminaSystem owns the clamping policy for stamina debits: reserves floor
// at zero, and a debit larger than the reserve is not an error. Entities
// without a Stamina component are silently exempt.
type StaminaSystem struct {
	t *ecs.Table[Stamina]
}

func (s *StaminaSystem) Consume(id ecs.ID, amount float64) {
	ref := s.t.Ref(id)
	if ref == nil {
		return
	}
	ref.Value -= amount
	if ref.Value < 0 {
		ref.Value = 0
	}
}

// Restore refunds stamina up to the entity's maximum.
func (s *StaminaSystem) Restore(id ecs.ID, amount float64) {
	ref := s.t.Ref(id)
	if ref == nil {
		return
	}
	ref.Value += amount
	if ref.Value > ref.Max {
		ref.Value = ref.Max
	}
}
