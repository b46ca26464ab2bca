package combat

// Stat is a numeric stat with a base value and the value currently in play.
// Buffs and debuffs mutate CurrentValue within a combat instance.
type Stat struct {
	BaseValue    int `json:"base_value"`
	CurrentValue int `json:"current_value"`
}

// NewStat creates a stat with current equal to base
func NewStat(value int) Stat {
	return Stat{BaseValue: value, CurrentValue: value}
}

// ResetToBase restores the current value to base
func (s *Stat) ResetToBase() {
	s.CurrentValue = s.BaseValue
}
