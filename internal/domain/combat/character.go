package combat

import (
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// Character is a combatant (player or monster)
type Character struct {
	ID            string         `json:"character_id"`
	Name          string         `json:"name"`
	Class         Class          `json:"character_class"`
	Level         int            `json:"level"`
	MaxHP         int            `json:"max_hp"`
	CurrentHP     int            `json:"current_hp"`
	Attack        Stat           `json:"attack"`
	Defense       Stat           `json:"defense"`
	Speed         Stat           `json:"speed"`
	Element       Element        `json:"element"`
	StatusEffects []StatusEffect `json:"status_effects"`
}

// Validate checks the construction invariants before a character enters
// simulation or generation
func (c *Character) Validate() error {
	if c.ID == "" {
		return apperr.Validation("character id is required")
	}
	if _, err := ParseClass(string(c.Class)); err != nil {
		return err
	}
	if _, err := ParseElement(string(c.Element)); err != nil {
		return err
	}
	if c.MaxHP <= 0 {
		return apperr.Validationf("character %s: max hp must be positive", c.ID)
	}
	if c.CurrentHP < 0 || c.CurrentHP > c.MaxHP {
		return apperr.Validationf("character %s: current hp out of range", c.ID)
	}
	return nil
}

// IsAlive reports whether the character can still fight
func (c *Character) IsAlive() bool {
	return c.CurrentHP > 0
}

// TakeDamage applies damage, clamped so HP never drops below zero.
// Returns the damage actually taken.
func (c *Character) TakeDamage(damage int) int {
	actual := damage
	if actual > c.CurrentHP {
		actual = c.CurrentHP
	}
	if actual < 0 {
		actual = 0
	}
	c.CurrentHP -= actual
	return actual
}

// Heal applies healing, clamped at max HP. Returns the healing actually received.
func (c *Character) Heal(amount int) int {
	old := c.CurrentHP
	c.CurrentHP += amount
	if c.CurrentHP > c.MaxHP {
		c.CurrentHP = c.MaxHP
	}
	return c.CurrentHP - old
}

// ApplyStatusEffect adds an effect, enforcing the one-instance-per-type rule:
// an incoming effect replaces an existing effect of the same type only when
// its duration is strictly greater, otherwise it is discarded.
func (c *Character) ApplyStatusEffect(effect StatusEffect) {
	for i, existing := range c.StatusEffects {
		if existing.EffectType == effect.EffectType {
			if effect.Duration > existing.Duration {
				c.StatusEffects[i] = effect
			}
			return
		}
	}
	c.StatusEffects = append(c.StatusEffects, effect)
}

// RemoveExpiredStatusEffects drops effects whose duration has run out and
// returns the removed effects.
func (c *Character) RemoveExpiredStatusEffects() []StatusEffect {
	var expired, remaining []StatusEffect
	for _, effect := range c.StatusEffects {
		if effect.Duration <= 0 {
			expired = append(expired, effect)
		} else {
			remaining = append(remaining, effect)
		}
	}
	c.StatusEffects = remaining
	return expired
}

// HasStatusEffect reports whether an effect of the given type is active
func (c *Character) HasStatusEffect(effectType EffectType) bool {
	return c.GetStatusEffect(effectType) != nil
}

// GetStatusEffect returns the active effect of the given type, or nil
func (c *Character) GetStatusEffect(effectType EffectType) *StatusEffect {
	for i := range c.StatusEffects {
		if c.StatusEffects[i].EffectType == effectType {
			return &c.StatusEffects[i]
		}
	}
	return nil
}

// ResetForCombat restores the character to a clean fighting state: full HP,
// base stats, no status effects.
func (c *Character) ResetForCombat() {
	c.CurrentHP = c.MaxHP
	c.StatusEffects = nil
	c.Attack.ResetToBase()
	c.Defense.ResetToBase()
	c.Speed.ResetToBase()
}

// Clone returns a deep copy so simulations never mutate the caller's character
func (c *Character) Clone() *Character {
	clone := *c
	clone.StatusEffects = make([]StatusEffect, len(c.StatusEffects))
	copy(clone.StatusEffects, c.StatusEffects)
	return &clone
}

// Snapshot captures the character's serialized state for turn auditing
func (c *Character) Snapshot() *Snapshot {
	effects := make([]StatusEffect, len(c.StatusEffects))
	copy(effects, c.StatusEffects)
	return &Snapshot{
		ID:            c.ID,
		Name:          c.Name,
		Class:         c.Class,
		Level:         c.Level,
		MaxHP:         c.MaxHP,
		CurrentHP:     c.CurrentHP,
		Attack:        c.Attack.CurrentValue,
		Defense:       c.Defense.CurrentValue,
		Speed:         c.Speed.CurrentValue,
		Element:       c.Element,
		StatusEffects: effects,
		IsAlive:       c.IsAlive(),
	}
}

// Snapshot is a frozen character state recorded into the combat log. Stats are
// flattened to their in-play values.
type Snapshot struct {
	ID            string         `json:"character_id"`
	Name          string         `json:"name"`
	Class         Class          `json:"character_class"`
	Level         int            `json:"level"`
	MaxHP         int            `json:"max_hp"`
	CurrentHP     int            `json:"current_hp"`
	Attack        int            `json:"attack"`
	Defense       int            `json:"defense"`
	Speed         int            `json:"speed"`
	Element       Element        `json:"element"`
	StatusEffects []StatusEffect `json:"status_effects"`
	IsAlive       bool           `json:"is_alive"`
}
