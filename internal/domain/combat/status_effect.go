package combat

// EffectType identifies a status effect
type EffectType string

const (
	EffectStun          EffectType = "stun"
	EffectDOT           EffectType = "dot"
	EffectDefenseDebuff EffectType = "defense_debuff"
	EffectMultiHit      EffectType = "multi_hit"
	EffectAttackBuff    EffectType = "attack_buff"
	EffectDefenseBuff   EffectType = "defense_buff"
	EffectHealOverTime  EffectType = "heal_over_time"
)

// StatusEffect is an active effect on a character. Value is damage per turn
// for DOT, the stat delta for buffs and debuffs, healing per turn for HoT.
type StatusEffect struct {
	EffectType        EffectType `json:"effect_type"`
	Value             int        `json:"value"`
	Duration          int        `json:"duration"`
	SourceCharacterID string     `json:"source_character_id"`
}

// Tick decrements remaining duration. Returns true while the effect is still active.
func (e *StatusEffect) Tick() bool {
	e.Duration--
	return e.Duration > 0
}
