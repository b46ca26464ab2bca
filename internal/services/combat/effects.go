package combat

import (
	"github.com/KirkDiggler/combat-arena/internal/domain/combat"
)

// EffectAmount pairs a start-of-turn effect with the damage or healing it
// produces this turn. The caller applies the amount to HP.
type EffectAmount struct {
	Effect combat.StatusEffect
	Amount int
}

// ApplyStun applies a stun that blocks the target's next action
func ApplyStun(target *combat.Character, duration int, sourceID string) combat.StatusEffect {
	effect := combat.StatusEffect{
		EffectType:        combat.EffectStun,
		Value:             0,
		Duration:          duration,
		SourceCharacterID: sourceID,
	}
	target.ApplyStatusEffect(effect)
	return effect
}

// ApplyDOT applies damage over time
func ApplyDOT(target *combat.Character, damagePerTurn, duration int, sourceID string) combat.StatusEffect {
	effect := combat.StatusEffect{
		EffectType:        combat.EffectDOT,
		Value:             damagePerTurn,
		Duration:          duration,
		SourceCharacterID: sourceID,
	}
	target.ApplyStatusEffect(effect)
	return effect
}

// ApplyHealOverTime applies healing over time
func ApplyHealOverTime(target *combat.Character, healingPerTurn, duration int, sourceID string) combat.StatusEffect {
	effect := combat.StatusEffect{
		EffectType:        combat.EffectHealOverTime,
		Value:             healingPerTurn,
		Duration:          duration,
		SourceCharacterID: sourceID,
	}
	target.ApplyStatusEffect(effect)
	return effect
}

// ApplyDefenseDebuff applies a defense debuff and immediately reduces the
// target's current defense, clamped at zero. The reduction is not reversed
// when the effect expires.
func ApplyDefenseDebuff(target *combat.Character, reduction, duration int, sourceID string) combat.StatusEffect {
	effect := combat.StatusEffect{
		EffectType:        combat.EffectDefenseDebuff,
		Value:             reduction,
		Duration:          duration,
		SourceCharacterID: sourceID,
	}
	target.ApplyStatusEffect(effect)
	target.Defense.CurrentValue -= reduction
	if target.Defense.CurrentValue < 0 {
		target.Defense.CurrentValue = 0
	}
	return effect
}

// ApplyAttackBuff applies an attack buff and immediately raises the target's
// current attack. The increase is not reversed when the effect expires.
func ApplyAttackBuff(target *combat.Character, bonus, duration int, sourceID string) combat.StatusEffect {
	effect := combat.StatusEffect{
		EffectType:        combat.EffectAttackBuff,
		Value:             bonus,
		Duration:          duration,
		SourceCharacterID: sourceID,
	}
	target.ApplyStatusEffect(effect)
	target.Attack.CurrentValue += bonus
	return effect
}

// ApplyDefenseBuff applies a defense buff and immediately raises the target's
// current defense. The increase is not reversed when the effect expires.
func ApplyDefenseBuff(target *combat.Character, bonus, duration int, sourceID string) combat.StatusEffect {
	effect := combat.StatusEffect{
		EffectType:        combat.EffectDefenseBuff,
		Value:             bonus,
		Duration:          duration,
		SourceCharacterID: sourceID,
	}
	target.ApplyStatusEffect(effect)
	target.Defense.CurrentValue += bonus
	return effect
}

// ProcessStartOfTurn extracts DOT damage and HoT healing due this turn
// without touching HP
func ProcessStartOfTurn(character *combat.Character) []EffectAmount {
	var results []EffectAmount
	for _, effect := range character.StatusEffects {
		switch effect.EffectType {
		case combat.EffectDOT, combat.EffectHealOverTime:
			results = append(results, EffectAmount{Effect: effect, Amount: effect.Value})
		}
	}
	return results
}

// ProcessEndOfTurn ticks every effect down one turn and purges the expired
func ProcessEndOfTurn(character *combat.Character) {
	for i := range character.StatusEffects {
		character.StatusEffects[i].Tick()
	}
	character.RemoveExpiredStatusEffects()
}
