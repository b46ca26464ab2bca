package combat

import (
	"github.com/KirkDiggler/combat-arena/internal/dice"
	"github.com/KirkDiggler/combat-arena/internal/domain/combat"
)

// Class proc parameters. Each class has one Bernoulli-rolled secondary effect
// applied after a landed hit.
const (
	rogueStunChance     = 0.3
	rogueStunDuration   = 1
	mageDOTChance       = 0.4
	mageDOTDamage       = 3
	mageDOTDuration     = 3
	paladinBuffChance   = 0.2
	paladinBuffBonus    = 2
	paladinBuffTurns    = 2
	warriorDebuffChance = 0.2
	warriorDebuffValue  = 2
	warriorDebuffTurns  = 2
)

const (
	multiHitSpeedThreshold = 15
	multiHitChance         = 0.3
	multiHitDamageRatio    = 0.5
)

// simulation holds the state of one combat run
type simulation struct {
	roller     dice.Roller
	calculator *DamageCalculator
	combatID   string
}

// run drives the full turn loop and returns the completed log
func (s *simulation) run(playerInput, opponentInput *combat.Character) *combat.Log {
	// Work on private copies so the caller's characters stay untouched
	player := playerInput.Clone()
	opponent := opponentInput.Clone()
	player.ResetForCombat()
	opponent.ResetForCombat()

	log := &combat.Log{
		CombatID: s.combatID,
		Player:   player,
		Opponent: opponent,
	}

	// Speed-based order is computed once and recorded, but the loop below
	// strictly alternates starting with the player. Kept for log completeness
	// and to preserve the draw sequence of the reference behavior.
	log.InitialOrder = s.determineTurnOrder(player, opponent)

	turnNumber := 0
	for player.IsAlive() && opponent.IsAlive() && turnNumber < maxTurns {
		turnNumber++

		actor, target := player, opponent
		if turnNumber%2 == 0 {
			actor, target = opponent, player
		}

		turn := &combat.Turn{
			TurnNumber:         turnNumber,
			ActorID:            actor.ID,
			ActorStatusBefore:  actor.Snapshot(),
			TargetStatusBefore: target.Snapshot(),
		}

		s.processTurnStartEffects(actor)

		action := s.resolveAttack(actor, target)
		turn.Actions = append(turn.Actions, action)

		// Every active effect on both sides loses one turn here
		ProcessEndOfTurn(actor)
		ProcessEndOfTurn(target)

		turn.ActorStatusAfter = actor.Snapshot()
		turn.TargetStatusAfter = target.Snapshot()
		log.Turns = append(log.Turns, turn)
	}

	log.TotalTurns = turnNumber
	switch {
	case player.IsAlive() && !opponent.IsAlive():
		log.WinnerID = player.ID
	case opponent.IsAlive() && !player.IsAlive():
		log.WinnerID = opponent.ID
	}
	// both alive (timeout) or both dead: draw, no winner

	return log
}

// determineTurnOrder jitters each side's speed by [-2, 2] and orders higher
// effective speed first, player winning ties
func (s *simulation) determineTurnOrder(player, opponent *combat.Character) []string {
	playerSpeed := player.Speed.CurrentValue + s.roller.Between(-2, 2)
	opponentSpeed := opponent.Speed.CurrentValue + s.roller.Between(-2, 2)

	if playerSpeed >= opponentSpeed {
		return []string{player.ID, opponent.ID}
	}
	return []string{opponent.ID, player.ID}
}

// processTurnStartEffects applies pending DOT damage and HoT healing to the actor
func (s *simulation) processTurnStartEffects(actor *combat.Character) {
	for _, result := range ProcessStartOfTurn(actor) {
		switch result.Effect.EffectType {
		case combat.EffectDOT:
			actor.TakeDamage(result.Amount)
		case combat.EffectHealOverTime:
			actor.Heal(result.Amount)
		}
	}
}

// resolveAttack resolves one attack action, including class procs and multi-hit
func (s *simulation) resolveAttack(attacker, defender *combat.Character) *combat.Action {
	action := &combat.Action{
		ActorID:       attacker.ID,
		TargetID:      defender.ID,
		ActionType:    combat.ActionAttack,
		MultiHitCount: 1,
	}

	if attacker.HasStatusEffect(combat.EffectStun) {
		action.IsStun = true
		// The blocked action consumes one stun turn on top of the normal
		// end-of-turn tick
		if stun := attacker.GetStatusEffect(combat.EffectStun); stun != nil {
			stun.Tick()
		}
		return action
	}

	damage, isCrit, isMiss := s.calculator.Calculate(attacker, defender, 1.0, true)
	action.DamageDealt = damage
	action.IsCrit = isCrit
	action.IsMiss = isMiss

	if isMiss {
		return action
	}

	actual := defender.TakeDamage(damage)

	action.StatusEffectsApplied = append(action.StatusEffectsApplied, s.rollClassEffects(attacker, defender)...)

	if count := s.rollMultiHit(attacker); count > 1 {
		action.MultiHitCount = count
		extra := int(float64(damage)*multiHitDamageRatio) * (count - 1)
		actual += defender.TakeDamage(extra)
		action.DamageDealt = actual
	}

	return action
}

// rollClassEffects rolls the attacker's class proc after a landed hit. The
// paladin buff lands on the attacker itself and is not recorded on the action.
func (s *simulation) rollClassEffects(attacker, defender *combat.Character) []combat.StatusEffect {
	var applied []combat.StatusEffect

	switch attacker.Class {
	case combat.ClassRogue:
		if s.roller.Float64() < rogueStunChance {
			applied = append(applied, ApplyStun(defender, rogueStunDuration, attacker.ID))
		}
	case combat.ClassMage:
		if s.roller.Float64() < mageDOTChance {
			applied = append(applied, ApplyDOT(defender, mageDOTDamage, mageDOTDuration, attacker.ID))
		}
	case combat.ClassPaladin:
		if s.roller.Float64() < paladinBuffChance {
			ApplyAttackBuff(attacker, paladinBuffBonus, paladinBuffTurns, attacker.ID)
		}
	case combat.ClassWarrior:
		if s.roller.Float64() < warriorDebuffChance {
			applied = append(applied, ApplyDefenseDebuff(defender, warriorDebuffValue, warriorDebuffTurns, attacker.ID))
		}
	}

	return applied
}

// rollMultiHit gives fast attackers a chance at a 2-hit combo
func (s *simulation) rollMultiHit(attacker *combat.Character) int {
	if attacker.Speed.CurrentValue > multiHitSpeedThreshold {
		if s.roller.Float64() < multiHitChance {
			return 2
		}
	}
	return 1
}
