package combat

// ActionType identifies what an action did
type ActionType string

const (
	ActionAttack ActionType = "attack"
)

// Action is one resolved action within a turn
type Action struct {
	ActorID              string         `json:"actor_id"`
	TargetID             string         `json:"target_id"`
	ActionType           ActionType     `json:"action_type"`
	DamageDealt          int            `json:"damage_dealt"`
	HealingDone          int            `json:"healing_done"`
	StatusEffectsApplied []StatusEffect `json:"status_effects_applied"`
	IsCrit               bool           `json:"is_crit"`
	IsMiss               bool           `json:"is_miss"`
	IsStun               bool           `json:"is_stun"`
	MultiHitCount        int            `json:"multi_hit_count"`
}

// Turn is one turn of combat with before/after snapshots for auditing
type Turn struct {
	TurnNumber         int       `json:"turn_number"`
	ActorID            string    `json:"actor_id"`
	Actions            []*Action `json:"actions"`
	ActorStatusBefore  *Snapshot `json:"actor_status_before"`
	ActorStatusAfter   *Snapshot `json:"actor_status_after"`
	TargetStatusBefore *Snapshot `json:"target_status_before"`
	TargetStatusAfter  *Snapshot `json:"target_status_after"`
}

// Log is the complete record of one combat simulation. The player and
// opponent entries hold the simulator's working copies in their final state.
type Log struct {
	CombatID   string     `json:"combat_id"`
	Player     *Character `json:"player"`
	Opponent   *Character `json:"opponent"`
	Turns      []*Turn    `json:"turns"`
	WinnerID   string     `json:"winner_id,omitempty"`
	TotalTurns int        `json:"total_turns"`

	// InitialOrder records the speed-based ordering computed at combat start.
	// The turn loop itself strictly alternates starting with the player; the
	// computed order is kept for log completeness only.
	InitialOrder []string `json:"initial_order"`
}
