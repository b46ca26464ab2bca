package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"context"

	"github.com/KirkDiggler/combat-arena/internal/dice"
	"github.com/KirkDiggler/combat-arena/internal/domain/combat"
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
	"github.com/KirkDiggler/combat-arena/internal/uuid"
)

// maxTurns caps combat length; hitting the cap with both sides alive is a draw
const maxTurns = 50

// Service defines the combat simulation interface
type Service interface {
	// Simulate runs one complete combat between two character snapshots and
	// returns the full log. The callers' characters are never mutated.
	Simulate(ctx context.Context, input *SimulateInput) (*combat.Log, error)
}

// SimulateInput carries the two combatants and an optional seed. A seed makes
// the simulation fully deterministic and never leaks into other calls.
type SimulateInput struct {
	Player   *combat.Character
	Opponent *combat.Character
	Seed     *int64
}

type service struct {
	uuidGenerator uuid.Generator
	roller        dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	UUIDGenerator uuid.Generator // Optional
	Roller        dice.Roller    // Optional; default stream for unseeded calls
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		roller:        dice.NewRoller(),
	}
	if cfg != nil {
		if cfg.UUIDGenerator != nil {
			svc.uuidGenerator = cfg.UUIDGenerator
		}
		if cfg.Roller != nil {
			svc.roller = cfg.Roller
		}
	}
	return svc
}

// Simulate implements Service.Simulate
func (s *service) Simulate(ctx context.Context, input *SimulateInput) (*combat.Log, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.Player == nil || input.Opponent == nil {
		return nil, apperr.InvalidArgument("both player and opponent are required")
	}
	if err := input.Player.Validate(); err != nil {
		return nil, apperr.Wrap(err, "invalid player")
	}
	if err := input.Opponent.Validate(); err != nil {
		return nil, apperr.Wrap(err, "invalid opponent")
	}

	roller := s.roller
	if input.Seed != nil {
		roller = dice.NewSeededRoller(*input.Seed)
	}

	sim := &simulation{
		roller:     roller,
		calculator: NewDamageCalculator(roller),
		combatID:   s.uuidGenerator.New(),
	}
	return sim.run(input.Player, input.Opponent), nil
}
