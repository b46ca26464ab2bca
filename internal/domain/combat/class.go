package combat

import (
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// Class is a character class
type Class string

const (
	ClassWarrior Class = "warrior"
	ClassMage    Class = "mage"
	ClassRogue   Class = "rogue"
	ClassPaladin Class = "paladin"
)

// ParseClass validates a wire value and returns the matching Class
func ParseClass(s string) (Class, error) {
	switch Class(s) {
	case ClassWarrior, ClassMage, ClassRogue, ClassPaladin:
		return Class(s), nil
	}
	return "", apperr.InvalidArgumentf("unknown character class: %q", s)
}
