package combat

import (
	apperr "github.com/KirkDiggler/combat-arena/internal/errors"
)

// Element is the elemental alignment of a character or damage source
type Element string

const (
	ElementFire    Element = "fire"
	ElementWater   Element = "water"
	ElementEarth   Element = "earth"
	ElementWind    Element = "wind"
	ElementNeutral Element = "neutral"
)

// Elements lists every element in stable order
func Elements() []Element {
	return []Element{ElementFire, ElementWater, ElementEarth, ElementWind, ElementNeutral}
}

// ParseElement validates a wire value and returns the matching Element
func ParseElement(s string) (Element, error) {
	switch Element(s) {
	case ElementFire, ElementWater, ElementEarth, ElementWind, ElementNeutral:
		return Element(s), nil
	}
	return "", apperr.InvalidArgumentf("unknown element: %q", s)
}
