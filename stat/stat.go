// Package stat implements bounded attribute values (health/mana/stamina
// style) whose effective maximum is derived by folding an ordered list of
// stacking modifiers over a fixed base maximum. The current value is always
// kept inside [0, max].
package stat

import (
	"errors"

	"github.com/udisondev/statkit/internal/satmath"
)

// Handle identifies a modifier inside the stat that accepted it. Handles
// are issued at insertion, strictly increasing, and never reused; a Handle
// from one stat means nothing to another. The zero Handle is never issued.
type Handle uint64

type entry[T Unsigned] struct {
	handle Handle
	mod    Modifier[T]
}

// Stat is a bounded attribute value. It exclusively owns its modifiers:
// once accepted, a modifier can only leave through RemoveModifier or
// ClearModifiers on the same stat.
//
// Modifier order matters: the effective maximum is a left-fold over the
// modifiers in insertion order, so stacking "x2" then "-10" differs from
// "-10" then "x2". That ordering is part of the contract, and replaying
// the surviving modifiers from the base maximum always reproduces the
// incrementally maintained value.
//
// Stats are not safe for concurrent use; an owning entity must serialize
// access.
type Stat[T Unsigned] struct {
	current T
	baseMax T // fixed at construction, always > 0
	max     T // derived, always > 0
	next    Handle
	mods    []entry[T]
}

// New creates a stat with the given initial value and base maximum.
// A zero maximum is a programmer error and fails construction; an initial
// value above the maximum is clamped down silently.
func New[T Unsigned](initial, max T) (*Stat[T], error) {
	if max == 0 {
		return nil, errors.New("stat max must be positive")
	}
	if initial > max {
		initial = max
	}
	return &Stat[T]{current: initial, baseMax: max, max: max}, nil
}

// Current returns the current value.
func (s *Stat[T]) Current() T { return s.current }

// Max returns the effective maximum after all modifiers.
func (s *Stat[T]) Max() T { return s.max }

// BaseMax returns the maximum before any modifiers.
func (s *Stat[T]) BaseMax() T { return s.baseMax }

// Len returns the number of active modifiers.
func (s *Stat[T]) Len() int { return len(s.mods) }

// Modifiers returns the active modifiers in insertion order.
func (s *Stat[T]) Modifiers() []Modifier[T] {
	out := make([]Modifier[T], len(s.mods))
	for i, e := range s.mods {
		out[i] = e.mod
	}
	return out
}

// AddModifier applies m against the current maximum and, if the result
// stays positive, stores m and returns its removal handle. A modifier
// whose result would overflow or reach zero is rejected with (0, false)
// and never stored. Proportional modifiers rescale the current value to
// keep the same fullness ratio.
func (s *Stat[T]) AddModifier(m Modifier[T]) (Handle, bool) {
	result, ok := s.apply(m)
	if !ok {
		return 0, false
	}

	oldMax := s.max
	s.max = result
	if m.Proportional() {
		s.rescale(oldMax)
	} else if s.current > s.max {
		s.current = s.max
	}

	s.next++
	s.mods = append(s.mods, entry[T]{handle: s.next, mod: m})
	return s.next, true
}

// RemoveModifier removes the modifier identified by h, refolds the
// survivors from the base maximum, and rescales the current value if the
// removed modifier was proportional. Returns false for an unknown or
// already-removed handle.
func (s *Stat[T]) RemoveModifier(h Handle) bool {
	for i, e := range s.mods {
		if e.handle != h {
			continue
		}

		oldMax := s.max
		s.mods = append(s.mods[:i], s.mods[i+1:]...)
		s.recalculateMax()

		if e.mod.Proportional() && oldMax > 0 {
			s.rescale(oldMax)
		} else if s.current > s.max {
			s.current = s.max
		}
		return true
	}
	return false
}

// ClearModifiers drops all modifiers, restores the base maximum, and
// rescales the current value to the ratio it held before, clamped at the
// restored maximum. Returns false if there was nothing to clear.
func (s *Stat[T]) ClearModifiers() bool {
	if len(s.mods) == 0 {
		return false
	}

	ratio := float64(s.current) / float64(s.max)
	s.mods = s.mods[:0]
	s.max = s.baseMax

	if scaled := ratio * float64(s.max); scaled >= float64(s.max) {
		s.current = s.max
	} else {
		s.current = T(scaled)
	}
	return true
}

// Add raises the current value, capping at the maximum. Returns false if
// the addition would overflow the value type or not all points fit; in
// both cases the value is capped at the maximum.
func (s *Stat[T]) Add(points T) bool {
	if satmath.AddOverflows(s.current, points) {
		s.current = s.max
		return false
	}
	next := s.current + points
	if next > s.max {
		s.current = s.max
		return false
	}
	s.current = next
	return true
}

// Remove lowers the current value, flooring at 0. Returns false if the
// full amount could not be removed.
func (s *Stat[T]) Remove(points T) bool {
	if points > s.current {
		s.current = 0
		return false
	}
	s.current -= points
	return true
}

// Modify is a fluent AddModifier for chaining several modifiers at
// construction time; the acceptance signal is discarded.
func (s *Stat[T]) Modify(m Modifier[T]) *Stat[T] {
	s.AddModifier(m)
	return s
}

// recalculateMax refolds every surviving modifier, in insertion order,
// over the base maximum. Each step applies against the previous step's
// result; a rejected step leaves the running value unchanged and the fold
// continues.
func (s *Stat[T]) recalculateMax() {
	s.max = s.baseMax
	for _, e := range s.mods {
		if result, ok := s.apply(e.mod); ok {
			s.max = result
		}
	}
}

// apply computes m against the current maximum. ok is false when the
// result would overflow T or fail to stay positive.
func (s *Stat[T]) apply(m Modifier[T]) (T, bool) {
	switch m.Op() {
	case Multiply:
		if satmath.MulOverflows(s.max, m.Value()) {
			return 0, false
		}
		return s.max * m.Value(), true

	case Divide:
		if m.Value() == 0 {
			return 0, false
		}
		result := s.max / m.Value()
		if result == 0 {
			return 0, false
		}
		return result, true

	case Add:
		if satmath.AddOverflows(s.max, m.Value()) {
			return 0, false
		}
		return s.max + m.Value(), true

	case Subtract:
		if m.Value() >= s.max {
			return 0, false
		}
		return s.max - m.Value(), true
	}
	return 0, false
}

// rescale keeps the current value at the same fullness ratio it held
// against oldMax, rounding down with a floor of 1 for any positive ratio.
// The float product is compared before narrowing: converting a value at or
// past the type's range back to T is not defined, so a full (or rounded-up)
// ratio pins current at max instead.
func (s *Stat[T]) rescale(oldMax T) {
	ratio := float64(s.current) / float64(oldMax)
	scaled := ratio * float64(s.max)
	if scaled >= float64(s.max) {
		s.current = s.max
		return
	}
	s.current = T(scaled)
	if s.current == 0 && ratio > 0 {
		s.current = 1
	}
}
