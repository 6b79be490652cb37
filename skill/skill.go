// Package skill implements point-based skill progression over a closed set
// of growth-curve formulas. A Skill accumulates points and converts them to
// levels by asking its Curve what each next level costs; all point
// arithmetic saturates instead of wrapping.
package skill

import "github.com/udisondev/statkit/internal/satmath"

// Skill tracks progression for a single trainable skill: the current level,
// points accumulated toward the next level, an optional level cap, and a
// signed bonus level offset for display/effective-level purposes.
//
// Skills are not safe for concurrent use; an owning entity must serialize
// access.
type Skill struct {
	curve    Curve
	points   uint64
	level    uint16
	bonus    int16
	maxLevel uint16 // 0 = uncapped (LevelMax still applies)
}

// New creates a skill at level 1 with zero points. maxLevel 0 means
// uncapped.
func New(formula Formula, maxLevel uint16, x, y, z uint16) *Skill {
	return &Skill{
		curve:    NewCurve(formula, x, y, z),
		level:    1,
		maxLevel: maxLevel,
	}
}

// NewWithCurve creates a skill from an already-built curve.
func NewWithCurve(curve Curve, maxLevel uint16) *Skill {
	return &Skill{curve: curve, level: 1, maxLevel: maxLevel}
}

// Curve returns the skill's growth curve.
func (s *Skill) Curve() Curve { return s.curve }

// MaxLevel returns the configured level cap (0 = uncapped).
func (s *Skill) MaxLevel() uint16 { return s.maxLevel }

// Bonus returns the bonus level offset.
func (s *Skill) Bonus() int16 { return s.bonus }

// SetBonus sets the bonus level offset. No validation; negative values are
// allowed and only affect Level(true).
func (s *Skill) SetBonus(level int16) { s.bonus = level }

// Points returns points accumulated toward the next level. Once the cap is
// reached it reports the capped level's cost instead of any accumulated
// excess, so the displayed value stays stable at the cap.
func (s *Skill) Points() uint64 {
	if s.maxLevel > 0 && s.level >= s.maxLevel {
		return s.curve.PointsRequired(uint64(s.maxLevel))
	}
	return s.points
}

// Level returns the current level. With countBonus the bonus offset is
// added in 32-bit arithmetic and the result clamped to [1, LevelMax]: a
// bonus more negative than the current level reports level 1, mirroring
// the progression's own floor.
func (s *Skill) Level(countBonus bool) uint16 {
	if !countBonus || s.bonus == 0 {
		return s.level
	}
	total := int32(s.level) + int32(s.bonus)
	switch {
	case total < 1:
		return 1
	case total >= int32(LevelMax):
		return LevelMax
	default:
		return uint16(total)
	}
}

// AddPoints adds points and advances levels greedily while the new total
// covers each next level's cost. Returns false only for a zero amount.
//
// At the level cap inbound points are discarded and the bucket reset. A
// next-level cost of PointMax or 0 stops leveling and absorbs the
// remainder into the bucket.
func (s *Skill) AddPoints(points uint64) bool {
	if points == 0 {
		return false
	}

	level := uint64(s.level)
	bucket := s.points

	for {
		if s.maxLevel > 0 && level >= uint64(s.maxLevel) {
			bucket = 0
			break
		}

		required := s.curve.PointsRequired(level + 1)
		if required == PointMax || required == 0 {
			bucket = satmath.Add(bucket, points)
			break
		}

		// The bucket can already sit at or above the next cost after a
		// ratio-preserving level change on a non-monotonic curve.
		var deficit uint64
		if required > bucket {
			deficit = required - bucket
		}
		if points >= deficit {
			points -= deficit
			level++
			bucket = 0
		} else {
			bucket += points
			break
		}
	}

	s.points = bucket
	s.level = uint16(level)
	return true
}

// RemovePoints removes points, draining the current bucket first and then
// walking levels downward, refunding each level's cost in turn. A partial
// refund of a level's cost drops that level and leaves the unrefunded
// remainder as bucket progress, so AddPoints followed by RemovePoints of
// the same amount restores the prior state. Level never drops below 1;
// points never go below 0. Returns false only for a zero amount.
func (s *Skill) RemovePoints(points uint64) bool {
	if points == 0 {
		return false
	}

	level := uint64(s.level)
	bucket := s.points

	if points >= bucket {
		points -= bucket
		bucket = 0
	} else {
		bucket -= points
		points = 0
	}

	for points > 0 && level > 1 {
		required := s.curve.PointsRequired(level)
		if points >= required {
			points -= required
			level--
			bucket = 0
		} else {
			// Partial refund of the current level's cost: the level is no
			// longer fully paid, so step down and keep the paid remainder
			// as progress toward regaining it.
			level--
			bucket = required - points
			break
		}
	}

	s.level = uint16(level)
	s.points = bucket
	return true
}

// AddLevels raises the level directly, clamped at the cap. With
// saveProgress the bucket is rescaled to keep the same completion ratio
// against the new level's cost; otherwise it resets to 0. Returns false
// only for a zero amount.
func (s *Skill) AddLevels(levels uint16, saveProgress bool) bool {
	if levels == 0 {
		return false
	}

	ratio := s.progressRatio(saveProgress)

	total := uint32(s.level) + uint32(levels)
	switch {
	case s.maxLevel > 0 && total >= uint32(s.maxLevel):
		s.level = s.maxLevel
	case total >= uint32(LevelMax):
		s.level = LevelMax
	default:
		s.level = uint16(total)
	}

	s.applyProgressRatio(ratio)
	return true
}

// RemoveLevels lowers the level directly with a floor of 1, with the same
// saveProgress semantics as AddLevels. Returns false only for a zero
// amount.
func (s *Skill) RemoveLevels(levels uint16, saveProgress bool) bool {
	if levels == 0 {
		return false
	}

	ratio := s.progressRatio(saveProgress)

	if levels >= s.level {
		s.level = 1
	} else {
		s.level -= levels
	}

	s.applyProgressRatio(ratio)
	return true
}

// progressRatio captures how far the bucket has filled the current level's
// cost, or 0 when progress is not being preserved or the cost is 0.
func (s *Skill) progressRatio(saveProgress bool) float64 {
	if !saveProgress {
		return 0
	}
	required := s.curve.PointsRequired(uint64(s.level))
	if required == 0 {
		return 0
	}
	return float64(s.points) / float64(required)
}

func (s *Skill) applyProgressRatio(ratio float64) {
	if ratio == 0 {
		s.points = 0
		return
	}
	s.points = uint64(float64(s.curve.PointsRequired(uint64(s.level))) * ratio)
}

// Number covers the integer widths Percent can narrow to.
type Number interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Percent returns progress toward the next level as an integer percentage
// in the caller's preferred width: points*100 / PointsRequired(level+1),
// 0 when either term is 0.
func Percent[N Number](s *Skill) N {
	required := s.curve.PointsRequired(uint64(s.level) + 1)
	if s.points == 0 || required == 0 {
		return 0
	}
	return N(satmath.Mul(s.points, 100) / required)
}
