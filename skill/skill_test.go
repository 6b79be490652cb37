package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtLevelOne(t *testing.T) {
	s := New(Linear, 0, 2, 3, 1)
	assert.Equal(t, uint16(1), s.Level(true))
	assert.Equal(t, uint64(0), s.Points())
	assert.Equal(t, uint16(0), s.MaxLevel())
}

func TestAddPointsZeroIsNoop(t *testing.T) {
	s := New(Linear, 0, 2, 3, 1)
	assert.False(t, s.AddPoints(0))
	assert.Equal(t, uint16(1), s.Level(false))
	assert.Equal(t, uint64(0), s.Points())
}

func TestAddPointsLevelsUp(t *testing.T) {
	// linear(2,3,1): level 2 costs 8, level 3 costs 9, level 4 costs 10
	s := New(Linear, 0, 2, 3, 1)

	require.True(t, s.AddPoints(5))
	assert.Equal(t, uint16(1), s.Level(false))
	assert.Equal(t, uint64(5), s.Points())

	require.True(t, s.AddPoints(3)) // exactly covers level 2
	assert.Equal(t, uint16(2), s.Level(false))
	assert.Equal(t, uint64(0), s.Points())

	require.True(t, s.AddPoints(20)) // 9 for level 3, 10 for level 4, 1 left
	assert.Equal(t, uint16(4), s.Level(false))
	assert.Equal(t, uint64(1), s.Points())
}

func TestAddPointsAtCapDiscards(t *testing.T) {
	s := New(Linear, 3, 2, 3, 1)

	require.True(t, s.AddPoints(1000))
	assert.Equal(t, uint16(3), s.Level(false))

	// At the cap Points reports the capped level's cost, not excess.
	assert.Equal(t, uint64(9), s.Points())

	require.True(t, s.AddPoints(50))
	assert.Equal(t, uint16(3), s.Level(false))
	assert.Equal(t, uint64(9), s.Points())
}

func TestAddPointsUnboundedCostAbsorbs(t *testing.T) {
	// step with y=0 saturates every cost: points pile up without leveling
	s := New(Step, 0, 10, 0, 2)

	require.True(t, s.AddPoints(500))
	assert.Equal(t, uint16(1), s.Level(false))
	assert.Equal(t, uint64(500), s.Points())
}

func TestAddPointsZeroCostAbsorbs(t *testing.T) {
	// logarithmic with tiny factors costs 0 for early levels
	s := New(Logarithmic, 0, 0, 0, 1)

	require.True(t, s.AddPoints(7))
	assert.Equal(t, uint16(1), s.Level(false))
	assert.Equal(t, uint64(7), s.Points())
}

func TestRemovePointsZeroIsNoop(t *testing.T) {
	s := New(Linear, 0, 2, 3, 1)
	s.AddPoints(5)
	assert.False(t, s.RemovePoints(0))
	assert.Equal(t, uint64(5), s.Points())
}

func TestRemovePointsDrainsBucketFirst(t *testing.T) {
	s := New(Linear, 0, 2, 3, 1)
	s.AddPoints(5)

	require.True(t, s.RemovePoints(3))
	assert.Equal(t, uint16(1), s.Level(false))
	assert.Equal(t, uint64(2), s.Points())
}

func TestRemovePointsWalksLevelsDown(t *testing.T) {
	s := New(Linear, 0, 2, 3, 1)
	s.AddPoints(8 + 9 + 4) // level 3, 4 in the bucket

	require.True(t, s.RemovePoints(4 + 9))
	assert.Equal(t, uint16(2), s.Level(false))
	assert.Equal(t, uint64(0), s.Points())
}

func TestRemovePointsFloorsAtLevelOne(t *testing.T) {
	s := New(Linear, 0, 2, 3, 1)
	s.AddPoints(8) // level 2

	require.True(t, s.RemovePoints(1_000_000))
	assert.Equal(t, uint16(1), s.Level(false))
	assert.Equal(t, uint64(0), s.Points())
}

func TestAddRemovePointsRoundTrip(t *testing.T) {
	amounts := []uint64{1, 7, 8, 25, 300}

	for _, formula := range []Formula{Linear, Quadratic, Cubic, Exponential} {
		for _, amount := range amounts {
			s := New(formula, 0, 2, 3, 1)
			s.AddPoints(13) // arbitrary starting state below any cap

			level, points := s.Level(false), s.Points()
			require.True(t, s.AddPoints(amount))
			require.True(t, s.RemovePoints(amount))

			assert.Equal(t, level, s.Level(false), "%v amount=%d", formula, amount)
			assert.Equal(t, points, s.Points(), "%v amount=%d", formula, amount)
		}
	}
}

func TestAddLevels(t *testing.T) {
	s := New(Linear, 0, 2, 3, 1)

	assert.False(t, s.AddLevels(0, false))

	require.True(t, s.AddLevels(4, false))
	assert.Equal(t, uint16(5), s.Level(false))
	assert.Equal(t, uint64(0), s.Points())
}

func TestAddLevelsClampsAtCap(t *testing.T) {
	s := New(Linear, 10, 2, 3, 1)
	require.True(t, s.AddLevels(50, false))
	assert.Equal(t, uint16(10), s.Level(false))
}

func TestAddLevelsSavesProgress(t *testing.T) {
	// linear(2,3,1): level 1 costs 7, level 2 costs 8
	s := New(Linear, 0, 2, 3, 1)
	s.AddPoints(3) // 3/7 of level 1's cost

	require.True(t, s.AddLevels(1, true))
	assert.Equal(t, uint16(2), s.Level(false))
	// 3/7 of level 2's cost of 8, rounded down
	assert.Equal(t, uint64(3), s.Points())
}

func TestRemoveLevelsFloorsAtOne(t *testing.T) {
	s := New(Linear, 0, 2, 3, 1)
	s.AddLevels(5, false)

	assert.False(t, s.RemoveLevels(0, false))
	require.True(t, s.RemoveLevels(100, false))
	assert.Equal(t, uint16(1), s.Level(false))
}

func TestAddRemoveLevelsRoundTrip(t *testing.T) {
	s := New(Quadratic, 0, 2, 3, 4)
	s.AddLevels(9, false) // level 10, costs 234
	s.AddPoints(117)      // half way

	require.True(t, s.AddLevels(5, true))
	require.True(t, s.RemoveLevels(5, true))

	assert.Equal(t, uint16(10), s.Level(false))
	// The double ratio conversion may lose a point or two to rounding.
	assert.InDelta(t, 117, float64(s.Points()), 2)
}

func TestLevelWithBonus(t *testing.T) {
	s := New(Linear, 0, 2, 3, 1)
	s.AddLevels(9, false) // level 10

	s.SetBonus(5)
	assert.Equal(t, uint16(10), s.Level(false))
	assert.Equal(t, uint16(15), s.Level(true))
	assert.Equal(t, int16(5), s.Bonus())

	s.SetBonus(-3)
	assert.Equal(t, uint16(7), s.Level(true))

	// A bonus deeper than the level clamps at 1 instead of wrapping.
	s.SetBonus(-100)
	assert.Equal(t, uint16(1), s.Level(true))
}

func TestLevelBonusSaturatesAtCeiling(t *testing.T) {
	s := New(Linear, 0, 2, 3, 1)
	s.AddLevels(LevelMax-1, false) // level 65535
	assert.Equal(t, LevelMax, s.Level(false))

	s.SetBonus(32767)
	assert.Equal(t, LevelMax, s.Level(true))
}

func TestPercent(t *testing.T) {
	// linear(2,3,1): level 2 costs 8
	s := New(Linear, 0, 2, 3, 1)
	assert.Equal(t, uint8(0), Percent[uint8](s))

	s.AddPoints(4)
	assert.Equal(t, uint8(50), Percent[uint8](s))
	assert.Equal(t, uint32(50), Percent[uint32](s))
	assert.Equal(t, 50, Percent[int](s))

	s.AddPoints(3)
	assert.Equal(t, uint8(87), Percent[uint8](s)) // 7*100/8
}
