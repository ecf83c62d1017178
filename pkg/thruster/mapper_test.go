package thruster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	testCases := []struct {
		name   string
		frame  CommandFrame
		expect Outputs
	}{
		{
			name:   "all neutral",
			frame:  NeutralCommand(),
			expect: NeutralOutputs(),
		},
		{
			name:  "turn and pitch take over at neutral primaries",
			frame: CommandFrame{1500, 1300, 1700, 1500, 1400, 1600},
			expect: Outputs{
				LeftFront:  1300,
				RightFront: 1700,
				LeftUp:     1400,
				RightUp:    1600,
			},
		},
		{
			name:  "primaries win over secondaries",
			frame: CommandFrame{1800, 1300, 1700, 1200, 1400, 1600},
			expect: Outputs{
				LeftFront:  1800,
				RightFront: 1800,
				LeftUp:     1200,
				RightUp:    1200,
			},
		},
		{
			name:  "pairs resolve independently",
			frame: CommandFrame{1800, 1300, 1700, 1500, 1400, 1600},
			expect: Outputs{
				LeftFront:  1800,
				RightFront: 1800,
				LeftUp:     1400,
				RightUp:    1600,
			},
		},
		{
			name:  "reverse primary",
			frame: CommandFrame{1200, 1500, 1500, 1500, 1500, 1500},
			expect: Outputs{
				LeftFront:  1200,
				RightFront: 1200,
				LeftUp:     1500,
				RightUp:    1500,
			},
		},
		{
			name:  "primary clamped to safe range",
			frame: CommandFrame{2400, 1500, 1500, 800, 1500, 1500},
			expect: Outputs{
				LeftFront:  2000,
				RightFront: 2000,
				LeftUp:     1000,
				RightUp:    1000,
			},
		},
		{
			name:  "secondary clamped to safe range",
			frame: CommandFrame{1500, 600, 2600, 1500, 1500, 1500},
			expect: Outputs{
				LeftFront:  1000,
				RightFront: 2000,
				LeftUp:     1500,
				RightUp:    1500,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, Map(tc.frame))
		})
	}
}

func TestMapPrimaryPrecedenceTable(t *testing.T) {
	// For every non-neutral primary, both actuators of the pair must
	// follow the primary regardless of the secondaries.
	for primary := PulseMin; primary <= PulseMax; primary += 100 {
		if primary == PulseNeutral {
			continue
		}
		out := Map(CommandFrame{primary, 1300, 1700, 1500, 1500, 1500})
		require.Equal(t, primary, out.LeftFront, "primary %d", primary)
		require.Equal(t, primary, out.RightFront, "primary %d", primary)
	}
}

func TestClamp(t *testing.T) {
	require.Equal(t, PulseMin, PulseWidth(500).Clamp())
	require.Equal(t, PulseMax, PulseWidth(2500).Clamp())
	require.Equal(t, PulseWidth(1650), PulseWidth(1650).Clamp())
}
