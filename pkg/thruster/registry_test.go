package thruster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeDriver struct {
	writes map[Channel]PulseWidth
	fail   map[Channel]error
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{writes: make(map[Channel]PulseWidth)}
}

func (d *fakeDriver) WritePulseWidth(ch Channel, p PulseWidth) error {
	if err := d.fail[ch]; err != nil {
		return err
	}
	d.writes[ch] = p
	return nil
}

func TestRegistryApply(t *testing.T) {
	driver := newFakeDriver()
	reg := NewRegistry(driver)
	require.Equal(t, NeutralOutputs(), reg.Applied())

	out := Outputs{LeftFront: 1800, RightFront: 1800, LeftUp: 1400, RightUp: 1600}
	require.NoError(t, reg.Apply(out))
	require.Equal(t, out, reg.Applied())
	require.Equal(t, PulseWidth(1800), driver.writes[ChannelLeftFront])
	require.Equal(t, PulseWidth(1600), driver.writes[ChannelRightUp])
}

func TestRegistryApplyNeutral(t *testing.T) {
	driver := newFakeDriver()
	reg := NewRegistry(driver)
	require.NoError(t, reg.Apply(Outputs{1700, 1700, 1700, 1700}))
	require.NoError(t, reg.ApplyNeutral())
	require.Equal(t, NeutralOutputs(), reg.Applied())
}

func TestRegistryApplyPartialFailure(t *testing.T) {
	driver := newFakeDriver()
	driver.fail = map[Channel]error{ChannelRightFront: errors.New("esc fault")}
	reg := NewRegistry(driver)

	err := reg.Apply(Outputs{LeftFront: 1800, RightFront: 1800, LeftUp: 1400, RightUp: 1600})
	require.Error(t, err)
	// Failed channel keeps its previous value; the rest are recorded.
	applied := reg.Applied()
	require.Equal(t, PulseNeutral, applied.RightFront)
	require.Equal(t, PulseWidth(1800), applied.LeftFront)
	require.Equal(t, PulseWidth(1400), applied.LeftUp)
	require.Equal(t, PulseWidth(1600), applied.RightUp)
}

func TestChannelString(t *testing.T) {
	require.Equal(t, "leftFront", ChannelLeftFront.String())
	require.Equal(t, "unknown", Channel(42).String())
}
