package battery

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/zllovesuki/IdeapadManager/system/acpicall"
	"github.com/zllovesuki/IdeapadManager/system/acpicall/acpicalltest"
	"github.com/zllovesuki/IdeapadManager/system/guard"
	"github.com/zllovesuki/IdeapadManager/system/profile"
)

func setup(t *testing.T) (*profile.Profile, *acpicalltest.Ideapad) {
	t.Helper()
	p := profile.IdeapadAMD()
	return &p, acpicalltest.NewIdeapad(&p)
}

func TestEnableIgnore(t *testing.T) {
	p, l := setup(t)
	l.SetBattery(false, true)

	require.NoError(t, NewConservation(p, l).EnableIgnore())

	// exactly one write, no status queries
	require.Equal(t, []string{`\_SB.PCI0.LPC0.EC0.VPC0.SBMC 3`}, l.Commands())

	s, err := Status(NewConservation(p, l))
	require.NoError(t, err)
	require.Equal(t, State{Conservation: true, RapidCharge: true}, s)
}

func TestEnableErrorConflict(t *testing.T) {
	p, l := setup(t)

	l.SetBattery(false, true)
	err := NewConservation(p, l).Enable(ModeError)
	require.True(t, errors.Is(err, ErrRapidChargeEnabled))
	require.Empty(t, l.CallsTo(p.Battery.SetCommand))

	l.Reset()
	l.SetBattery(true, false)
	err = NewRapidCharge(p, l).Enable(ModeError)
	require.True(t, errors.Is(err, ErrConservationEnabled))
	require.Equal(t, []string{`\_SB.PCI0.LPC0.EC0.BTSM`}, l.Commands())
}

func TestEnableErrorNoConflict(t *testing.T) {
	p, l := setup(t)

	require.NoError(t, NewRapidCharge(p, l).Enable(ModeError))
	require.Equal(t, []string{
		`\_SB.PCI0.LPC0.EC0.BTSM`,
		`\_SB.PCI0.LPC0.EC0.VPC0.SBMC 7`,
	}, l.Commands())
}

func TestEnableSwitch(t *testing.T) {
	p, l := setup(t)
	l.SetBattery(true, false)

	require.NoError(t, NewRapidCharge(p, l).Enable(ModeSwitch))

	// one disable of the opposing feature, then one enable, in that order
	writes := l.CallsTo(p.Battery.SetCommand)
	require.Len(t, writes, 2)
	require.Equal(t, []uint32{p.Battery.Conservation.Parameters.Disable}, writes[0].Parameters)
	require.Equal(t, []uint32{p.Battery.RapidCharge.Parameters.Enable}, writes[1].Parameters)

	s, err := Status(NewRapidCharge(p, l))
	require.NoError(t, err)
	require.Equal(t, State{RapidCharge: true}, s)
}

func TestEnableSwitchWithoutConflict(t *testing.T) {
	p, l := setup(t)

	require.NoError(t, NewConservation(p, l).EnableSwitch())
	writes := l.CallsTo(p.Battery.SetCommand)
	require.Len(t, writes, 1)
	require.Equal(t, []uint32{p.Battery.Conservation.Parameters.Enable}, writes[0].Parameters)
}

func TestEnableSwitchDisableFails(t *testing.T) {
	p, l := setup(t)
	l.SetBattery(false, true)
	l.Respond(p.Battery.SetCommand, "Error: AE_AML_INTERNAL")

	err := NewConservation(p, l).EnableSwitch()
	var unknown *acpicall.UnknownError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "AE_AML_INTERNAL", unknown.Message)

	// the enable write never happened
	require.Len(t, l.CallsTo(p.Battery.SetCommand), 1)
}

func TestEnableInvalidMode(t *testing.T) {
	p, l := setup(t)

	err := NewConservation(p, l).Enable(Mode(42))
	require.True(t, errors.Is(err, ErrInvalidMode))
	require.Empty(t, l.Calls())
}

func TestDisableTwice(t *testing.T) {
	p, l := setup(t)
	c := NewConservation(p, l)

	require.NoError(t, c.Disable())
	require.NoError(t, c.Disable())

	commands := l.Commands()
	require.Len(t, commands, 2)
	require.Equal(t, commands[0], commands[1])
}

func TestGet(t *testing.T) {
	p, l := setup(t)
	c := NewConservation(p, l)

	l.Respond(p.Battery.Conservation.GetCommand, "0x2")
	enabled, err := c.Enabled()
	require.NoError(t, err)
	require.True(t, enabled)

	l.Respond(p.Battery.Conservation.GetCommand, "0")
	disabled, err := c.Disabled()
	require.NoError(t, err)
	require.True(t, disabled)

	l.Respond(p.Battery.Conservation.GetCommand, "garbage")
	_, err = c.Get()
	var unknownValue *acpicall.UnknownValueError
	require.True(t, errors.As(err, &unknownValue))
	require.Equal(t, "garbage", unknownValue.Value)

	// strict enable surfaces query failures without writing
	err = c.Opposing().EnableError()
	require.True(t, errors.As(err, &unknownValue))
	require.Empty(t, l.CallsTo(p.Battery.SetCommand))
}

func TestMethodNotFound(t *testing.T) {
	p := profile.IdeapadAMD()
	s := acpicalltest.NewSimulator()

	_, err := NewRapidCharge(&p, s).Get()
	var notFound *acpicall.MethodNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, p.Battery.RapidCharge.GetCommand, notFound.Method)
}

func TestGuards(t *testing.T) {
	p, l := setup(t)
	c := NewConservation(p, l)

	g, err := c.EnableGuard(ModeSwitch)
	require.NoError(t, err)
	enabled, err := c.Enabled()
	require.NoError(t, err)
	require.True(t, enabled)

	g.Release()
	enabled, err = c.Enabled()
	require.NoError(t, err)
	require.False(t, enabled)

	l.SetBattery(true, false)
	g, err = c.DisableGuard(ModeIgnore)
	require.NoError(t, err)
	disabled, err := c.Disabled()
	require.NoError(t, err)
	require.True(t, disabled)

	g.Release()
	enabled, err = c.Enabled()
	require.NoError(t, err)
	require.True(t, enabled)
}

func TestGuardReleaseErrorGoesToSink(t *testing.T) {
	p, l := setup(t)

	var got error
	c := NewRapidCharge(p, l)
	c.Sink = guard.SinkFunc(func(err error) { got = err })

	g, err := c.EnableGuard(ModeIgnore)
	require.NoError(t, err)

	l.Respond(p.Battery.SetCommand, "Error: AE_NOT_FOUND")
	require.NotPanics(t, g.Release)

	var notFound *acpicall.MethodNotFoundError
	require.True(t, errors.As(got, &notFound))

	// opposing controllers share the sink
	require.NotNil(t, c.Opposing().Sink)
}

func TestEnableGuardConflict(t *testing.T) {
	p, l := setup(t)
	l.SetBattery(true, false)

	g, err := NewRapidCharge(p, l).EnableGuard(ModeError)
	require.Nil(t, g)
	require.True(t, errors.Is(err, ErrConservationEnabled))
}

// Battery conservation can be switched off by the hardware itself when rapid charge
// is enabled. The controllers must cope with that without relying on it.
func TestConflictScenario(t *testing.T) {
	p, l := setup(t)
	l.SetRapidChargeQuirk(true)

	conservation := NewConservation(p, l)
	rapidCharge := NewRapidCharge(p, l)

	require.NoError(t, conservation.Enable(ModeIgnore))
	require.NoError(t, rapidCharge.Enable(ModeIgnore))

	enabled, err := rapidCharge.Enabled()
	require.NoError(t, err)
	require.True(t, enabled)
	disabled, err := conservation.Disabled()
	require.NoError(t, err)
	require.True(t, disabled)

	require.NoError(t, conservation.Enable(ModeIgnore))
	s, err := Status(conservation)
	require.NoError(t, err)
	require.Equal(t, State{Conservation: true, RapidCharge: true}, s)

	err = rapidCharge.Enable(ModeError)
	require.True(t, errors.Is(err, ErrConservationEnabled))

	l.Reset()
	require.NoError(t, rapidCharge.Enable(ModeSwitch))
	require.Equal(t, []string{
		`\_SB.PCI0.LPC0.EC0.BTSM`,
		`\_SB.PCI0.LPC0.EC0.VPC0.SBMC 5`,
		`\_SB.PCI0.LPC0.EC0.VPC0.SBMC 7`,
	}, l.Commands())

	s, err = Status(rapidCharge)
	require.NoError(t, err)
	require.Equal(t, State{RapidCharge: true}, s)
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeIgnore, ModeError, ModeSwitch} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}

	parsed, err := ParseMode(" Switch ")
	require.NoError(t, err)
	require.Equal(t, ModeSwitch, parsed)

	_, err = ParseMode("force")
	require.True(t, errors.Is(err, ErrInvalidMode))
	require.Equal(t, "unknown", Mode(9).String())
}

func TestFeatureString(t *testing.T) {
	require.Equal(t, "battery conservation", Conservation.String())
	require.Equal(t, "rapid charge", RapidCharge.String())
	require.NotPanics(t, func() {
		require.Equal(t, "unknown", Feature(-1).String())
		require.Equal(t, "unknown", Feature(2).String())
	})
}
