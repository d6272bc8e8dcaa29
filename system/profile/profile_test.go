package profile

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func identity(name string) Identifier {
	return func() (string, error) {
		return name, nil
	}
}

func TestDefaultProfiles(t *testing.T) {
	for _, p := range SearchPath() {
		require.NoError(t, p.Validate())
	}

	amd := IdeapadAMD()
	require.Equal(t, `\_SB.PCI0.LPC0.EC0.VPC0.SBMC`, amd.Battery.SetCommand)
	require.Equal(t, `\_SB.PCI0.LPC0.EC0.BTSM`, amd.Battery.Conservation.GetCommand)
	require.Equal(t, `\_SB.PCI0.LPC0.EC0.QCHO`, amd.Battery.RapidCharge.GetCommand)
	require.Equal(t, `\_SB.PCI0.LPC0.EC0.VPC0.DYTC`, amd.SystemPerformance.Commands.Set)

	intel := Ideapad15IIL05()
	require.Equal(t, `\_SB.PCI0.LPCB.EC0.FCMO`, intel.SystemPerformance.Commands.GetFCMO)
	require.Equal(t, `\_SB.PCI0.LPCB.EC0.SPMO`, intel.SystemPerformance.Commands.GetSPMO)
}

func TestFind(t *testing.T) {
	p, err := Find(identity("81YM"))
	require.NoError(t, err)
	require.Equal(t, "IDEAPAD_AMD", p.Name)

	p, err = Find(identity("81YK\n"))
	require.NoError(t, err)
	require.Equal(t, "IDEAPAD_15IIL05", p.Name)

	_, err = Find(identity("20XW"))
	require.True(t, errors.Is(err, ErrNoValidProfileInSearchPath))

	_, err = Find(identity(""))
	require.True(t, errors.Is(err, ErrUnableToFindSystemInformation))

	_, err = Find(func() (string, error) {
		return "", errors.New("permission denied")
	})
	require.True(t, errors.Is(err, ErrUnableToFindSystemInformation))
	require.Contains(t, err.Error(), "permission denied")

	// the cause stays reachable
	_, err = Find(func() (string, error) {
		return "", &os.PathError{Op: "open", Path: "/sys/class/dmi/id/product_name", Err: os.ErrPermission}
	})
	require.True(t, errors.Is(err, ErrUnableToFindSystemInformation))
	require.True(t, errors.Is(err, os.ErrPermission))
	var pathErr *os.PathError
	require.True(t, errors.As(err, &pathErr))
	require.Equal(t, "/sys/class/dmi/id/product_name", pathErr.Path)
}

func TestFindFirstMatchWins(t *testing.T) {
	first := IdeapadAMD()
	first.Name = "FIRST"
	second := IdeapadAMD()
	second.Name = "SECOND"

	p, err := FindWithSearchPath(identity("81YQ"), []Profile{first, second})
	require.NoError(t, err)
	require.Equal(t, "FIRST", p.Name)

	// the returned profile is a copy
	p.Name = "CHANGED"
	require.Equal(t, "FIRST", first.Name)
}

func TestByName(t *testing.T) {
	p, err := ByName("ideapad_amd", SearchPath())
	require.NoError(t, err)
	require.Equal(t, "IDEAPAD_AMD", p.Name)

	_, err = ByName("thinkpad", SearchPath())
	require.Error(t, err)
}

const profileFile = `
- name: CUSTOM
  expected_product_names: ["82A1"]
  system_performance:
    commands:
      set: \_SB.PCI0.LPC0.EC0.VPC0.DYTC
      get_fcmo: \_SB.PCI0.LPC0.EC0.FCMO
      get_spmo: \_SB.PCI0.LPC0.EC0.SPMO
    bits:
      intelligent_cooling: 0
      extreme_performance: {spmo: 1, fcmo: 4}
      battery_saving: 2
    parameters:
      intelligent_cooling: 0x000FB001
      extreme_performance: 0x0012B001
      battery_saving: 0x0013B001
  battery:
    set: \_SB.PCI0.LPC0.EC0.VPC0.SBMC
    conservation:
      get: \_SB.PCI0.LPC0.EC0.BTSM
      parameters: {enable: 3, disable: 5}
    rapid_charge:
      get: \_SB.PCI0.LPC0.EC0.QCHO
      parameters: {enable: 7, disable: 8}
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(profileFile), 0600))

	profiles, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	p := profiles[0]
	require.Equal(t, "CUSTOM", p.Name)
	require.Equal(t, Same(0), p.SystemPerformance.Bits.IntelligentCooling)
	require.Equal(t, Different(1, 4), p.SystemPerformance.Bits.ExtremePerformance)
	require.Equal(t, SharedSystemPerformanceParameters, p.SystemPerformance.Parameters)
	require.Equal(t, SharedConservationParameters, p.Battery.Conservation.Parameters)
	require.Equal(t, SharedRapidChargeParameters, p.Battery.RapidCharge.Parameters)

	found, err := FindWithSearchPath(identity("82A1"), append(profiles, SearchPath()...))
	require.NoError(t, err)
	require.Equal(t, "CUSTOM", found.Name)
}

func TestBitUnmarshalYAML(t *testing.T) {
	var b Bit
	require.NoError(t, yaml.Unmarshal([]byte(`0x2`), &b))
	require.Equal(t, Same(2), b)

	require.NoError(t, yaml.Unmarshal([]byte(`{spmo: 1, fcmo: 4}`), &b))
	require.Equal(t, Different(1, 4), b)

	require.Error(t, yaml.Unmarshal([]byte(`fast`), &b))
	require.Error(t, yaml.Unmarshal([]byte(`[1, 4]`), &b))
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`- name: EMPTY`))
	require.Error(t, err)

	_, err = Parse([]byte(`not: a list`))
	require.Error(t, err)

	dup := IdeapadAMD()
	dup.SystemPerformance.Bits.BatterySaving = Same(0)
	require.Error(t, dup.Validate())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
