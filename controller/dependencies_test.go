package controller

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/zllovesuki/IdeapadManager/system/battery"
	"github.com/zllovesuki/IdeapadManager/system/profile"
	"gopkg.in/yaml.v3"
)

func yamlProfiles(profiles ...profile.Profile) ([]byte, error) {
	return yaml.Marshal(profiles)
}

func TestGetDependenciesByName(t *testing.T) {
	dep, err := GetDependencies(RunConfig{
		DryRun:      true,
		ProfileName: "ideapad_amd",
		StateDir:    t.TempDir(),
	})
	require.NoError(t, err)
	require.Equal(t, "IDEAPAD_AMD", dep.Profile.Name)

	require.Equal(t, battery.Conservation, dep.Conservation().Feature())
	require.Equal(t, battery.RapidCharge, dep.RapidCharge().Feature())
	require.Equal(t, dep.Profile, dep.Performance().Profile)

	// the dry caller answers zero to everything
	s, err := battery.Status(dep.Conservation())
	require.NoError(t, err)
	require.Equal(t, battery.State{}, s)
}

func TestGetDependenciesByProductName(t *testing.T) {
	dep, err := GetDependencies(RunConfig{
		DryRun:   true,
		StateDir: t.TempDir(),
		Identify: func() (string, error) { return "81YK", nil },
	})
	require.NoError(t, err)
	require.Equal(t, "IDEAPAD_15IIL05", dep.Profile.Name)

	_, err = GetDependencies(RunConfig{
		DryRun:   true,
		StateDir: t.TempDir(),
		Identify: func() (string, error) { return "20XW", nil },
	})
	require.True(t, errors.Is(err, profile.ErrNoValidProfileInSearchPath))
}

func TestGetDependenciesProfileFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "profiles.yaml")

	custom := profile.IdeapadAMD()
	custom.Name = "IDEAPAD_CUSTOM"
	custom.ExpectedProductNames = []string{"81YQ"}
	b, err := yamlProfiles(custom)
	require.NoError(t, err)
	require.NoError(t, ioutil.WriteFile(file, b, 0644))

	// profile files are searched before the built-in ones
	dep, err := GetDependencies(RunConfig{
		DryRun:       true,
		StateDir:     dir,
		ProfileFiles: []string{file},
		Identify:     func() (string, error) { return "81YQ", nil },
	})
	require.NoError(t, err)
	require.Equal(t, "IDEAPAD_CUSTOM", dep.Profile.Name)

	_, err = GetDependencies(RunConfig{
		DryRun:       true,
		StateDir:     dir,
		ProfileFiles: []string{filepath.Join(dir, "missing.yaml")},
	})
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	require.Nil(t, Default())

	dep := &Dependencies{}
	SetDefault(dep)
	defer SetDefault(nil)

	require.Same(t, dep, Default())
}
