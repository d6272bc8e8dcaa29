package util

import (
	"flag"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayFlags(t *testing.T) {
	var files ArrayFlags

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(ioutil.Discard)
	fs.Var(&files, "profile-file", "")

	require.NoError(t, fs.Parse([]string{"-profile-file", "a.yaml", "-profile-file", "b.yaml"}))
	require.Equal(t, ArrayFlags{"a.yaml", "b.yaml"}, files)
	require.Equal(t, "a.yaml,b.yaml", files.String())
}
