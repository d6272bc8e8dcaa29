package guard

import (
	"bytes"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGuardReleaseOnce(t *testing.T) {
	calls := 0
	g := New(IgnoreOnError(), func() error {
		calls++
		return nil
	})

	g.Release()
	g.Release()
	require.Equal(t, 1, calls)
}

func TestGuardSink(t *testing.T) {
	var got error
	g := New(SinkFunc(func(err error) { got = err }), func() error {
		return errors.New("restore failed")
	})

	g.Release()
	require.EqualError(t, got, "restore failed")
}

func TestGuardDefaultSink(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(LogOnError(&buf))
	defer SetDefault(nil)

	New(nil, func() error {
		return errors.New("restore failed")
	}).Release()

	require.Equal(t, "error: restore failed\n", buf.String())
}

func TestBuiltinSinks(t *testing.T) {
	require.PanicsWithError(t, "boom", func() {
		PanicOnError().Notify(errors.New("boom"))
	})

	require.NotPanics(t, func() {
		IgnoreOnError().Notify(errors.New("boom"))
	})

	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = osExit }()

	ExitOnError(3).Notify(errors.New("boom"))
	require.Equal(t, 3, code)
}

func TestSetDefault(t *testing.T) {
	s := IgnoreOnError()
	SetDefault(s)
	require.NotNil(t, Default())

	SetDefault(nil)
	_, ok := Default().(*logOnError)
	require.True(t, ok)
}

func TestParseSink(t *testing.T) {
	for _, name := range []string{"", "stderr", "stdout", "panic", "exit", "Ignore"} {
		s, err := ParseSink(name)
		require.NoError(t, err)
		require.NotNil(t, s)
	}

	s, err := ParseSink("stdout")
	require.NoError(t, err)
	l, ok := s.(*logOnError)
	require.True(t, ok)
	require.Equal(t, os.Stdout, l.w)

	_, err = ParseSink("email")
	require.Error(t, err)
}
