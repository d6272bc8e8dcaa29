package acpicall

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	require.Equal(t, `\_SB.PCI0.LPC0.EC0.BTSM`, Command(`\_SB.PCI0.LPC0.EC0.BTSM`))
	require.Equal(t, `\_SB.PCI0.LPC0.EC0.VPC0.SBMC 3`, Command(`\_SB.PCI0.LPC0.EC0.VPC0.SBMC`, 0x03))
	require.Equal(t, `\_SB.PCI0.LPC0.EC0.VPC0.DYTC 1290241`, Command(`\_SB.PCI0.LPC0.EC0.VPC0.DYTC`, 0x0013B001))
	require.Equal(t, "m 0 1 4294967295", Command("m", 0, 1, 0xFFFFFFFF))
}

func TestParseOutput(t *testing.T) {
	out, err := ParseOutput("m", "0x1A")
	require.NoError(t, err)
	require.Equal(t, Output{Valid: true, Value: 26, Raw: "0x1A"}, out)

	out, err = ParseOutput("m", "26")
	require.NoError(t, err)
	require.True(t, out.Valid)
	require.EqualValues(t, 26, out.Value)

	out, err = ParseOutput("m", "hello")
	require.NoError(t, err)
	require.Equal(t, Output{Raw: "hello"}, out)

	out, err = ParseOutput("m", "0x1\x00\x00\x00")
	require.NoError(t, err)
	require.EqualValues(t, 1, out.Value)

	_, err = ParseOutput("m", "Error: AE_NOT_FOUND")
	var notFound *MethodNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "m", notFound.Method)

	_, err = ParseOutput("m", "Error: AE_BOGUS")
	var unknown *UnknownError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "AE_BOGUS", unknown.Message)
}

func TestParseOutputIsTotal(t *testing.T) {
	inputs := []string{
		"", "0x", "0xZZ", "-1", "4294967296", "0x100000000", " 1", "Error:", "Error: ",
		"\x00", "not a number", "1.5", "0X1A",
	}
	for _, in := range inputs {
		require.NotPanics(t, func() {
			out, err := ParseOutput("m", in)
			if err == nil {
				require.False(t, out.Valid, "input %q", in)
			}
		})
	}

	_, err := ParseOutput("m", "Error: ")
	var unknown *UnknownError
	require.True(t, errors.As(err, &unknown))
	require.Empty(t, unknown.Message)
}

func TestFileCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "call")
	require.NoError(t, ioutil.WriteFile(path, nil, 0600))

	// a regular file echoes the command back, which is not numeric
	c := NewCallerWithPath(path)
	out, err := c.Call(`\_SB.PCI0.LPC0.EC0.VPC0.SBMC`, 7)
	require.NoError(t, err)
	require.False(t, out.Valid)
	require.Equal(t, `\_SB.PCI0.LPC0.EC0.VPC0.SBMC 7`, out.Raw)

	_, err = CallExpectValid(c, "m", 1, 2)
	var unknownValue *UnknownValueError
	require.True(t, errors.As(err, &unknownValue))
	require.Equal(t, "m 1 2", unknownValue.Value)

	// shorter commands must not leave the tail of a previous one behind
	out, err = c.Call("12")
	require.NoError(t, err)
	require.True(t, out.Valid)
	require.EqualValues(t, 12, out.Value)
}

func TestFileCallerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "call")
	require.NoError(t, ioutil.WriteFile(path, nil, 0600))

	c := NewCallerWithPath(path)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				method := fmt.Sprintf("m%d", i)
				out, err := c.Call(method, uint32(j))
				require.NoError(t, err)
				require.Equal(t, fmt.Sprintf("%s %d", method, j), out.Raw)
			}
		}(i)
	}
	wg.Wait()
}

type inFlightCaller struct {
	current int32
	peak    int32
}

func (c *inFlightCaller) Call(method string, parameters ...uint32) (Output, error) {
	n := atomic.AddInt32(&c.current, 1)
	defer atomic.AddInt32(&c.current, -1)

	for {
		p := atomic.LoadInt32(&c.peak)
		if n <= p || atomic.CompareAndSwapInt32(&c.peak, p, n) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	return Output{Valid: true, Raw: "0x0"}, nil
}

func TestSerialize(t *testing.T) {
	inner := &inFlightCaller{}
	c := Serialize(inner)
	require.True(t, c == Serialize(c))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Call("m")
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, atomic.LoadInt32(&inner.peak))
}

func TestFileCallerKernelModuleNotLoaded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	_, err := NewCallerWithPath(path).Call("m")
	var notLoaded *KernelModuleNotLoadedError
	require.True(t, errors.As(err, &notLoaded))
	require.True(t, os.IsNotExist(errors.Cause(notLoaded.Err)))

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "call must not create the control file")
}

func TestFileCallerIOError(t *testing.T) {
	// a directory exists but cannot be opened for writing
	_, err := NewCallerWithPath(t.TempDir()).Call("m")
	require.Error(t, err)

	var notLoaded *KernelModuleNotLoadedError
	require.False(t, errors.As(err, &notLoaded))
}

func TestDryCaller(t *testing.T) {
	v, err := CallExpectValid(NewDryCaller(), "m", 1)
	require.NoError(t, err)
	require.Zero(t, v)
}
