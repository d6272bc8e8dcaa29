package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/zllovesuki/IdeapadManager/system/battery"
	"github.com/zllovesuki/IdeapadManager/system/performance"

	"github.com/pkg/errors"
)

// ErrUsage is returned when the arguments do not form a command
var ErrUsage = errors.New("invalid command")

// Usage describes the commands understood by Run
const Usage = `commands:
  status
  conservation enable [-mode ignore|error|switch]
  conservation disable|status
  rapid-charge enable [-mode ignore|error|switch]
  rapid-charge disable|status
  performance get
  performance set intelligent-cooling|extreme-performance|battery-saving
  performance next [steps]
  tui
`

// Run executes one command against c and prints the result to out
func Run(ctx context.Context, c Interface, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.Wrap(ErrUsage, "no command given")
	}

	switch args[0] {
	case "status":
		return status(ctx, c, out)
	case "conservation":
		return batteryCommand(ctx, c, battery.Conservation, args[1:], out)
	case "rapid-charge":
		return batteryCommand(ctx, c, battery.RapidCharge, args[1:], out)
	case "performance":
		return performanceCommand(ctx, c, args[1:], out)
	case "tui":
		return NewConfigurator(c).Serve(ctx)
	default:
		return errors.Wrapf(ErrUsage, "unknown command %q", args[0])
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func status(ctx context.Context, c Interface, out io.Writer) error {
	s, err := c.BatteryStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %s\n", battery.Conservation, onOff(s.Conservation))
	fmt.Fprintf(out, "%s: %s\n", battery.RapidCharge, onOff(s.RapidCharge))

	mode, err := c.Performance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "system performance: %s\n", mode)
	return nil
}

func batteryCommand(ctx context.Context, c Interface, feature battery.Feature, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.Wrapf(ErrUsage, "%s needs enable, disable or status", feature)
	}

	switch args[0] {
	case "enable":
		fs := flag.NewFlagSet("enable", flag.ContinueOnError)
		fs.SetOutput(out)
		modeName := fs.String("mode", battery.ModeError.String(), "what to do when the other feature is on: ignore, error or switch")
		if err := fs.Parse(args[1:]); err != nil {
			return errors.Wrap(ErrUsage, err.Error())
		}
		mode, err := battery.ParseMode(*modeName)
		if err != nil {
			return err
		}
		if err := c.Enable(ctx, feature, mode); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: on\n", feature)
		return nil
	case "disable":
		if err := c.Disable(ctx, feature); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: off\n", feature)
		return nil
	case "status":
		s, err := c.BatteryStatus(ctx)
		if err != nil {
			return err
		}
		on := s.Conservation
		if feature == battery.RapidCharge {
			on = s.RapidCharge
		}
		fmt.Fprintf(out, "%s: %s\n", feature, onOff(on))
		return nil
	default:
		return errors.Wrapf(ErrUsage, "unknown %s command %q", feature, args[0])
	}
}

func performanceCommand(ctx context.Context, c Interface, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.Wrap(ErrUsage, "performance needs get, set or next")
	}

	switch args[0] {
	case "get":
		mode, err := c.Performance(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "system performance: %s\n", mode)
		return nil
	case "set":
		if len(args) != 2 {
			return errors.Wrap(ErrUsage, "performance set needs exactly one mode")
		}
		mode, err := performance.ParseMode(args[1])
		if err != nil {
			return err
		}
		if err := c.SetPerformance(ctx, mode); err != nil {
			return err
		}
		fmt.Fprintf(out, "system performance: %s\n", mode)
		return nil
	case "next":
		howMany := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(ErrUsage, "invalid step count %q", args[1])
			}
			howMany = n
		}
		mode, err := c.NextPerformance(ctx, howMany)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "system performance: %s\n", mode)
		return nil
	default:
		return errors.Wrapf(ErrUsage, "unknown performance command %q", args[0])
	}
}
