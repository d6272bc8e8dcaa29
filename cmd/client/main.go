package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/zllovesuki/IdeapadManager/client"
	"github.com/zllovesuki/IdeapadManager/controller"
	"github.com/zllovesuki/IdeapadManager/system/shared"
	"github.com/zllovesuki/IdeapadManager/util"

	"github.com/pkg/errors"
	"google.golang.org/grpc/status"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the exit code so deferred cleanup happens before the process exits
func run(args []string, stdout, stderr io.Writer) int {
	var profileFiles util.ArrayFlags

	flags := flag.NewFlagSet("client", flag.ContinueOnError)
	flags.SetOutput(stderr)
	direct := flags.Bool("direct", false, "use acpi_call directly instead of going through the daemon")
	addr := flags.String("addr", shared.GRPCAddress, "address of the daemon")
	verbose := flags.Bool("v", false, "log acpi_call commands")
	profileName := flags.String("profile", "", "hardware profile to use with -direct")
	stateDir := flags.String("state-dir", "", "directory of the persisted settings, with -direct")
	flags.Var(&profileFiles, "profile-file", "YAML file of additional hardware profiles, with -direct")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: client [flags] command\n\n%s\nflags:\n", client.Usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if !*verbose {
		log.SetOutput(ioutil.Discard)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var c client.Interface
	if *direct {
		dep, err := controller.GetDependencies(controller.RunConfig{
			DryRun:       os.Getenv("DRY_RUN") != "",
			ProfileName:  *profileName,
			ProfileFiles: profileFiles,
			StateDir:     *stateDir,
		})
		if err != nil {
			return fail(stderr, err)
		}
		c = client.NewDirect(dep)
	} else {
		remote, err := client.Dial(ctx, *addr)
		if err != nil {
			return fail(stderr, errors.Wrapf(err, "cannot connect to daemon at %s (use -direct to skip it)", *addr))
		}
		defer remote.Close()
		c = remote
	}

	if err := client.Run(ctx, c, flags.Args(), stdout); err != nil {
		if errors.Is(err, client.ErrUsage) {
			flags.Usage()
		}
		return fail(stderr, err)
	}
	return 0
}

func fail(w io.Writer, err error) int {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(w, "error: %s\n", s.Message())
	} else {
		fmt.Fprintf(w, "error: %s\n", err)
	}
	return 1
}
