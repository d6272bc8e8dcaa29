package main

import (
	"bytes"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zllovesuki/IdeapadManager/background"
	"github.com/zllovesuki/IdeapadManager/controller"
	"github.com/zllovesuki/IdeapadManager/supervisor"
	"github.com/zllovesuki/IdeapadManager/system/guard"
	"github.com/zllovesuki/IdeapadManager/system/shared"
	"github.com/zllovesuki/IdeapadManager/util"

	suture "github.com/thejerf/suture/v4"
	"golang.org/x/sys/unix"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Compile time injected variables
var (
	Version     = "v0.0.0-dev"
	IsDebug     = "yes"
	logLocation = `/var/log/IdeapadManager.log`
)

func kernelRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "unknown"
	}
	release := uts.Release[:]
	if i := bytes.IndexByte(release, 0); i >= 0 {
		release = release[:i]
	}
	return string(release)
}

func main() {
	var profileFiles util.ArrayFlags

	profileName := flag.String("profile", "", "use the hardware profile with this name instead of detecting it")
	stateDir := flag.String("state-dir", "", "directory of the persisted settings")
	callPath := flag.String("acpi-call-path", "", "path of the acpi_call control file")
	sink := flag.String("on-guard-error", "stderr", "what to do when restoring a setting fails: stderr, stdout, panic, exit or ignore")
	flag.Var(&profileFiles, "profile-file", "YAML file of additional hardware profiles, may be repeated")
	flag.Parse()

	if IsDebug == "no" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   logLocation,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		})
	}

	log.Printf("%s version: %s (kernel %s)\n", shared.AppName, Version, kernelRelease())

	guardSink, err := guard.ParseSink(*sink)
	if err != nil {
		log.Fatalf("[supervisor] %+v\n", err)
	}
	guard.SetDefault(guardSink)

	versionChecker, err := background.NewVersionCheck(Version, shared.GitHubRepo)
	if err != nil {
		log.Fatalf("[supervisor] cannot get version checker")
	}

	controllerConfig := controller.RunConfig{
		DryRun:       os.Getenv("DRY_RUN") != "",
		ProfileName:  *profileName,
		ProfileFiles: profileFiles,
		StateDir:     *stateDir,
		CallPath:     *callPath,
	}

	dep, err := controller.GetDependencies(controllerConfig)
	if err != nil {
		log.Fatalf("[supervisor] cannot get dependencies: %+v\n", err)
	}
	controller.SetDefault(dep)

	if err := dep.ConfigRegistry.Load(); err != nil {
		log.Printf("[supervisor] cannot load settings: %+v\n", err)
	} else if err := dep.ConfigRegistry.Apply(); err != nil {
		log.Printf("[supervisor] cannot restore settings: %+v\n", err)
	}

	saver := background.NewSaver(dep.ConfigRegistry, time.Millisecond*500)

	grpcServer, err := supervisor.NewGRPCServer(supervisor.GRPCRunConfig{
		Address:      shared.GRPCAddress,
		Dependencies: dep,
		OnChange:     saver.Request,
	})
	if err != nil {
		log.Fatalf("[supervisor] cannot create gRPCServer: %+v\n", err)
	}

	evtHook := &supervisor.EventHook{}

	ctx, cancel := context.WithCancel(context.Background())

	/*
		How the supervisor tree is structured:
			gRPCServer: 		supervisor/grpc.go
			versionChecker:		background/version.go
			saver:				background/saver.go

								rootSupervisor  +----+  externalWeb
									+    +
									|    |
									|    |
				gRPCSupervisor  +---+    +---+   backgroundSupervisor
				+                                + +
				|                                | |
				+-> gRPCServer                   | +-> versionChecker
				                                 |
				                                 +---> saver

		Changes made through gRPC ask the saver to persist the settings,
		which happens once the changes settle down.
	*/

	backgroundSupervisor := suture.New("backgroundSupervisor", suture.Spec{})
	backgroundSupervisor.Add(versionChecker)
	backgroundSupervisor.Add(saver)

	grpcSupervisor := suture.New("gRPCSupervisor", suture.Spec{})
	grpcSupervisor.Add(grpcServer)

	rootSupervisor := suture.New("Supervisor", suture.Spec{
		EventHook: evtHook.Event,
	})
	rootSupervisor.Add(grpcSupervisor)
	rootSupervisor.Add(backgroundSupervisor)
	rootSupervisor.Add(NewWeb(grpcServer.GetWebHandler()))

	sigc := make(chan os.Signal, 1)

	go func() {
		supervisorErr := rootSupervisor.Serve(ctx)
		if supervisorErr != nil {
			log.Printf("[supervisor] rootSupervisor returns error: %+v\n", supervisorErr)
			sigc <- syscall.SIGTERM
		}
	}()

	signal.Notify(
		sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)

	sig := <-sigc
	log.Printf("[supervisor] signal received: %+v\n", sig)

	cancel()
	if err := dep.ConfigRegistry.Save(); err != nil {
		log.Printf("[supervisor] cannot save settings: %+v\n", err)
	}
	dep.ConfigRegistry.Close()
	time.Sleep(time.Second) // 1 second for grace period
}
