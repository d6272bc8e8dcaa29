package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/zllovesuki/IdeapadManager/controller"
	"github.com/zllovesuki/IdeapadManager/system/battery"
	"github.com/zllovesuki/IdeapadManager/system/shared"

	"github.com/improbable-eng/grpc-web/go/grpcweb"
	suture "github.com/thejerf/suture/v4"
)

// externalWeb serves gRPC-Web for browser clients, plus a few debug pages
type externalWeb struct {
	srv *http.Server
	s   *grpcweb.WrappedGrpcServer
}

func NewWeb(s *grpcweb.WrappedGrpcServer) *externalWeb {
	return &externalWeb{
		srv: &http.Server{
			Addr: shared.WebAddress,
		},
		s: s,
	}
}

func (g *externalWeb) String() string {
	return "externalWeb"
}

type statusPage struct {
	Profile     string   `json:"profile"`
	Battery     string   `json:"battery"`
	Performance string   `json:"performance"`
	Errors      []string `json:"errors,omitempty"`
}

func serveStatus(w http.ResponseWriter, r *http.Request) {
	dep := controller.Default()
	if dep == nil {
		http.Error(w, "not initialized", http.StatusServiceUnavailable)
		return
	}

	page := statusPage{
		Profile: dep.Profile.Name,
	}
	if s, err := battery.Status(dep.Conservation()); err != nil {
		page.Errors = append(page.Errors, err.Error())
	} else {
		page.Battery = s.String()
	}
	if mode, err := dep.Performance().Get(); err != nil {
		page.Errors = append(page.Errors, err.Error())
	} else {
		page.Performance = mode.String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(page)
}

func serveLogs(w http.ResponseWriter, r *http.Request) {
	if IsDebug != "no" {
		fmt.Fprintf(w, "Logging is not enabled on debug build")
		return
	}
	osFile, err := os.Open(logLocation)
	if err != nil {
		fmt.Fprintf(w, "Unable to open log file: %+v", err)
		return
	}
	defer osFile.Close()
	io.Copy(w, osFile)
}

func (g *externalWeb) Serve(haltCtx context.Context) error {
	errCh := make(chan error, 1)
	mux := http.NewServeMux()
	mux.Handle("/debug/logs", http.HandlerFunc(serveLogs))
	mux.Handle("/status", http.HandlerFunc(serveStatus))
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, x-user-agent, x-grpc-web, grpc-status, grpc-message")
		w.Header().Set("Access-Control-Expose-Headers", "grpc-status, grpc-message")
		if r.Method == http.MethodOptions {
			return
		}
		if g.s.IsGrpcWebRequest(r) {
			g.s.ServeHTTP(w, r)
		} else {
			http.DefaultServeMux.ServeHTTP(w, r)
		}
	}))

	g.srv.Handler = mux

	go func() {
		log.Printf("[externalWeb] externalWeb available at %s\n", g.srv.Addr)
		errCh <- g.srv.ListenAndServe()
	}()

	select {
	case <-haltCtx.Done():
		log.Println("[externalWeb] exiting externalWeb server")
		g.srv.Shutdown(context.Background())
		return nil
	case err := <-errCh:
		if err == nil || err == http.ErrServerClosed {
			return nil
		}
		log.Printf("[externalWeb] error channel: %s\n", err)
		return suture.ErrTerminateSupervisorTree
	}
}
