package supervisor

import (
	"context"
	"fmt"
	"log"
	"net"

	"github.com/zllovesuki/IdeapadManager/controller"
	"github.com/zllovesuki/IdeapadManager/rpc/server"

	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"github.com/pkg/errors"
	"github.com/thejerf/suture/v4"
	"google.golang.org/grpc"
)

type servers struct {
	Battery     *server.BatteryServer
	Performance *server.PerformanceServer
}

// Server runs the gRPC services as a suture.Service
type Server struct {
	address string
	server  *grpc.Server
	servers servers
	dep     *controller.Dependencies
	grpcWeb *grpcweb.WrappedGrpcServer
}

type GRPCRunConfig struct {
	Address      string
	Dependencies *controller.Dependencies
	// OnChange is called after every successful change made through gRPC
	OnChange func()
}

func NewGRPCServer(conf GRPCRunConfig) (*Server, error) {
	if conf.Address == "" {
		return nil, fmt.Errorf("empty listen address is invalid")
	}
	if conf.Dependencies == nil {
		return nil, fmt.Errorf("nil dependencies is invalid")
	}

	s := grpc.NewServer()

	server := &Server{
		address: conf.Address,
		server:  s,
		servers: servers{
			Battery:     server.RegisterBatteryServer(s, conf.Dependencies, conf.OnChange),
			Performance: server.RegisterPerformanceServer(s, conf.Dependencies, conf.OnChange),
		},
		dep: conf.Dependencies,
	}

	server.grpcWeb = grpcweb.WrapServer(s)

	return server, nil
}

func (s *Server) GetWebHandler() *grpcweb.WrappedGrpcServer {
	return s.grpcWeb
}

// Serve satisfies suture.Service
func (s *Server) Serve(haltCtx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		log.Printf("[gRPCServer] Failed to listen for connections: %+v\n", err)
		return errors.Wrap(suture.ErrTerminateSupervisorTree, "[gRPCServer] failed to listen for connections") // If we cannot start gRPC Server, kill the entire tree
	}

	go func() {
		<-haltCtx.Done()
		log.Printf("[gRPCServer] stopping grpc server\n")
		s.server.GracefulStop()
		log.Printf("[gRPCServer] server stopped\n")
	}()
	log.Printf("[gRPCServer] grpc server available at %s\n", s.address)

	return s.server.Serve(lis)
}

func (s *Server) String() string {
	return "gRPCServer"
}

// HotReload points every service at dep
func (s *Server) HotReload(dep *controller.Dependencies) {
	s.dep = dep
	s.servers.Battery.HotReload(dep)
	s.servers.Performance.HotReload(dep)
}
