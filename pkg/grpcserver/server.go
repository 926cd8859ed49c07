package grpcserver

import (
	"net"
	"time"

	errorsUtils "github.com/Egor213/EndpointLog/pkg/errors"

	"google.golang.org/grpc"
)

const (
	defaultAddr            = ":50051"
	defaultShutdownTimeout = 3 * time.Second
)

type Server struct {
	Server          *grpc.Server
	addr            string
	listener        net.Listener
	serverOpts      []grpc.ServerOption
	notify          chan error
	shutdownTimeout time.Duration
}

func New(register func(*grpc.Server), opts ...Option) (*Server, error) {
	s := &Server{
		addr:            defaultAddr,
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.listener == nil {
		listener, err := net.Listen("tcp", s.addr)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		s.listener = listener
	}

	s.Server = grpc.NewServer(s.serverOpts...)
	register(s.Server)

	s.start()

	return s, nil
}

func (s *Server) start() {
	go func() {
		if err := s.Server.Serve(s.listener); err != nil {
			s.notify <- err
		}
		close(s.notify)
	}()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() {
	done := make(chan any)
	go func() {
		s.Server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		s.Server.Stop()
	}
}
