package grpcv1

import (
	"github.com/Egor213/EndpointLog/internal/metrics"
	"github.com/Egor213/EndpointLog/internal/service"
	"google.golang.org/grpc"
)

func RegisterServices(services *service.Services, counters *metrics.Counters) func(s *grpc.Server) {
	return func(s *grpc.Server) {
		RegisterLogServiceServer(s, NewLogController(services.Log, services.Endpoint, counters))
	}
}
