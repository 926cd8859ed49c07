package service

import (
	"context"

	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/metrics"
	"github.com/Egor213/EndpointLog/internal/repo"
	"github.com/Egor213/EndpointLog/internal/revalidate"
	"github.com/Egor213/EndpointLog/pkg/clock"
)

type Log interface {
	CreateLog(ctx context.Context, logType domain.LogType, postType domain.PostType, message, endpointID string) (string, error)
	GetLogs(ctx context.Context, userID string) ([]domain.LogRow, error)
	DeleteLog(ctx context.Context, id string) *domain.DeleteResult
}

type Endpoint interface {
	CreateEndpoint(ctx context.Context, name, userID string) (string, error)
	GetEndpoint(ctx context.Context, id string) (domain.Endpoint, error)
	DeleteEndpoint(ctx context.Context, id string) error
}

type Services struct {
	Log
	Endpoint
}

type ServicesDependencies struct {
	Repos       *repo.Repositories
	Counters    *metrics.Counters
	Revalidator revalidate.Revalidator
	Clock       clock.Clock
}

func NewServices(deps ServicesDependencies) *Services {
	c := deps.Clock
	if c == nil {
		c = clock.RealClock{}
	}

	return &Services{
		Log:      NewLogService(deps.Repos.Log, deps.Counters, deps.Revalidator, c),
		Endpoint: NewEndpointService(deps.Repos.Endpoint, deps.Revalidator),
	}
}
