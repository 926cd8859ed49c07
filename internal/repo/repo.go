package repo

import (
	"context"

	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/repo/memdb"
	"github.com/Egor213/EndpointLog/internal/repo/pgdb"
	"github.com/Egor213/EndpointLog/pkg/postgres"
)

type Log interface {
	Insert(ctx context.Context, entry *domain.LogEntry) (string, error)
	SelectJoined(ctx context.Context, userID string) ([]domain.LogRow, error)
	DeleteByID(ctx context.Context, id string) error
}

type Endpoint interface {
	Create(ctx context.Context, endpoint *domain.Endpoint) (string, error)
	GetByID(ctx context.Context, id string) (domain.Endpoint, error)
	DeleteByID(ctx context.Context, id string) error
}

type Repositories struct {
	Log
	Endpoint
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Log:      pgdb.NewLogRepo(pg),
		Endpoint: pgdb.NewEndpointRepo(pg),
	}
}

func NewMemoryRepositories() *Repositories {
	db := memdb.New()
	return &Repositories{
		Log:      memdb.NewLogRepo(db),
		Endpoint: memdb.NewEndpointRepo(db),
	}
}
