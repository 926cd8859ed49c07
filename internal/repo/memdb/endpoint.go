package memdb

import (
	"context"

	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/EndpointLog/pkg/errors"
	"github.com/google/uuid"
)

type EndpointRepo struct {
	db *DB
}

func NewEndpointRepo(db *DB) *EndpointRepo {
	return &EndpointRepo{db: db}
}

func (r *EndpointRepo) Create(ctx context.Context, endpoint *domain.Endpoint) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	ep := *endpoint
	if ep.ID == "" {
		ep.ID = uuid.NewString()
	}
	if _, ok := r.db.endpoints[ep.ID]; ok {
		return "", errorsUtils.WrapPathErr(repoerrs.ErrAlreadyExists)
	}

	r.db.endpoints[ep.ID] = ep
	return ep.ID, nil
}

func (r *EndpointRepo) GetByID(ctx context.Context, id string) (domain.Endpoint, error) {
	if err := ctx.Err(); err != nil {
		return domain.Endpoint{}, errorsUtils.WrapPathErr(err)
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	ep, ok := r.db.endpoints[id]
	if !ok {
		return domain.Endpoint{}, errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
	}
	return ep, nil
}

func (r *EndpointRepo) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.endpoints[id]; !ok {
		return errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
	}
	delete(r.db.endpoints, id)

	for _, rec := range r.db.logs {
		if rec.entry.EndpointID == id {
			rec.entry.EndpointID = ""
		}
	}
	return nil
}
