package pgdb

import (
	"context"
	"errors"

	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/EndpointLog/pkg/errors"
	"github.com/Egor213/EndpointLog/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EndpointRepo struct {
	*postgres.Postgres
}

func NewEndpointRepo(pg *postgres.Postgres) *EndpointRepo {
	return &EndpointRepo{pg}
}

func (r *EndpointRepo) Create(ctx context.Context, endpoint *domain.Endpoint) (string, error) {
	id := endpoint.ID
	if id == "" {
		id = uuid.NewString()
	}

	sql, args, err := r.Builder.
		Insert(endpointsTable).
		Columns("id", "name", "user_id").
		Values(id, endpoint.Name, endpoint.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	var created string
	err = r.Conn(ctx).QueryRow(ctx, sql, args...).Scan(&created)
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return "", errorsUtils.WrapPathErr(repoerrs.ErrAlreadyExists)
		}
		return "", errorsUtils.WrapPathErr(err)
	}
	return created, nil
}

func (r *EndpointRepo) GetByID(ctx context.Context, id string) (domain.Endpoint, error) {
	sql, args, err := r.Builder.
		Select("id", "name", "user_id").
		From(endpointsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Endpoint{}, errorsUtils.WrapPathErr(err)
	}

	var ep domain.Endpoint
	err = r.Conn(ctx).QueryRow(ctx, sql, args...).Scan(&ep.ID, &ep.Name, &ep.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Endpoint{}, errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
		}
		return domain.Endpoint{}, errorsUtils.WrapPathErr(err)
	}
	return ep, nil
}

// DeleteByID leaves the endpoint's logs in place; the foreign key nulls
// their endpoint_id.
func (r *EndpointRepo) DeleteByID(ctx context.Context, id string) error {
	sql, args, err := r.Builder.
		Delete(endpointsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	tag, err := r.Conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
	}
	return nil
}
