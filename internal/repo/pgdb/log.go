package pgdb

import (
	"context"
	"errors"

	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/EndpointLog/pkg/errors"
	"github.com/Egor213/EndpointLog/pkg/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

func (r *LogRepo) Insert(ctx context.Context, entry *domain.LogEntry) (string, error) {
	message, err := domain.EncodeMessage(entry.Message)
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	sql, args, err := BuildInsertLogQuery(r.Builder, uuid.NewString(), entry, message).ToSql()
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	var id string
	err = r.Conn(ctx).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return "", errorsUtils.WrapPathErr(insertError(err))
	}
	return id, nil
}

// insertError maps a failed insert. user_id is resolved from the endpoint,
// so a missing endpoint surfaces as a not-null violation before the
// foreign key check.
func insertError(err error) error {
	if errorsUtils.IsForeignKeyViolation(err) || errorsUtils.IsNotNullViolation(err) {
		return errors.Join(repoerrs.ErrNotFound, err)
	}
	return err
}

func (r *LogRepo) SelectJoined(ctx context.Context, userID string) ([]domain.LogRow, error) {
	sql, args, err := BuildSelectJoinedQuery(r.Builder, userID).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.Conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	logs := make([]domain.LogRow, 0)
	for rows.Next() {
		row, err := scanLogRow(rows)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		logs = append(logs, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return logs, nil
}

func scanLogRow(rows pgx.Rows) (domain.LogRow, error) {
	var (
		row      domain.LogRow
		logType  string
		postType string
		message  []byte
	)

	err := rows.Scan(&row.ID, &logType, &postType, &message, &row.CreatedAt, &row.EndpointID, &row.Endpoint)
	if err != nil {
		return domain.LogRow{}, err
	}

	return decodeLogRow(row, logType, postType, message)
}

func decodeLogRow(row domain.LogRow, logType, postType string, message []byte) (domain.LogRow, error) {
	var err error

	row.Type = domain.LogType(logType)
	row.PostType = domain.PostType(postType)
	row.Message, err = domain.DecodeMessage(row.Type, message)
	if err != nil {
		return domain.LogRow{}, err
	}

	return row, nil
}

// DeleteByID treats a missing id as success.
func (r *LogRepo) DeleteByID(ctx context.Context, id string) error {
	sql, args, err := BuildDeleteLogQuery(r.Builder, id).ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if _, err = r.Conn(ctx).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
