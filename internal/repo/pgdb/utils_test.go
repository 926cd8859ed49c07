package pgdb_test

import (
	"testing"
	"time"

	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/repo/pgdb"
	"github.com/Egor213/EndpointLog/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertLogQuery(t *testing.T) {
	createdAt := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	entry, err := domain.NewLogEntry(domain.LogTypeSuccess, domain.PostTypeHTTP, "42", "ep-1", createdAt)
	require.NoError(t, err)

	msg := []byte(`{"success":true,"value":"42"}`)
	sql, args, err := pgdb.BuildInsertLogQuery(postgres.NewBuilder(), "log-1", entry, msg).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO logs")
	assert.Contains(t, sql, "(SELECT user_id FROM endpoints WHERE id = $7)")
	assert.Contains(t, sql, "RETURNING id")
	assert.Equal(t, []any{"log-1", "success", "http", msg, createdAt, "ep-1", "ep-1"}, args)
}

func TestBuildSelectJoinedQuery(t *testing.T) {
	sql, args, err := pgdb.BuildSelectJoinedQuery(postgres.NewBuilder(), "u1").ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM logs l LEFT JOIN endpoints e ON l.endpoint_id = e.id")
	assert.Contains(t, sql, "WHERE COALESCE(e.user_id, l.user_id) = $1")
	assert.Contains(t, sql, "ORDER BY l.created_at DESC, l.seq DESC")
	assert.Contains(t, sql, "COALESCE(e.name, '') AS endpoint")
	assert.Equal(t, []any{"u1"}, args)
}

func TestBuildDeleteLogQuery(t *testing.T) {
	sql, args, err := pgdb.BuildDeleteLogQuery(postgres.NewBuilder(), "log-1").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM logs WHERE id = $1", sql)
	assert.Equal(t, []any{"log-1"}, args)
}
