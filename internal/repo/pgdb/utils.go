package pgdb

import (
	"github.com/Egor213/EndpointLog/internal/domain"
	sq "github.com/Masterminds/squirrel"
)

const (
	logsTable      = "logs"
	endpointsTable = "endpoints"
)

// BuildInsertLogQuery captures the endpoint owner on the log row so the
// entry stays visible to its owner after the endpoint is removed.
func BuildInsertLogQuery(b sq.StatementBuilderType, id string, entry *domain.LogEntry, message []byte) sq.InsertBuilder {
	owner := sq.Expr("(SELECT user_id FROM "+endpointsTable+" WHERE id = ?)", entry.EndpointID)

	return b.
		Insert(logsTable).
		Columns("id", "type", "post_type", "message", "created_at", "endpoint_id", "user_id").
		Values(id, string(entry.Type), string(entry.PostType), message, entry.CreatedAt, entry.EndpointID, owner).
		Suffix("RETURNING id")
}

func BuildSelectJoinedQuery(b sq.StatementBuilderType, userID string) sq.SelectBuilder {
	return b.
		Select(
			"l.id",
			"l.type",
			"l.post_type",
			"l.message",
			"l.created_at",
			"COALESCE(e.id, '') AS endpoint_id",
			"COALESCE(e.name, '') AS endpoint",
		).
		From(logsTable+" l").
		LeftJoin(endpointsTable+" e ON l.endpoint_id = e.id").
		Where(sq.Expr("COALESCE(e.user_id, l.user_id) = ?", userID)).
		OrderBy("l.created_at DESC", "l.seq DESC")
}

func BuildDeleteLogQuery(b sq.StatementBuilderType, id string) sq.DeleteBuilder {
	return b.
		Delete(logsTable).
		Where(sq.Eq{"id": id})
}
