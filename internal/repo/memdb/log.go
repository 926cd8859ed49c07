package memdb

import (
	"context"
	"sort"

	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/EndpointLog/pkg/errors"
	"github.com/google/uuid"
)

type LogRepo struct {
	db *DB
}

func NewLogRepo(db *DB) *LogRepo {
	return &LogRepo{db: db}
}

func (r *LogRepo) Insert(ctx context.Context, entry *domain.LogEntry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	ep, ok := r.db.endpoints[entry.EndpointID]
	if !ok {
		return "", errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
	}

	stored := *entry
	stored.ID = uuid.NewString()
	r.db.seq++
	r.db.logs[stored.ID] = &logRecord{entry: stored, owner: ep.UserID, seq: r.db.seq}

	return stored.ID, nil
}

func (r *LogRepo) SelectJoined(ctx context.Context, userID string) ([]domain.LogRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	matched := make([]*logRecord, 0)
	for _, rec := range r.db.logs {
		owner := rec.owner
		if ep, ok := r.db.endpoints[rec.entry.EndpointID]; ok {
			owner = ep.UserID
		}
		if owner == userID {
			matched = append(matched, rec)
		}
	}

	// Newest first; ties go to the later insert.
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.entry.CreatedAt.Equal(b.entry.CreatedAt) {
			return a.entry.CreatedAt.After(b.entry.CreatedAt)
		}
		return a.seq > b.seq
	})

	rows := make([]domain.LogRow, 0, len(matched))
	for _, rec := range matched {
		row := domain.LogRow{
			ID:        rec.entry.ID,
			Type:      rec.entry.Type,
			PostType:  rec.entry.PostType,
			Message:   rec.entry.Message,
			CreatedAt: rec.entry.CreatedAt,
		}
		if ep, ok := r.db.endpoints[rec.entry.EndpointID]; ok {
			row.EndpointID = ep.ID
			row.Endpoint = ep.Name
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (r *LogRepo) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.logs, id)
	return nil
}
