package service

import (
	"context"
	"errors"

	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/metrics"
	"github.com/Egor213/EndpointLog/internal/repo"
	"github.com/Egor213/EndpointLog/internal/repo/repoerrs"
	"github.com/Egor213/EndpointLog/internal/revalidate"
	"github.com/Egor213/EndpointLog/pkg/clock"
	errorsUtils "github.com/Egor213/EndpointLog/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type LogService struct {
	logRepo     repo.Log
	counters    *metrics.Counters
	revalidator revalidate.Revalidator
	clock       clock.Clock
}

func NewLogService(lr repo.Log, cnt *metrics.Counters, rv revalidate.Revalidator, c clock.Clock) *LogService {
	return &LogService{
		logRepo:     lr,
		counters:    cnt,
		revalidator: rv,
		clock:       c,
	}
}

// CreateLog appends one entry and marks the logs view stale. Storage
// faults are returned to the caller as is.
func (s *LogService) CreateLog(ctx context.Context, logType domain.LogType, postType domain.PostType, message, endpointID string) (string, error) {
	entry, err := domain.NewLogEntry(logType, postType, message, endpointID, s.clock.Now())
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	id, err := s.logRepo.Insert(ctx, entry)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return "", errorsUtils.WrapPathErr(errors.Join(ErrEndpointNotFound, err))
		}
		return "", errorsUtils.WrapPathErr(errors.Join(ErrCannotCreateLog, err))
	}

	s.counters.LogsCreated.Inc(string(logType), string(postType))
	s.revalidator.Revalidate(ctx, revalidate.LogsView)

	return id, nil
}

func (s *LogService) GetLogs(ctx context.Context, userID string) ([]domain.LogRow, error) {
	logs, err := s.logRepo.SelectJoined(ctx, userID)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(errors.Join(ErrCannotGetLogs, err))
	}
	if logs == nil {
		logs = []domain.LogRow{}
	}
	return logs, nil
}

// DeleteLog never fails with an error: a storage fault is reported through
// the returned result, nil means the entry is gone.
func (s *LogService) DeleteLog(ctx context.Context, id string) *domain.DeleteResult {
	if err := s.logRepo.DeleteByID(ctx, id); err != nil {
		s.counters.LogsDeleted.Inc("failed")
		log.WithFields(log.Fields{
			"id":    id,
			"error": err,
		}).Error("Failed to delete log")

		return &domain.DeleteResult{Error: errorsUtils.ErrorMessage(err)}
	}

	s.counters.LogsDeleted.Inc("ok")
	s.revalidator.Revalidate(ctx, revalidate.LogsView)

	return nil
}
