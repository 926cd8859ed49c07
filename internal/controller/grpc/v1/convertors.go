package grpcv1

import (
	"github.com/Egor213/EndpointLog/internal/controller/grpc/validators"
	"github.com/Egor213/EndpointLog/internal/domain"
)

func NewCreateLogFromRequest(req *CreateLogRequest) validators.CreateLog {
	return validators.CreateLog{
		Type:       domain.LogType(req.Type),
		PostType:   domain.PostType(req.PostType),
		Message:    req.Message,
		EndpointID: req.EndpointID,
	}
}

func ToLogRow(row domain.LogRow) (LogRow, error) {
	msg, err := domain.EncodeMessage(row.Message)
	if err != nil {
		return LogRow{}, err
	}

	return LogRow{
		ID:         row.ID,
		Type:       string(row.Type),
		PostType:   string(row.PostType),
		Message:    msg,
		CreatedAt:  row.CreatedAt,
		EndpointID: row.EndpointID,
		Endpoint:   row.Endpoint,
	}, nil
}

func ToGetLogsResponse(rows []domain.LogRow) (*GetLogsResponse, error) {
	resp := &GetLogsResponse{Logs: make([]LogRow, 0, len(rows))}
	for _, row := range rows {
		r, err := ToLogRow(row)
		if err != nil {
			return nil, err
		}
		resp.Logs = append(resp.Logs, r)
	}
	return resp, nil
}

func ToDeleteLogResponse(res *domain.DeleteResult) *DeleteLogResponse {
	if res == nil {
		return &DeleteLogResponse{}
	}
	return &DeleteLogResponse{Error: res.Error}
}
