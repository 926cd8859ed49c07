package grpcv1

import (
	"context"
	"errors"

	logginghelper "github.com/Egor213/EndpointLog/internal/controller/common/logging"
	"github.com/Egor213/EndpointLog/internal/controller/grpc/validators"
	"github.com/Egor213/EndpointLog/internal/metrics"
	"github.com/Egor213/EndpointLog/internal/service"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const transport = "grpc"

type LogController struct {
	logService      service.Log
	endpointService service.Endpoint
	counters        *metrics.Counters
}

func NewLogController(ls service.Log, es service.Endpoint, cnt *metrics.Counters) *LogController {
	return &LogController{
		logService:      ls,
		endpointService: es,
		counters:        cnt,
	}
}

func (c *LogController) CreateLog(ctx context.Context, req *CreateLogRequest) (*CreateLogResponse, error) {
	const method = "CreateLog"
	fields := log.Fields{
		"type":        req.Type,
		"post_type":   req.PostType,
		"endpoint_id": req.EndpointID,
	}

	c.counters.GrpcRequests.Inc(method, "received")
	in := NewCreateLogFromRequest(req)
	if err := validators.ValidateCreateLog(in); err != nil {
		c.counters.GrpcRequests.Inc(method, "failed")
		logginghelper.LogError(transport, method, fields, err)
		return nil, status.Errorf(codes.InvalidArgument, "invalid argument: %s", err)
	}

	logginghelper.LogReceived(transport, method, fields)

	id, err := c.logService.CreateLog(ctx, in.Type, in.PostType, in.Message, in.EndpointID)
	if err != nil {
		c.counters.GrpcRequests.Inc(method, "failed")
		logginghelper.LogError(transport, method, fields, err)
		return nil, toStatus(err)
	}

	fields["id"] = id
	logginghelper.LogDone(transport, method, fields)
	c.counters.GrpcRequests.Inc(method, "ok")

	return &CreateLogResponse{ID: id}, nil
}

func (c *LogController) GetLogs(ctx context.Context, req *GetLogsRequest) (*GetLogsResponse, error) {
	const method = "GetLogs"
	fields := log.Fields{"user_id": req.UserID}

	c.counters.GrpcRequests.Inc(method, "received")
	if err := validators.ValidateUserID(req.UserID); err != nil {
		c.counters.GrpcRequests.Inc(method, "failed")
		return nil, status.Errorf(codes.InvalidArgument, "invalid argument: %s", err)
	}

	rows, err := c.logService.GetLogs(ctx, req.UserID)
	if err != nil {
		c.counters.GrpcRequests.Inc(method, "failed")
		logginghelper.LogError(transport, method, fields, err)
		return nil, toStatus(err)
	}

	resp, err := ToGetLogsResponse(rows)
	if err != nil {
		c.counters.GrpcRequests.Inc(method, "failed")
		logginghelper.LogError(transport, method, fields, err)
		return nil, status.Errorf(codes.Internal, "cannot encode logs")
	}

	c.counters.GrpcRequests.Inc(method, "ok")
	return resp, nil
}

// DeleteLog reports storage failures in the response body, not as a status.
func (c *LogController) DeleteLog(ctx context.Context, req *DeleteLogRequest) (*DeleteLogResponse, error) {
	const method = "DeleteLog"

	c.counters.GrpcRequests.Inc(method, "received")
	if err := validators.ValidateID(req.ID); err != nil {
		c.counters.GrpcRequests.Inc(method, "failed")
		return nil, status.Errorf(codes.InvalidArgument, "invalid argument: %s", err)
	}

	res := c.logService.DeleteLog(ctx, req.ID)
	if res != nil {
		c.counters.GrpcRequests.Inc(method, "failed")
	} else {
		c.counters.GrpcRequests.Inc(method, "ok")
	}

	return ToDeleteLogResponse(res), nil
}

func (c *LogController) CreateEndpoint(ctx context.Context, req *CreateEndpointRequest) (*CreateEndpointResponse, error) {
	const method = "CreateEndpoint"
	fields := log.Fields{"name": req.Name, "user_id": req.UserID}

	c.counters.GrpcRequests.Inc(method, "received")
	id, err := c.endpointService.CreateEndpoint(ctx, req.Name, req.UserID)
	if err != nil {
		c.counters.GrpcRequests.Inc(method, "failed")
		logginghelper.LogError(transport, method, fields, err)
		return nil, toStatus(err)
	}

	c.counters.GrpcRequests.Inc(method, "ok")
	return &CreateEndpointResponse{ID: id}, nil
}

func (c *LogController) DeleteEndpoint(ctx context.Context, req *DeleteEndpointRequest) (*DeleteEndpointResponse, error) {
	const method = "DeleteEndpoint"

	c.counters.GrpcRequests.Inc(method, "received")
	if err := validators.ValidateID(req.ID); err != nil {
		c.counters.GrpcRequests.Inc(method, "failed")
		return nil, status.Errorf(codes.InvalidArgument, "invalid argument: %s", err)
	}

	if err := c.endpointService.DeleteEndpoint(ctx, req.ID); err != nil {
		c.counters.GrpcRequests.Inc(method, "failed")
		logginghelper.LogError(transport, method, log.Fields{"id": req.ID}, err)
		return nil, toStatus(err)
	}

	c.counters.GrpcRequests.Inc(method, "ok")
	return &DeleteEndpointResponse{}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrEndpointNotFound):
		return status.Error(codes.NotFound, service.ErrEndpointNotFound.Error())
	case errors.Is(err, service.ErrEndpointExists):
		return status.Error(codes.AlreadyExists, service.ErrEndpointExists.Error())
	case errors.Is(err, service.ErrEmptyEndpointName), errors.Is(err, service.ErrEmptyUserID):
		return status.Errorf(codes.InvalidArgument, "invalid argument: %s", err)
	default:
		return status.Errorf(codes.Unknown, "unknown error")
	}
}
