package grpcv1

import (
	"encoding/json"
	"time"
)

type CreateLogRequest struct {
	Type       string `json:"type"`
	PostType   string `json:"postType"`
	Message    string `json:"message"`
	EndpointID string `json:"endpointId"`
}

type CreateLogResponse struct {
	ID string `json:"id"`
}

type GetLogsRequest struct {
	UserID string `json:"userId"`
}

type LogRow struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	PostType   string          `json:"postType"`
	Message    json.RawMessage `json:"message"`
	CreatedAt  time.Time       `json:"createdAt"`
	EndpointID string          `json:"endpointId"`
	Endpoint   string          `json:"endpoint"`
}

type GetLogsResponse struct {
	Logs []LogRow `json:"logs"`
}

type DeleteLogRequest struct {
	ID string `json:"id"`
}

// DeleteLogResponse carries a non-empty Error when the deletion failed.
type DeleteLogResponse struct {
	Error string `json:"error,omitempty"`
}

type CreateEndpointRequest struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

type CreateEndpointResponse struct {
	ID string `json:"id"`
}

type DeleteEndpointRequest struct {
	ID string `json:"id"`
}

type DeleteEndpointResponse struct{}
