package domain

import (
	"errors"
	"time"
)

type LogType string

const (
	LogTypeSuccess LogType = "success"
	LogTypeError   LogType = "error"
)

func (t LogType) Valid() bool {
	return t == LogTypeSuccess || t == LogTypeError
}

type PostType string

const (
	PostTypeHTTP PostType = "http"
	PostTypeForm PostType = "form"
)

func (p PostType) Valid() bool {
	return p == PostTypeHTTP || p == PostTypeForm
}

var (
	ErrInvalidLogType  = errors.New("invalid log type")
	ErrInvalidPostType = errors.New("invalid post type")
	ErrEmptyEndpointID = errors.New("endpoint id must be specified")
)

// LogEntry is immutable once written. Build it with NewLogEntry so that
// Message always matches Type.
type LogEntry struct {
	ID         string
	Type       LogType
	PostType   PostType
	Message    Message
	CreatedAt  time.Time
	EndpointID string
}

func NewLogEntry(logType LogType, postType PostType, message, endpointID string, createdAt time.Time) (*LogEntry, error) {
	if !postType.Valid() {
		return nil, ErrInvalidPostType
	}
	if endpointID == "" {
		return nil, ErrEmptyEndpointID
	}

	msg, err := NewMessage(logType, message)
	if err != nil {
		return nil, err
	}

	return &LogEntry{
		Type:       logType,
		PostType:   postType,
		Message:    msg,
		CreatedAt:  createdAt,
		EndpointID: endpointID,
	}, nil
}

// LogRow is the read-side projection of a LogEntry joined with its endpoint.
// EndpointID and Endpoint are empty when the endpoint no longer exists.
type LogRow struct {
	ID         string    `json:"id"`
	Type       LogType   `json:"type"`
	PostType   PostType  `json:"postType"`
	Message    Message   `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
	EndpointID string    `json:"endpointId"`
	Endpoint   string    `json:"endpoint"`
}

// DeleteResult is returned only when a deletion failed.
type DeleteResult struct {
	Error string `json:"error"`
}
