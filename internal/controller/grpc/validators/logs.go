package validators

import (
	"errors"

	"github.com/Egor213/EndpointLog/internal/domain"
)

var (
	ErrInvalidLogType  = errors.New("type must be one of: success, error")
	ErrInvalidPostType = errors.New("postType must be one of: http, form")
	ErrEmptyEndpointID = errors.New("endpointId must be specified")
	ErrEmptyUserID     = errors.New("userId must be specified")
	ErrEmptyID         = errors.New("id must be specified")
)

type CreateLog struct {
	Type       domain.LogType
	PostType   domain.PostType
	Message    string
	EndpointID string
}

func ValidateCreateLog(l CreateLog) error {
	if !l.Type.Valid() {
		return ErrInvalidLogType
	}
	if !l.PostType.Valid() {
		return ErrInvalidPostType
	}
	if l.EndpointID == "" {
		return ErrEmptyEndpointID
	}
	return nil
}

func ValidateUserID(userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	return nil
}

func ValidateID(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return nil
}
