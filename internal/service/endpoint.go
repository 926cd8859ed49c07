package service

import (
	"context"
	"errors"

	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/repo"
	"github.com/Egor213/EndpointLog/internal/repo/repoerrs"
	"github.com/Egor213/EndpointLog/internal/revalidate"
	errorsUtils "github.com/Egor213/EndpointLog/pkg/errors"
)

var (
	ErrEmptyEndpointName = errors.New("endpoint name must be specified")
	ErrEmptyUserID       = errors.New("user id must be specified")
)

type EndpointService struct {
	endpointRepo repo.Endpoint
	revalidator  revalidate.Revalidator
}

func NewEndpointService(er repo.Endpoint, rv revalidate.Revalidator) *EndpointService {
	return &EndpointService{
		endpointRepo: er,
		revalidator:  rv,
	}
}

func (s *EndpointService) CreateEndpoint(ctx context.Context, name, userID string) (string, error) {
	if name == "" {
		return "", ErrEmptyEndpointName
	}
	if userID == "" {
		return "", ErrEmptyUserID
	}

	id, err := s.endpointRepo.Create(ctx, &domain.Endpoint{Name: name, UserID: userID})
	if err != nil {
		if errors.Is(err, repoerrs.ErrAlreadyExists) {
			return "", errorsUtils.WrapPathErr(ErrEndpointExists)
		}
		return "", errorsUtils.WrapPathErr(errors.Join(ErrCannotCreateEndpoint, err))
	}
	return id, nil
}

func (s *EndpointService) GetEndpoint(ctx context.Context, id string) (domain.Endpoint, error) {
	ep, err := s.endpointRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Endpoint{}, errorsUtils.WrapPathErr(ErrEndpointNotFound)
		}
		return domain.Endpoint{}, errorsUtils.WrapPathErr(err)
	}
	return ep, nil
}

// DeleteEndpoint keeps the endpoint's logs; their endpoint label turns
// empty, so the logs view is refreshed as well.
func (s *EndpointService) DeleteEndpoint(ctx context.Context, id string) error {
	if err := s.endpointRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return errorsUtils.WrapPathErr(ErrEndpointNotFound)
		}
		return errorsUtils.WrapPathErr(errors.Join(ErrCannotDeleteEndpoint, err))
	}

	s.revalidator.Revalidate(ctx, revalidate.LogsView)
	return nil
}
