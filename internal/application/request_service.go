package application

import (
	"context"
	"time"

	"github.com/shareit-platform/service-sharing/internal/apperr"
	"github.com/shareit-platform/service-sharing/internal/clock"
	"github.com/shareit-platform/service-sharing/internal/domain/item"
	"github.com/shareit-platform/service-sharing/internal/domain/request"
	"github.com/shareit-platform/service-sharing/internal/domain/user"
	"go.uber.org/zap"
)

// CreateRequestRequest holds the description of a new item request.
type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// RequestDTO is the API representation of an item request together with the
// items listed in answer to it.
type RequestDTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Requester   UserDTO   `json:"requester"`
	Created     time.Time `json:"created"`
	Items       []ItemDTO `json:"items"`
}

// RequestService implements the item-request use cases.
type RequestService struct {
	requests request.Repository
	users    user.Repository
	items    item.Repository
	clock    clock.Clock
	logger   *zap.Logger
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests request.Repository,
	users user.Repository,
	items item.Repository,
	clk clock.Clock,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requests: requests,
		users:    users,
		items:    items,
		clock:    clk,
		logger:   logger,
	}
}

// CreateRequest records a new item request for the actor.
func (s *RequestService) CreateRequest(ctx context.Context, userID int64, req CreateRequestRequest) (*RequestDTO, error) {
	requester, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	r := request.NewItemRequest(userID, req.Description, s.clock.Now())
	if err := s.requests.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("item request created", zap.Int64("request_id", r.ID()), zap.Int64("requester_id", userID))
	return &RequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		Requester:   toUserDTO(requester),
		Created:     r.Created(),
		Items:       []ItemDTO{},
	}, nil
}

// GetOwnRequests returns the actor's requests, newest first, each with the
// items listed in answer to it.
func (s *RequestService) GetOwnRequests(ctx context.Context, userID int64) ([]RequestDTO, error) {
	requester, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	list, err := s.requests.ListByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return []RequestDTO{}, nil
	}

	return s.attachItems(ctx, list, func(*request.ItemRequest) UserDTO {
		return toUserDTO(requester)
	})
}

// GetAllRequests returns other users' requests, newest first, paged.
func (s *RequestService) GetAllRequests(ctx context.Context, userID int64, from, size int) ([]RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if from < 0 || size < 1 {
		return nil, apperr.Pagination("wrong pagination params")
	}

	list, err := s.requests.ListByOthers(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return []RequestDTO{}, nil
	}

	requesters := newUserLoader(s.users)
	return s.attachItemsErr(ctx, list, func(r *request.ItemRequest) (UserDTO, error) {
		u, err := requesters.load(ctx, r.RequesterID())
		if err != nil {
			return UserDTO{}, err
		}
		return toUserDTO(u), nil
	})
}

// GetRequest returns a single request with its answering items; any
// existing user may fetch it.
func (s *RequestService) GetRequest(ctx context.Context, userID, requestID int64) (*RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	requester, err := s.users.FindByID(ctx, r.RequesterID())
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByRequestIDs(ctx, []int64{requestID})
	if err != nil {
		return nil, err
	}

	dto := RequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		Requester:   toUserDTO(requester),
		Created:     r.Created(),
		Items:       itemDTOs(items),
	}
	return &dto, nil
}

func (s *RequestService) attachItems(ctx context.Context, list []*request.ItemRequest, requester func(*request.ItemRequest) UserDTO) ([]RequestDTO, error) {
	return s.attachItemsErr(ctx, list, func(r *request.ItemRequest) (UserDTO, error) {
		return requester(r), nil
	})
}

func (s *RequestService) attachItemsErr(ctx context.Context, list []*request.ItemRequest, requester func(*request.ItemRequest) (UserDTO, error)) ([]RequestDTO, error) {
	ids := make([]int64, len(list))
	for i, r := range list {
		ids[i] = r.ID()
	}
	answers, err := s.items.ListByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	dtos := make([]RequestDTO, 0, len(list))
	for _, r := range list {
		var requestItems []*item.Item
		for _, it := range answers {
			if it.RequestID() != nil && *it.RequestID() == r.ID() {
				requestItems = append(requestItems, it)
			}
		}
		u, err := requester(r)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, RequestDTO{
			ID:          r.ID(),
			Description: r.Description(),
			Requester:   u,
			Created:     r.Created(),
			Items:       itemDTOs(requestItems),
		})
	}
	return dtos, nil
}

func itemDTOs(items []*item.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, it := range items {
		dtos = append(dtos, toItemDTO(it))
	}
	return dtos
}
