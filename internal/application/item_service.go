package application

import (
	"context"
	"strings"

	"github.com/shareit-platform/service-sharing/internal/apperr"
	"github.com/shareit-platform/service-sharing/internal/clock"
	bookingDomain "github.com/shareit-platform/service-sharing/internal/domain/booking"
	"github.com/shareit-platform/service-sharing/internal/domain/item"
	"github.com/shareit-platform/service-sharing/internal/domain/request"
	"github.com/shareit-platform/service-sharing/internal/domain/user"
	"go.uber.org/zap"
)

// CreateItemRequest holds the data needed to list an item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest holds a partial item update; nil fields are ignored.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// CreateCommentRequest holds the text of a new item comment.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ItemService implements the item catalog use cases: CRUD, free-text search,
// the owner's enriched listing and comment posting.
type ItemService struct {
	items    item.Repository
	users    user.Repository
	bookings bookingDomain.Repository
	comments item.CommentRepository
	requests request.Repository
	clock    clock.Clock
	logger   *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	items item.Repository,
	users user.Repository,
	bookings bookingDomain.Repository,
	comments item.CommentRepository,
	requests request.Repository,
	clk clock.Clock,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		requests: requests,
		clock:    clk,
		logger:   logger,
	}
}

// CreateItem lists a new item for the actor. A requestId, when present,
// must resolve to an existing item request.
func (s *ItemService) CreateItem(ctx context.Context, userID int64, req CreateItemRequest) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	if req.RequestID != nil {
		if _, err := s.requests.FindByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	it := item.NewItem(userID, req.Name, req.Description, *req.Available, req.RequestID)
	if err := s.items.Save(ctx, it); err != nil {
		return nil, err
	}

	s.logger.Info("item created", zap.Int64("item_id", it.ID()), zap.Int64("owner_id", userID))
	result := toItemDTO(it)
	return &result, nil
}

// UpdateItem applies a partial update. Only the owner may update an item;
// this is the one operation that answers a real Forbidden instead of hiding
// behind NotFound.
func (s *ItemService) UpdateItem(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*ItemDTO, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user id %d not found", userID)
	}

	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(userID) {
		return nil, apperr.Forbidden("incorrect user operation")
	}

	it.Patch(req.Name, req.Description, req.Available)
	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}

	s.logger.Info("item updated", zap.Int64("item_id", itemID))
	result := toItemDTO(it)
	return &result, nil
}

// GetUserItems returns the actor's items ordered by id, each enriched with
// its comments and the last/next approved booking relative to now.
func (s *ItemService) GetUserItems(ctx context.Context, userID int64, from, size int) ([]ItemDTO, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user id %d not found", userID)
	}
	if from < 0 || size < 1 {
		return nil, apperr.Pagination("wrong pagination params")
	}

	items, err := s.items.ListByOwner(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	lastBookings, err := s.bookings.ApprovedByOwnerStartedBefore(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	nextBookings, err := s.bookings.ApprovedByOwnerStartingAfter(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByOwnerItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	authors := newUserLoader(s.users)
	dtos := make([]ItemDTO, 0, len(items))
	for _, it := range items {
		dto := toItemDTO(it)

		dto.Comments, err = s.commentDTOs(ctx, authors, filterComments(comments, it.ID()))
		if err != nil {
			return nil, err
		}
		dto.LastBooking = firstForItem(lastBookings, it.ID())
		dto.NextBooking = firstForItem(nextBookings, it.ID())

		dtos = append(dtos, dto)
	}
	return dtos, nil
}

// GetItem returns a single item with its comments. The last/next booking
// enrichment is only visible to the item's owner; the actor id may be zero
// for anonymous reads.
func (s *ItemService) GetItem(ctx context.Context, userID, itemID int64) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	dto := toItemDTO(it)

	comments, err := s.comments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	authors := newUserLoader(s.users)
	dto.Comments, err = s.commentDTOs(ctx, authors, comments)
	if err != nil {
		return nil, err
	}

	if userID != 0 && it.IsOwnedBy(userID) {
		now := s.clock.Now()
		lastBookings, err := s.bookings.ApprovedByOwnerStartedBefore(ctx, userID, now)
		if err != nil {
			return nil, err
		}
		nextBookings, err := s.bookings.ApprovedByOwnerStartingAfter(ctx, userID, now)
		if err != nil {
			return nil, err
		}
		dto.LastBooking = firstForItem(lastBookings, it.ID())
		dto.NextBooking = firstForItem(nextBookings, it.ID())
	}

	return &dto, nil
}

// SearchItems finds available items matching the text. A blank query yields
// an empty result, but only after the pagination guard has fired.
func (s *ItemService) SearchItems(ctx context.Context, text string, from, size int) ([]ItemDTO, error) {
	if from < 0 || size < 1 {
		return nil, apperr.Pagination("wrong pagination params")
	}
	if strings.TrimSpace(text) == "" {
		return []ItemDTO{}, nil
	}

	items, err := s.items.SearchByText(ctx, text, from, size)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(it)
	}
	return dtos, nil
}

// AddComment posts a comment on an item. The author must have an APPROVED
// booking of the item that already ended; otherwise commenting is not
// available to them.
func (s *ItemService) AddComment(ctx context.Context, userID, itemID int64, req CreateCommentRequest) (*CommentDTO, error) {
	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if _, err := s.bookings.LastFinishedByBooker(ctx, itemID, userID, now); err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotAvailable("booking not found")
		}
		return nil, err
	}

	c := item.NewComment(itemID, userID, req.Text, now)
	if err := s.comments.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("comment created", zap.Int64("item_id", itemID), zap.Int64("author_id", userID))
	return &CommentDTO{
		ID:         c.ID(),
		Text:       c.Text(),
		AuthorName: author.Name(),
		Created:    c.Created(),
	}, nil
}

func (s *ItemService) commentDTOs(ctx context.Context, authors *userLoader, comments []*item.Comment) ([]CommentDTO, error) {
	if len(comments) == 0 {
		return nil, nil
	}
	dtos := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		author, err := authors.load(ctx, c.AuthorID())
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, CommentDTO{
			ID:         c.ID(),
			Text:       c.Text(),
			AuthorName: author.Name(),
			Created:    c.Created(),
		})
	}
	return dtos, nil
}

func filterComments(comments []*item.Comment, itemID int64) []*item.Comment {
	var out []*item.Comment
	for _, c := range comments {
		if c.ItemID() == itemID {
			out = append(out, c)
		}
	}
	return out
}

// firstForItem picks the first booking for the item out of a pre-sorted
// slice, preserving the repository ordering.
func firstForItem(bookings []*bookingDomain.Booking, itemID int64) *BookingRefDTO {
	for _, bk := range bookings {
		if bk.ItemID() == itemID {
			return &BookingRefDTO{ID: bk.ID(), BookerID: bk.BookerID()}
		}
	}
	return nil
}
