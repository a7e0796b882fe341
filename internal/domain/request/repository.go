package request

import "context"

// Repository defines the persistence contract for item requests.
type Repository interface {
	Save(ctx context.Context, r *ItemRequest) error
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)

	// ListByRequester retrieves a user's own requests, newest first.
	ListByRequester(ctx context.Context, requesterID int64) ([]*ItemRequest, error)

	// ListByOthers retrieves requests made by anyone except the user,
	// newest first, with pagination.
	ListByOthers(ctx context.Context, requesterID int64, offset, limit int) ([]*ItemRequest, error)
}
