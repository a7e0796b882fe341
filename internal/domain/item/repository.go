package item

import "context"

// Repository defines the persistence contract for items.
type Repository interface {
	Save(ctx context.Context, i *Item) error
	Update(ctx context.Context, i *Item) error
	FindByID(ctx context.Context, id int64) (*Item, error)

	// ListByOwner retrieves a user's items ordered by id ascending.
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*Item, error)

	// SearchByText finds available items whose name or description contains
	// the text, case-insensitively, ordered by id ascending.
	SearchByText(ctx context.Context, text string, offset, limit int) ([]*Item, error)

	// ListByRequestIDs retrieves items answering any of the given requests.
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error)
}

// CommentRepository defines the persistence contract for item comments.
type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error

	// ListByItem retrieves all comments on an item.
	ListByItem(ctx context.Context, itemID int64) ([]*Comment, error)

	// ListByOwnerItems retrieves comments on every item owned by the user.
	ListByOwnerItems(ctx context.Context, ownerID int64) ([]*Comment, error)
}
