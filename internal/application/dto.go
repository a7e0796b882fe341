package application

import (
	"context"
	"time"

	"github.com/shareit-platform/service-sharing/internal/domain/item"
	"github.com/shareit-platform/service-sharing/internal/domain/user"
)

// UserDTO is the API representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CommentDTO is the API representation of an item comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// BookingRefDTO is the short booking reference embedded in an owner's item
// view (last/next booking).
type BookingRefDTO struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// ItemDTO is the API representation of an item. Comments and last/next
// booking are populated only on the item views that carry them.
type ItemDTO struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	RequestID   *int64         `json:"requestId,omitempty"`
	Comments    []CommentDTO   `json:"comments,omitempty"`
	LastBooking *BookingRefDTO `json:"lastBooking,omitempty"`
	NextBooking *BookingRefDTO `json:"nextBooking,omitempty"`
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}

func toItemDTO(i *item.Item) ItemDTO {
	return ItemDTO{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		RequestID:   i.RequestID(),
	}
}

// userLoader caches user lookups within a single listing projection.
type userLoader struct {
	repo  user.Repository
	cache map[int64]*user.User
}

func newUserLoader(repo user.Repository) *userLoader {
	return &userLoader{repo: repo, cache: make(map[int64]*user.User)}
}

func (l *userLoader) load(ctx context.Context, id int64) (*user.User, error) {
	if u, ok := l.cache[id]; ok {
		return u, nil
	}
	u, err := l.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l.cache[id] = u
	return u, nil
}

// itemLoader caches item lookups within a single listing projection.
type itemLoader struct {
	repo  item.Repository
	cache map[int64]*item.Item
}

func newItemLoader(repo item.Repository) *itemLoader {
	return &itemLoader{repo: repo, cache: make(map[int64]*item.Item)}
}

func (l *itemLoader) load(ctx context.Context, id int64) (*item.Item, error) {
	if i, ok := l.cache[id]; ok {
		return i, nil
	}
	i, err := l.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l.cache[id] = i
	return i, nil
}
