package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shareit-platform/service-sharing/internal/apperr"
	itemDomain "github.com/shareit-platform/service-sharing/internal/domain/item"
	"gorm.io/gorm"
)

// ItemModel is the GORM model for the items table.
type ItemModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null;size:255"`
	Description string `gorm:"not null;size:1000"`
	Available   bool   `gorm:"not null"`
	OwnerID     int64  `gorm:"not null;index"`
	RequestID   *int64 `gorm:"index"`
}

// TableName returns the table name for the GORM model.
func (ItemModel) TableName() string {
	return "items"
}

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Text     string    `gorm:"not null;size:2000"`
	ItemID   int64     `gorm:"not null;index"`
	AuthorID int64     `gorm:"not null"`
	Created  time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (CommentModel) TableName() string {
	return "comments"
}

// GormItemRepository is the GORM-based implementation of the item
// repository contract.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Save persists a new item and backfills the generated id.
func (r *GormItemRepository) Save(ctx context.Context, it *itemDomain.Item) error {
	model := toItemModel(it)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	it.SetID(model.ID)
	return nil
}

// Update persists changed item fields, including availability toggles.
func (r *GormItemRepository) Update(ctx context.Context, it *itemDomain.Item) error {
	result := r.db.WithContext(ctx).
		Model(&ItemModel{}).
		Where("id = ?", it.ID()).
		Updates(map[string]interface{}{
			"name":        it.Name(),
			"description": it.Description(),
			"available":   it.Available(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("item id %d not found", it.ID())
	}
	return nil
}

// FindByID retrieves an item by id.
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*itemDomain.Item, error) {
	var model ItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item id %d not found", id)
		}
		return nil, fmt.Errorf("failed to find item by id: %w", err)
	}
	return toDomainItem(&model), nil
}

// ListByOwner retrieves a user's items, id ascending, paged.
func (r *GormItemRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*itemDomain.Item, error) {
	var models []ItemModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return toDomainItems(models), nil
}

// SearchByText finds available items whose name or description contains the
// text, case-insensitive.
func (r *GormItemRepository) SearchByText(ctx context.Context, text string, offset, limit int) ([]*itemDomain.Item, error) {
	pattern := "%" + text + "%"
	var models []ItemModel
	err := r.db.WithContext(ctx).
		Where("available = TRUE AND (name ILIKE ? OR description ILIKE ?)", pattern, pattern).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return toDomainItems(models), nil
}

// ListByRequestIDs retrieves the items answering any of the given requests.
func (r *GormItemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*itemDomain.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	var models []ItemModel
	err := r.db.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items by request: %w", err)
	}
	return toDomainItems(models), nil
}

// GormCommentRepository is the GORM-based implementation of the comment
// repository contract.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Save persists a new comment and backfills the generated id.
func (r *GormCommentRepository) Save(ctx context.Context, c *itemDomain.Comment) error {
	model := CommentModel{
		Text:     c.Text(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Created:  c.Created(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

// ListByItem retrieves an item's comments, oldest first.
func (r *GormCommentRepository) ListByItem(ctx context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	var models []CommentModel
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return toDomainComments(models), nil
}

// ListByOwnerItems retrieves all comments left on a user's items.
func (r *GormCommentRepository) ListByOwnerItems(ctx context.Context, ownerID int64) ([]*itemDomain.Comment, error) {
	var models []CommentModel
	err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = comments.item_id").
		Where("items.owner_id = ?", ownerID).
		Order("comments.created ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by owner: %w", err)
	}
	return toDomainComments(models), nil
}

func toItemModel(it *itemDomain.Item) ItemModel {
	return ItemModel{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		OwnerID:     it.OwnerID(),
		RequestID:   it.RequestID(),
	}
}

func toDomainItems(models []ItemModel) []*itemDomain.Item {
	items := make([]*itemDomain.Item, len(models))
	for i := range models {
		items[i] = toDomainItem(&models[i])
	}
	return items
}

func toDomainItem(m *ItemModel) *itemDomain.Item {
	return itemDomain.Reconstruct(m.ID, m.Name, m.Description, m.Available, m.OwnerID, m.RequestID)
}

func toDomainComments(models []CommentModel) []*itemDomain.Comment {
	comments := make([]*itemDomain.Comment, len(models))
	for i := range models {
		comments[i] = itemDomain.ReconstructComment(
			models[i].ID,
			models[i].Text,
			models[i].ItemID,
			models[i].AuthorID,
			models[i].Created,
		)
	}
	return comments
}
