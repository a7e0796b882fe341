// Package item holds the listed-item aggregate and its comments.
package item

import "time"

// Item is something a user has listed for sharing. Availability is a
// point-in-time flag checked when a booking is created, not an ongoing
// constraint.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

// NewItem creates an item pending persistence. requestID links the item to
// the item request it answers, if any.
func NewItem(ownerID int64, name, description string, available bool, requestID *int64) *Item {
	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}
}

// Reconstruct rebuilds an Item from persistence data.
func Reconstruct(id int64, name, description string, available bool, ownerID int64, requestID *int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}
}

// ID returns the item's identifier, zero until persisted.
func (i *Item) ID() int64 { return i.id }

// SetID assigns the store-generated identifier after the initial save.
func (i *Item) SetID(id int64) { i.id = id }

// Name returns the item name.
func (i *Item) Name() string { return i.name }

// Description returns the item description.
func (i *Item) Description() string { return i.description }

// Available reports whether the item can currently be booked.
func (i *Item) Available() bool { return i.available }

// OwnerID returns the owning user's identifier.
func (i *Item) OwnerID() int64 { return i.ownerID }

// RequestID returns the answered item request's identifier, or nil.
func (i *Item) RequestID() *int64 { return i.requestID }

// IsOwnedBy reports whether the given user owns this item.
func (i *Item) IsOwnedBy(userID int64) bool { return i.ownerID == userID }

// Patch applies a partial update; nil fields are left untouched.
func (i *Item) Patch(name, description *string, available *bool) {
	if name != nil {
		i.name = *name
	}
	if description != nil {
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
}

// Comment is feedback left by a user who finished a booking of the item.
type Comment struct {
	id       int64
	text     string
	itemID   int64
	authorID int64
	created  time.Time
}

// NewComment creates a comment pending persistence.
func NewComment(itemID, authorID int64, text string, created time.Time) *Comment {
	return &Comment{text: text, itemID: itemID, authorID: authorID, created: created}
}

// ReconstructComment rebuilds a Comment from persistence data.
func ReconstructComment(id int64, text string, itemID, authorID int64, created time.Time) *Comment {
	return &Comment{id: id, text: text, itemID: itemID, authorID: authorID, created: created}
}

// ID returns the comment's identifier, zero until persisted.
func (c *Comment) ID() int64 { return c.id }

// SetID assigns the store-generated identifier after the initial save.
func (c *Comment) SetID(id int64) { c.id = id }

// Text returns the comment body.
func (c *Comment) Text() string { return c.text }

// ItemID returns the commented item's identifier.
func (c *Comment) ItemID() int64 { return c.itemID }

// AuthorID returns the commenting user's identifier.
func (c *Comment) AuthorID() int64 { return c.authorID }

// Created returns the creation instant.
func (c *Comment) Created() time.Time { return c.created }
