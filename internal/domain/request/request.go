// Package request holds the item-request aggregate: a wish for an item that
// is not listed yet, which other users may answer by listing one.
package request

import "time"

// ItemRequest is a user's description of an item they want to borrow.
type ItemRequest struct {
	id          int64
	description string
	requesterID int64
	created     time.Time
}

// NewItemRequest creates a request pending persistence.
func NewItemRequest(requesterID int64, description string, created time.Time) *ItemRequest {
	return &ItemRequest{description: description, requesterID: requesterID, created: created}
}

// Reconstruct rebuilds an ItemRequest from persistence data.
func Reconstruct(id int64, description string, requesterID int64, created time.Time) *ItemRequest {
	return &ItemRequest{id: id, description: description, requesterID: requesterID, created: created}
}

// ID returns the request's identifier, zero until persisted.
func (r *ItemRequest) ID() int64 { return r.id }

// SetID assigns the store-generated identifier after the initial save.
func (r *ItemRequest) SetID(id int64) { r.id = id }

// Description returns the requested-item description.
func (r *ItemRequest) Description() string { return r.description }

// RequesterID returns the requesting user's identifier.
func (r *ItemRequest) RequesterID() int64 { return r.requesterID }

// Created returns the creation instant.
func (r *ItemRequest) Created() time.Time { return r.created }
