package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shareit-platform/service-sharing/internal/apperr"
	bookingDomain "github.com/shareit-platform/service-sharing/internal/domain/booking"
	"github.com/shareit-platform/service-sharing/internal/domain/item"
	"github.com/shareit-platform/service-sharing/internal/domain/request"
	"github.com/shareit-platform/service-sharing/internal/domain/user"
	"github.com/shareit-platform/service-sharing/internal/events"
)

// memUserRepo is an in-memory user.Repository for service tests.
type memUserRepo struct {
	users  map[int64]*user.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*user.User)}
}

func (r *memUserRepo) Save(_ context.Context, u *user.User) error {
	r.nextID++
	u.SetID(r.nextID)
	r.users[u.ID()] = user.Reconstruct(u.ID(), u.Name(), u.Email())
	return nil
}

func (r *memUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID()]; !ok {
		return apperr.NotFound("user id %d not found", u.ID())
	}
	r.users[u.ID()] = user.Reconstruct(u.ID(), u.Name(), u.Email())
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("user id %d not found", id)
	}
	return user.Reconstruct(u.ID(), u.Name(), u.Email()), nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]*user.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*user.User, len(ids))
	for i, id := range ids {
		out[i] = r.users[id]
	}
	return out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperr.NotFound("user id %d not found", id)
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *memUserRepo) EmailTaken(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

// memItemRepo is an in-memory item.Repository for service tests.
type memItemRepo struct {
	items  map[int64]*item.Item
	nextID int64
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[int64]*item.Item)}
}

func cloneItem(it *item.Item) *item.Item {
	return item.Reconstruct(it.ID(), it.Name(), it.Description(), it.Available(), it.OwnerID(), it.RequestID())
}

func (r *memItemRepo) Save(_ context.Context, it *item.Item) error {
	r.nextID++
	it.SetID(r.nextID)
	r.items[it.ID()] = cloneItem(it)
	return nil
}

func (r *memItemRepo) Update(_ context.Context, it *item.Item) error {
	if _, ok := r.items[it.ID()]; !ok {
		return apperr.NotFound("item id %d not found", it.ID())
	}
	r.items[it.ID()] = cloneItem(it)
	return nil
}

func (r *memItemRepo) FindByID(_ context.Context, id int64) (*item.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, apperr.NotFound("item id %d not found", id)
	}
	return cloneItem(it), nil
}

func (r *memItemRepo) sorted() []*item.Item {
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*item.Item, len(ids))
	for i, id := range ids {
		out[i] = r.items[id]
	}
	return out
}

func page[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func (r *memItemRepo) ListByOwner(_ context.Context, ownerID int64, offset, limit int) ([]*item.Item, error) {
	var out []*item.Item
	for _, it := range r.sorted() {
		if it.OwnerID() == ownerID {
			out = append(out, cloneItem(it))
		}
	}
	return page(out, offset, limit), nil
}

func (r *memItemRepo) SearchByText(_ context.Context, text string, offset, limit int) ([]*item.Item, error) {
	needle := strings.ToLower(text)
	var out []*item.Item
	for _, it := range r.sorted() {
		if !it.Available() {
			continue
		}
		if strings.Contains(strings.ToLower(it.Name()), needle) ||
			strings.Contains(strings.ToLower(it.Description()), needle) {
			out = append(out, cloneItem(it))
		}
	}
	return page(out, offset, limit), nil
}

func (r *memItemRepo) ListByRequestIDs(_ context.Context, requestIDs []int64) ([]*item.Item, error) {
	wanted := make(map[int64]struct{}, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = struct{}{}
	}
	var out []*item.Item
	for _, it := range r.sorted() {
		if it.RequestID() == nil {
			continue
		}
		if _, ok := wanted[*it.RequestID()]; ok {
			out = append(out, cloneItem(it))
		}
	}
	return out, nil
}

// memBookingRepo is an in-memory bookingDomain.Repository. Owner-scoped
// queries resolve ownership through the item repo it is built with.
type memBookingRepo struct {
	bookings map[int64]*bookingDomain.Booking
	items    *memItemRepo
	nextID   int64
}

func newMemBookingRepo(items *memItemRepo) *memBookingRepo {
	return &memBookingRepo{bookings: make(map[int64]*bookingDomain.Booking), items: items}
}

func cloneBooking(bk *bookingDomain.Booking) *bookingDomain.Booking {
	return bookingDomain.Reconstruct(bk.ID(), bk.Start(), bk.End(), bk.ItemID(), bk.BookerID(), bk.Status())
}

func (r *memBookingRepo) Save(_ context.Context, bk *bookingDomain.Booking) error {
	r.nextID++
	bk.SetID(r.nextID)
	r.bookings[bk.ID()] = cloneBooking(bk)
	return nil
}

func (r *memBookingRepo) Update(_ context.Context, bk *bookingDomain.Booking) error {
	if _, ok := r.bookings[bk.ID()]; !ok {
		return apperr.NotFound("booking id %d not found", bk.ID())
	}
	r.bookings[bk.ID()] = cloneBooking(bk)
	return nil
}

func (r *memBookingRepo) FindByID(_ context.Context, id int64) (*bookingDomain.Booking, error) {
	bk, ok := r.bookings[id]
	if !ok {
		return nil, apperr.NotFound("booking id %d not found", id)
	}
	return cloneBooking(bk), nil
}

func (r *memBookingRepo) ownedBy(ownerID int64, bk *bookingDomain.Booking) bool {
	it, ok := r.items.items[bk.ItemID()]
	return ok && it.OwnerID() == ownerID
}

func matchFilter(bk *bookingDomain.Booking, f bookingDomain.Filter) bool {
	if f.Status != nil && bk.Status() != *f.Status {
		return false
	}
	if f.StartAfter != nil && !bk.Start().After(*f.StartAfter) {
		return false
	}
	if f.StartBefore != nil && !bk.Start().Before(*f.StartBefore) {
		return false
	}
	if f.EndBefore != nil && !bk.End().Before(*f.EndBefore) {
		return false
	}
	if f.EndAfter != nil && !bk.End().After(*f.EndAfter) {
		return false
	}
	return true
}

func (r *memBookingRepo) list(match func(*bookingDomain.Booking) bool, f bookingDomain.Filter) []*bookingDomain.Booking {
	var out []*bookingDomain.Booking
	for _, bk := range r.bookings {
		if match(bk) && matchFilter(bk, f) {
			out = append(out, cloneBooking(bk))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start().After(out[j].Start()) })
	return page(out, f.Offset, f.Limit)
}

func (r *memBookingRepo) ListByBooker(_ context.Context, bookerID int64, f bookingDomain.Filter) ([]*bookingDomain.Booking, error) {
	return r.list(func(bk *bookingDomain.Booking) bool { return bk.BookerID() == bookerID }, f), nil
}

func (r *memBookingRepo) ListByOwner(_ context.Context, ownerID int64, f bookingDomain.Filter) ([]*bookingDomain.Booking, error) {
	return r.list(func(bk *bookingDomain.Booking) bool { return r.ownedBy(ownerID, bk) }, f), nil
}

func (r *memBookingRepo) LastFinishedByBooker(_ context.Context, itemID, bookerID int64, before time.Time) (*bookingDomain.Booking, error) {
	var best *bookingDomain.Booking
	for _, bk := range r.bookings {
		if bk.ItemID() != itemID || bk.BookerID() != bookerID {
			continue
		}
		if bk.Status() != bookingDomain.StatusApproved || !bk.End().Before(before) {
			continue
		}
		if best == nil || bk.End().After(best.End()) {
			best = bk
		}
	}
	if best == nil {
		return nil, apperr.NotFound("booking not found")
	}
	return cloneBooking(best), nil
}

func (r *memBookingRepo) ApprovedByOwnerStartedBefore(_ context.Context, ownerID int64, at time.Time) ([]*bookingDomain.Booking, error) {
	st := bookingDomain.StatusApproved
	return r.list(func(bk *bookingDomain.Booking) bool { return r.ownedBy(ownerID, bk) },
		bookingDomain.Filter{Status: &st, StartBefore: &at}), nil
}

func (r *memBookingRepo) ApprovedByOwnerStartingAfter(_ context.Context, ownerID int64, at time.Time) ([]*bookingDomain.Booking, error) {
	st := bookingDomain.StatusApproved
	out := r.list(func(bk *bookingDomain.Booking) bool { return r.ownedBy(ownerID, bk) },
		bookingDomain.Filter{Status: &st, StartAfter: &at})
	// list sorts start DESC; this query contract is start ASC.
	sort.Slice(out, func(i, j int) bool { return out[i].Start().Before(out[j].Start()) })
	return out, nil
}

// memCommentRepo is an in-memory item.CommentRepository.
type memCommentRepo struct {
	comments []*item.Comment
	items    *memItemRepo
	nextID   int64
}

func newMemCommentRepo(items *memItemRepo) *memCommentRepo {
	return &memCommentRepo{items: items}
}

func (r *memCommentRepo) Save(_ context.Context, c *item.Comment) error {
	r.nextID++
	c.SetID(r.nextID)
	r.comments = append(r.comments, item.ReconstructComment(c.ID(), c.Text(), c.ItemID(), c.AuthorID(), c.Created()))
	return nil
}

func (r *memCommentRepo) ListByItem(_ context.Context, itemID int64) ([]*item.Comment, error) {
	var out []*item.Comment
	for _, c := range r.comments {
		if c.ItemID() == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCommentRepo) ListByOwnerItems(_ context.Context, ownerID int64) ([]*item.Comment, error) {
	var out []*item.Comment
	for _, c := range r.comments {
		it, ok := r.items.items[c.ItemID()]
		if ok && it.OwnerID() == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

// memRequestRepo is an in-memory request.Repository.
type memRequestRepo struct {
	requests map[int64]*request.ItemRequest
	nextID   int64
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: make(map[int64]*request.ItemRequest)}
}

func (r *memRequestRepo) Save(_ context.Context, req *request.ItemRequest) error {
	r.nextID++
	req.SetID(r.nextID)
	r.requests[req.ID()] = request.Reconstruct(req.ID(), req.Description(), req.RequesterID(), req.Created())
	return nil
}

func (r *memRequestRepo) FindByID(_ context.Context, id int64) (*request.ItemRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, apperr.NotFound("request id %d not found", id)
	}
	return req, nil
}

func (r *memRequestRepo) newestFirst(keep func(*request.ItemRequest) bool) []*request.ItemRequest {
	var out []*request.ItemRequest
	for _, req := range r.requests {
		if keep(req) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created().After(out[j].Created()) })
	return out
}

func (r *memRequestRepo) ListByRequester(_ context.Context, requesterID int64) ([]*request.ItemRequest, error) {
	return r.newestFirst(func(req *request.ItemRequest) bool { return req.RequesterID() == requesterID }), nil
}

func (r *memRequestRepo) ListByOthers(_ context.Context, requesterID int64, offset, limit int) ([]*request.ItemRequest, error) {
	out := r.newestFirst(func(req *request.ItemRequest) bool { return req.RequesterID() != requesterID })
	return page(out, offset, limit), nil
}

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	created []events.BookingCreatedEvent
	decided []events.BookingDecidedEvent
}

func (p *capturingPublisher) BookingCreated(_ context.Context, evt events.BookingCreatedEvent) {
	p.created = append(p.created, evt)
}

func (p *capturingPublisher) BookingDecided(_ context.Context, evt events.BookingDecidedEvent) {
	p.decided = append(p.decided, evt)
}
