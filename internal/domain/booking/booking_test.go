package booking

import (
	"testing"
	"time"

	"github.com/shareit-platform/service-sharing/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("starts in waiting", func(t *testing.T) {
		bk, err := NewBooking(1, 2, start, start.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, StatusWaiting, bk.Status())
		assert.Equal(t, int64(1), bk.ItemID())
		assert.Equal(t, int64(2), bk.BookerID())
	})

	t.Run("rejects start equal to end", func(t *testing.T) {
		_, err := NewBooking(1, 2, start, start)
		require.Error(t, err)
		assert.Equal(t, apperr.KindInvalidInterval, apperr.KindOf(err))
	})

	t.Run("rejects start after end", func(t *testing.T) {
		_, err := NewBooking(1, 2, start.Add(time.Hour), start)
		require.Error(t, err)
		assert.Equal(t, apperr.KindInvalidInterval, apperr.KindOf(err))
	})
}

func TestBookingDecisions(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("approve from waiting", func(t *testing.T) {
		bk, err := NewBooking(1, 2, start, start.Add(time.Hour))
		require.NoError(t, err)

		require.NoError(t, bk.Approve())
		assert.Equal(t, StatusApproved, bk.Status())
	})

	t.Run("reject from waiting", func(t *testing.T) {
		bk, err := NewBooking(1, 2, start, start.Add(time.Hour))
		require.NoError(t, err)

		require.NoError(t, bk.Reject())
		assert.Equal(t, StatusRejected, bk.Status())
	})

	t.Run("approved is terminal", func(t *testing.T) {
		bk, err := NewBooking(1, 2, start, start.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, bk.Approve())

		assert.Equal(t, apperr.KindStatusConflict, apperr.KindOf(bk.Approve()))
		assert.Equal(t, apperr.KindStatusConflict, apperr.KindOf(bk.Reject()))
		assert.Equal(t, StatusApproved, bk.Status())
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		bk, err := NewBooking(1, 2, start, start.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, bk.Reject())

		assert.Equal(t, apperr.KindStatusConflict, apperr.KindOf(bk.Approve()))
		assert.Equal(t, StatusRejected, bk.Status())
	})
}
