package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCloudEvent(t *testing.T) {
	type payload struct {
		ID int64 `json:"id"`
	}

	evt, err := NewCloudEvent("service-sharing", "sharing.booking.created", payload{ID: 42})
	require.NoError(t, err)

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, "service-sharing", evt.Source)
	assert.Equal(t, "sharing.booking.created", evt.Type)
	assert.Equal(t, "1.0", evt.SpecVersion)
	assert.False(t, evt.Time.IsZero())

	var data payload
	require.NoError(t, evt.ParseData(&data))
	assert.Equal(t, int64(42), data.ID)
}

func TestNewCloudEventRejectsUnmarshalable(t *testing.T) {
	_, err := NewCloudEvent("service-sharing", "sharing.booking.created", make(chan int))
	assert.Error(t, err)
}
