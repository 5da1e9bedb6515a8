package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_EndTime(t *testing.T) {
	start := time.Date(2030, 1, 15, 10, 0, 0, 0, time.FixedZone("+02", 2*60*60))
	b := &Booking{StartTime: start, DurationMinutes: 90}

	end := b.EndTime()

	assert.True(t, end.Equal(start.Add(90*time.Minute)))
	assert.Equal(t, start.Location(), end.Location())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus(" Confirmed ")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("archived")
	assert.Error(t, err)
}
