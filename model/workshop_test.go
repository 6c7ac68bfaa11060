package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkshopRegister(t *testing.T) {
	ws := NewWorkshop("Solar Futures", "10:00-11:00", 2)

	assert.True(t, ws.Register("a@x.com"))
	assert.False(t, ws.Register("a@x.com"), "duplicate registration must fail")
	assert.Equal(t, 1, len(ws.RegisteredAttendees))

	assert.True(t, ws.Register("b@x.com"))
	assert.True(t, ws.IsFull())
	assert.Equal(t, 0, ws.AvailableSpots())

	assert.False(t, ws.Register("c@x.com"), "registration beyond capacity must fail")
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, ws.RegisteredAttendees)
}

func TestWorkshopCapacityInvariant(t *testing.T) {
	ws := NewWorkshop("Smart Grids", "11:30-12:30", 5)

	for i := 0; i < 20; i++ {
		ws.Register(fmt.Sprintf("attendee%d@x.com", i))
		assert.LessOrEqual(t, len(ws.RegisteredAttendees), ws.MaxCapacity)
	}
	assert.Equal(t, 5, len(ws.RegisteredAttendees))
}

func TestWorkshopUnregister(t *testing.T) {
	ws := NewWorkshop("Green Mobility", "13:00-14:00", 3)
	ws.Register("a@x.com")
	ws.Register("b@x.com")

	assert.True(t, ws.Unregister("a@x.com"))
	assert.False(t, ws.Unregister("a@x.com"), "second unregister must report absence")
	assert.Equal(t, []string{"b@x.com"}, ws.RegisteredAttendees)
	assert.Equal(t, 2, ws.AvailableSpots())
}
