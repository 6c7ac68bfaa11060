package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwave-ticketing/model"
)

func sampleSnapshot() Snapshot {
	ws := model.NewWorkshop("Solar Futures", "10:00-11:00", 30)
	ws.Register("a@x.com")
	exhibition := model.NewExhibition("EXH1", "Climate Tech Innovations")
	exhibition.InsertWorkshop(ws)

	ticket := model.NewExhibitionPass("GW-EXH-0001", []string{"Climate Tech Innovations"})
	ticket.AllowedWorkshops = []string{"Solar Futures"}
	ticket.PurchaseDate = "2026-04-15"
	ticket.AddBooking("Solar Futures")

	attendee := model.NewAttendee("a@x.com", "Amira Khan", "secret")
	attendee.AssignTicket(ticket)
	attendee.AddBooking("Solar Futures")

	return Snapshot{
		Attendees:   []*model.Attendee{attendee},
		Exhibitions: []*model.Exhibition{exhibition},
		Sales: []model.SaleEvent{
			{Date: "2026-04-15", Category: "Single Exhibition Pass", Amount: 50.0},
		},
	}
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	saved := sampleSnapshot()

	require.NoError(t, store.Save(saved))
	loaded := store.Load()

	assert.Equal(t, saved.Attendees, loaded.Attendees)
	assert.Equal(t, saved.Exhibitions, loaded.Exhibitions)
	assert.Equal(t, saved.Sales, loaded.Sales)
}

func TestLocalStoreFirstRun(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	loaded := store.Load()

	assert.Empty(t, loaded.Attendees)
	assert.Empty(t, loaded.Exhibitions)
	assert.Empty(t, loaded.Sales)
	assert.NotNil(t, loaded.Attendees, "collections default to empty, not nil")
}

func TestLocalStoreCorruptBlobDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)
	require.NoError(t, store.Save(sampleSnapshot()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "attendees.json"), []byte("{not json"), 0644))
	loaded := store.Load()

	assert.Empty(t, loaded.Attendees, "corrupt blob reads as empty")
	assert.Equal(t, 1, len(loaded.Exhibitions), "other blobs load independently")
	assert.Equal(t, 1, len(loaded.Sales))
}

func TestLocalStoreSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)
	require.NoError(t, store.Save(sampleSnapshot()))

	empty := Snapshot{
		Attendees:   []*model.Attendee{},
		Exhibitions: []*model.Exhibition{},
		Sales:       []model.SaleEvent{},
	}
	require.NoError(t, store.Save(empty))

	loaded := store.Load()
	assert.Empty(t, loaded.Attendees)
	assert.Empty(t, loaded.Exhibitions)
	assert.Empty(t, loaded.Sales)
}
