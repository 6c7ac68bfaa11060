package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"greenwave-ticketing/model"
)

func TestIssueExhibitionPass(t *testing.T) {
	sys := NewSystem()
	sys.SeedDefaultCatalog()
	attendee := model.NewAttendee("a@x.com", "Amira Khan", "secret")

	ticket := sys.IssueExhibitionPass(attendee,
		[]string{"Climate Tech Innovations", "Policy & Community Action"},
		[]string{"Solar Futures", "Local Policy Labs"})

	assert.Equal(t, "GW-EXH-0001", ticket.Id)
	assert.Equal(t, 100.0, ticket.Cost)
	assert.Equal(t, "Dual Exhibition Pass", ticket.Category)
	assert.Equal(t, []string{"Solar Futures", "Local Policy Labs"}, ticket.AllowedWorkshops,
		"caller-supplied workshops replace the constructor's derivation")
	assert.Equal(t, time.Now().Format("2006-01-02"), ticket.PurchaseDate)

	assert.Equal(t, []*model.Ticket{ticket}, attendee.OwnedTickets)
	assert.Equal(t, []model.SaleEvent{
		{Date: ticket.PurchaseDate, Category: "Dual Exhibition Pass", Amount: 100.0},
	}, sys.Sales)
}

func TestIssueAllAccessPass(t *testing.T) {
	sys := NewSystem()
	sys.SeedDefaultCatalog()
	attendee := model.NewAttendee("a@x.com", "Amira Khan", "secret")

	ticket := sys.IssueAllAccessPass(attendee)

	assert.Equal(t, "GW-ALL-0001", ticket.Id)
	assert.Equal(t, 500.0, ticket.Cost)
	assert.Equal(t, 9, len(ticket.AllowedWorkshops), "covers every seeded workshop")
	assert.Equal(t, []*model.Ticket{ticket}, attendee.OwnedTickets)
	assert.Equal(t, 1, len(sys.Sales))
	assert.Equal(t, 500.0, sys.Sales[0].Amount)
}

func TestAllAccessPassNotLiveUpdated(t *testing.T) {
	sys := NewSystem()
	sys.SeedDefaultCatalog()
	attendee := model.NewAttendee("a@x.com", "Amira Khan", "secret")

	ticket := sys.IssueAllAccessPass(attendee)
	sys.Exhibitions[0].InsertWorkshop(model.NewWorkshop("Late Addition", "15:00-16:00", 30))

	assert.False(t, ticket.CanAccessWorkshop("Late Addition"),
		"workshops added after issuance are not granted")
}

func TestTicketIDsSharedAcrossKinds(t *testing.T) {
	sys := NewSystem()
	sys.SeedDefaultCatalog()
	attendee := model.NewAttendee("a@x.com", "Amira Khan", "secret")

	first := sys.IssueExhibitionPass(attendee, []string{"Climate Tech Innovations"}, nil)
	second := sys.IssueAllAccessPass(attendee)
	third := sys.IssueExhibitionPass(attendee, []string{"Sustainable Lifestyles"}, nil)

	assert.Equal(t, "GW-EXH-0001", first.Id)
	assert.Equal(t, "GW-ALL-0002", second.Id)
	assert.Equal(t, "GW-EXH-0003", third.Id)
}

func TestTicketIDWidthBeyondFourDigits(t *testing.T) {
	sys := NewSystem()
	sales := make([]model.SaleEvent, 9999)
	for i := range sales {
		sales[i] = model.SaleEvent{Date: "2026-04-15", Category: "Upgrade", Amount: 50.0}
	}
	sys.Restore(nil, nil, sales)

	ticket := sys.IssueAllAccessPass(model.NewAttendee("a@x.com", "Amira Khan", "secret"))
	assert.Equal(t, "GW-ALL-10000", ticket.Id, "field widens past 9999")
}

func TestPerformTicketUpgrade(t *testing.T) {
	sys := NewSystem()
	sys.SeedDefaultCatalog()
	attendee := model.NewAttendee("a@x.com", "Amira Khan", "secret")
	ticket := sys.IssueExhibitionPass(attendee,
		[]string{"Climate Tech Innovations"},
		[]string{"Solar Futures", "Smart Grids", "Green Mobility"})

	ok, message := sys.PerformTicketUpgrade(attendee, ticket, "Sustainable Lifestyles")

	assert.True(t, ok)
	assert.Equal(t, "Upgrade successful.", message)
	assert.Equal(t, []string{"Climate Tech Innovations", "Sustainable Lifestyles"}, ticket.Exhibitions)
	assert.True(t, ticket.CanAccessWorkshop("Zero Waste Homes"))
	assert.Equal(t, 100.0, ticket.Cost)
	assert.Equal(t, "Single Exhibition Pass", ticket.Category, "label stays frozen after upgrade")

	assert.Equal(t, 2, len(sys.Sales))
	upgradeSale := sys.Sales[1]
	assert.Equal(t, "Upgrade", upgradeSale.Category)
	assert.Equal(t, 50.0, upgradeSale.Amount)
}

func TestUpgradeAllAccessRefused(t *testing.T) {
	sys := NewSystem()
	sys.SeedDefaultCatalog()
	attendee := model.NewAttendee("a@x.com", "Amira Khan", "secret")
	ticket := sys.IssueAllAccessPass(attendee)

	for _, target := range []string{"Climate Tech Innovations", "Nonexistent"} {
		ok, message := sys.PerformTicketUpgrade(attendee, ticket, target)
		assert.False(t, ok, target)
		assert.Equal(t, "Already Full Access.", message)
	}
	assert.Equal(t, 1, len(sys.Sales), "refused upgrades never append sale events")
}

func TestUpgradeUnknownExhibition(t *testing.T) {
	sys := NewSystem()
	sys.SeedDefaultCatalog()
	attendee := model.NewAttendee("a@x.com", "Amira Khan", "secret")
	ticket := sys.IssueExhibitionPass(attendee, []string{"Climate Tech Innovations"}, nil)

	ok, message := sys.PerformTicketUpgrade(attendee, ticket, "Nonexistent")

	assert.False(t, ok)
	assert.Equal(t, "Exhibition not found.", message)
	assert.Equal(t, 1, len(sys.Sales))
}

func TestTicketIDsStrictlyIncreasing(t *testing.T) {
	sys := NewSystem()
	sys.SeedDefaultCatalog()
	attendee := model.NewAttendee("a@x.com", "Amira Khan", "secret")

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		ticket := sys.IssueExhibitionPass(attendee, []string{"Climate Tech Innovations"}, nil)
		assert.False(t, seen[ticket.Id], "ids must be unique across issuance calls")
		seen[ticket.Id] = true
		assert.Equal(t, fmt.Sprintf("GW-EXH-%04d", i+1), ticket.Id)
	}
}
