package model

import "fmt"

type TicketKind string

const (
	TicketKindExhibition TicketKind = "exhibition"
	TicketKindAllAccess  TicketKind = "all_access"
)

const (
	CategoryAllAccess = "All-Access Pass"

	ExhibitionPassPrice = 50.0
	AllAccessPassPrice  = 500.0
)

// Ticket is a purchased pass. The two variants share one struct and are
// told apart by Kind; Exhibitions is only populated for exhibition passes.
type Ticket struct {
	Id               string     `json:"id" bson:"_id"`
	Kind             TicketKind `json:"kind" bson:"kind"`
	Cost             float64    `json:"cost" bson:"cost"`
	Category         string     `json:"category" bson:"category"`
	Exhibitions      []string   `json:"exhibitions,omitempty" bson:"exhibitions,omitempty"`
	AllowedWorkshops []string   `json:"allowed_workshops" bson:"allowed_workshops"`
	CurrentBookings  []string   `json:"current_bookings" bson:"current_bookings"`
	PurchaseDate     string     `json:"purchase_date" bson:"purchase_date"`
}

// NewExhibitionPass prices and labels the pass from the number of
// exhibitions it covers.
func NewExhibitionPass(id string, exhibitions []string) *Ticket {
	if exhibitions == nil {
		exhibitions = []string{}
	}
	return &Ticket{
		Id:               id,
		Kind:             TicketKindExhibition,
		Cost:             ExhibitionPassPrice * float64(len(exhibitions)),
		Category:         exhibitionCategory(len(exhibitions)),
		Exhibitions:      exhibitions,
		AllowedWorkshops: []string{},
		CurrentBookings:  []string{},
	}
}

func NewAllAccessPass(id string) *Ticket {
	return &Ticket{
		Id:               id,
		Kind:             TicketKindAllAccess,
		Cost:             AllAccessPassPrice,
		Category:         CategoryAllAccess,
		AllowedWorkshops: []string{},
		CurrentBookings:  []string{},
	}
}

func exhibitionCategory(count int) string {
	switch count {
	case 1:
		return "Single Exhibition Pass"
	case 2:
		return "Dual Exhibition Pass"
	default:
		return fmt.Sprintf("%d-Exhibition Pass", count)
	}
}

// CanAccessWorkshop reports whether the pass entitles its holder to book
// the given workshop.
func (t *Ticket) CanAccessWorkshop(title string) bool {
	for _, allowed := range t.AllowedWorkshops {
		if allowed == title {
			return true
		}
	}
	return false
}

// AddExhibition extends an exhibition pass with another exhibition and its
// workshops. Cost is recomputed from the new exhibition count; the category
// label keeps its construction-time value. No-op when the exhibition is
// already covered or the ticket is not an exhibition pass.
func (t *Ticket) AddExhibition(title string, workshopTitles []string) {
	if t.Kind != TicketKindExhibition {
		return
	}
	for _, existing := range t.Exhibitions {
		if existing == title {
			return
		}
	}
	t.Exhibitions = append(t.Exhibitions, title)
	for _, workshop := range workshopTitles {
		if !t.CanAccessWorkshop(workshop) {
			t.AllowedWorkshops = append(t.AllowedWorkshops, workshop)
		}
	}
	t.Cost = ExhibitionPassPrice * float64(len(t.Exhibitions))
}

// AddBooking records a booked workshop title, once.
func (t *Ticket) AddBooking(title string) {
	for _, booked := range t.CurrentBookings {
		if booked == title {
			return
		}
	}
	t.CurrentBookings = append(t.CurrentBookings, title)
}

// RemoveBooking drops a booked workshop title and reports whether it was present.
func (t *Ticket) RemoveBooking(title string) bool {
	for i, booked := range t.CurrentBookings {
		if booked == title {
			t.CurrentBookings = append(t.CurrentBookings[:i], t.CurrentBookings[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAllowedWorkshop withdraws an entitlement, e.g. when a workshop is
// deleted from the catalog.
func (t *Ticket) RemoveAllowedWorkshop(title string) {
	for i, allowed := range t.AllowedWorkshops {
		if allowed == title {
			t.AllowedWorkshops = append(t.AllowedWorkshops[:i], t.AllowedWorkshops[i+1:]...)
			return
		}
	}
}
