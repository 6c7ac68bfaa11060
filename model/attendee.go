package model

// Attendee is identified by email. BookedWorkshops mirrors the bookings
// across all owned tickets and must always agree with the workshops'
// registered-attendee sets.
type Attendee struct {
	Email           string    `json:"email" bson:"_id"`
	FullName        string    `json:"full_name" bson:"full_name"`
	Password        string    `json:"password" bson:"password"`
	OwnedTickets    []*Ticket `json:"owned_tickets" bson:"owned_tickets"`
	BookedWorkshops []string  `json:"booked_workshops" bson:"booked_workshops"`
}

func NewAttendee(email, fullName, password string) *Attendee {
	return &Attendee{
		Email:           email,
		FullName:        fullName,
		Password:        password,
		OwnedTickets:    []*Ticket{},
		BookedWorkshops: []string{},
	}
}

func (a *Attendee) AssignTicket(ticket *Ticket) {
	a.OwnedTickets = append(a.OwnedTickets, ticket)
}

// FindTicket returns the owned ticket with the given id, or nil.
func (a *Attendee) FindTicket(id string) *Ticket {
	for _, ticket := range a.OwnedTickets {
		if ticket.Id == id {
			return ticket
		}
	}
	return nil
}

// AddBooking records a booked workshop title and reports whether it was new.
func (a *Attendee) AddBooking(title string) bool {
	for _, booked := range a.BookedWorkshops {
		if booked == title {
			return false
		}
	}
	a.BookedWorkshops = append(a.BookedWorkshops, title)
	return true
}

// CancelBooking drops a booked workshop title and reports whether it was present.
func (a *Attendee) CancelBooking(title string) bool {
	for i, booked := range a.BookedWorkshops {
		if booked == title {
			a.BookedWorkshops = append(a.BookedWorkshops[:i], a.BookedWorkshops[i+1:]...)
			return true
		}
	}
	return false
}

// HasBooked reports whether the attendee already booked the workshop.
func (a *Attendee) HasBooked(title string) bool {
	for _, booked := range a.BookedWorkshops {
		if booked == title {
			return true
		}
	}
	return false
}

// CanBookWorkshop reports whether any owned ticket grants access to the workshop.
func (a *Attendee) CanBookWorkshop(title string) bool {
	for _, ticket := range a.OwnedTickets {
		if ticket.CanAccessWorkshop(title) {
			return true
		}
	}
	return false
}

// VerifyPassword compares plain values; password hardening is out of scope.
func (a *Attendee) VerifyPassword(password string) bool {
	return a.Password == password
}
