package service

import (
	"greenwave-ticketing/model"
)

// ProcessWorkshopReservation runs the ordered booking checks and, on
// success, registers the attendee on the workshop and mirrors the booking
// on the attendee. Both sides are updated together; a workshop title is in
// the attendee's bookings exactly when the attendee's email is in the
// workshop's registered set.
func (s *System) ProcessWorkshopReservation(attendee *model.Attendee, workshopTitle string) (bool, string) {
	if !attendee.CanBookWorkshop(workshopTitle) {
		return false, "Your ticket does not allow this workshop."
	}

	workshop := s.FindWorkshop(workshopTitle)
	if workshop == nil {
		return false, "Workshop not found."
	}

	if workshop.IsFull() {
		return false, "Workshop is already full."
	}

	if attendee.HasBooked(workshopTitle) {
		return false, "You already booked this workshop."
	}

	workshop.Register(attendee.Email)
	attendee.AddBooking(workshopTitle)
	return true, "Workshop booked successfully."
}

// CancelWorkshopReservation releases a booked spot, keeping the workshop's
// registered set and the attendee's booking mirror in step.
func (s *System) CancelWorkshopReservation(attendee *model.Attendee, workshopTitle string) (bool, string) {
	if !attendee.HasBooked(workshopTitle) {
		return false, "You have not booked this workshop."
	}

	if workshop := s.FindWorkshop(workshopTitle); workshop != nil {
		workshop.Unregister(attendee.Email)
	}
	attendee.CancelBooking(workshopTitle)
	for _, ticket := range attendee.OwnedTickets {
		ticket.RemoveBooking(workshopTitle)
	}
	return true, "Booking canceled."
}
