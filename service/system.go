// Package service implements the conference system: the attendee directory,
// the exhibition catalog, the sales ledger, and the ticketing, booking and
// reporting operations on top of them. Callers are expected to serialize
// access; there is one interactive session per process.
package service

import (
	"greenwave-ticketing/model"
)

// System is the single process-wide aggregate. All operations take it by
// handle; there is no package-level state.
type System struct {
	Attendees     []*model.Attendee
	Exhibitions   []*model.Exhibition
	Sales         []model.SaleEvent
	ticketCounter int
}

func NewSystem() *System {
	return &System{
		Attendees:   []*model.Attendee{},
		Exhibitions: []*model.Exhibition{},
		Sales:       []model.SaleEvent{},
	}
}

// Restore replaces the aggregate state with a loaded snapshot. The ticket
// counter is not persisted on its own: it is derived from the ledger length,
// so ids keep increasing across sessions.
func (s *System) Restore(attendees []*model.Attendee, exhibitions []*model.Exhibition, sales []model.SaleEvent) {
	if attendees == nil {
		attendees = []*model.Attendee{}
	}
	if exhibitions == nil {
		exhibitions = []*model.Exhibition{}
	}
	if sales == nil {
		sales = []model.SaleEvent{}
	}
	s.Attendees = attendees
	s.Exhibitions = exhibitions
	s.Sales = sales
	s.ticketCounter = len(sales)
}

// AddAttendee appends a new attendee, refusing duplicates by email.
func (s *System) AddAttendee(attendee *model.Attendee) bool {
	for _, existing := range s.Attendees {
		if existing.Email == attendee.Email {
			return false
		}
	}
	s.Attendees = append(s.Attendees, attendee)
	return true
}

// LookupAttendee returns the attendee with the given email, or nil.
func (s *System) LookupAttendee(email string) *model.Attendee {
	for _, attendee := range s.Attendees {
		if attendee.Email == email {
			return attendee
		}
	}
	return nil
}

// FindWorkshop scans the whole catalog and returns the first workshop with
// the given title, or nil.
func (s *System) FindWorkshop(title string) *model.Workshop {
	for _, exhibition := range s.Exhibitions {
		if workshop := exhibition.FindWorkshop(title); workshop != nil {
			return workshop
		}
	}
	return nil
}

// FindExhibitionByTitle returns the exhibition with the given title, or nil.
func (s *System) FindExhibitionByTitle(title string) *model.Exhibition {
	for _, exhibition := range s.Exhibitions {
		if exhibition.Title == title {
			return exhibition
		}
	}
	return nil
}

// FindExhibition returns the exhibition with the given id, or nil.
func (s *System) FindExhibition(id string) *model.Exhibition {
	for _, exhibition := range s.Exhibitions {
		if exhibition.Id == id {
			return exhibition
		}
	}
	return nil
}

// AllWorkshopTitles lists every workshop title across the catalog, in
// catalog order, without duplicates.
func (s *System) AllWorkshopTitles() []string {
	titles := []string{}
	seen := map[string]bool{}
	for _, exhibition := range s.Exhibitions {
		for _, workshop := range exhibition.Workshops {
			if !seen[workshop.Title] {
				seen[workshop.Title] = true
				titles = append(titles, workshop.Title)
			}
		}
	}
	return titles
}

// SeedDefaultCatalog populates the built-in three-exhibition catalog. It
// only runs against an empty catalog and never overwrites loaded data.
func (s *System) SeedDefaultCatalog() {
	if len(s.Exhibitions) > 0 {
		return
	}

	ex1 := model.NewExhibition("EXH1", "Climate Tech Innovations")
	ex1.InsertWorkshop(model.NewWorkshop("Solar Futures", "10:00-11:00", 30))
	ex1.InsertWorkshop(model.NewWorkshop("Smart Grids", "11:30-12:30", 30))
	ex1.InsertWorkshop(model.NewWorkshop("Green Mobility", "13:00-14:00", 30))

	ex2 := model.NewExhibition("EXH2", "Policy & Community Action")
	ex2.InsertWorkshop(model.NewWorkshop("Local Policy Labs", "10:00-11:00", 30))
	ex2.InsertWorkshop(model.NewWorkshop("Community Projects", "11:30-12:30", 30))
	ex2.InsertWorkshop(model.NewWorkshop("Youth Climate Leaders", "13:00-14:00", 30))

	ex3 := model.NewExhibition("EXH3", "Sustainable Lifestyles")
	ex3.InsertWorkshop(model.NewWorkshop("Zero Waste Homes", "10:00-11:00", 30))
	ex3.InsertWorkshop(model.NewWorkshop("Green Fashion", "11:30-12:30", 30))
	ex3.InsertWorkshop(model.NewWorkshop("Mindful Consumption", "13:00-14:00", 30))

	s.Exhibitions = []*model.Exhibition{ex1, ex2, ex3}
}

// AddExhibition appends an exhibition to the catalog, refusing duplicate ids.
func (s *System) AddExhibition(exhibition *model.Exhibition) bool {
	for _, existing := range s.Exhibitions {
		if existing.Id == exhibition.Id {
			return false
		}
	}
	s.Exhibitions = append(s.Exhibitions, exhibition)
	return true
}
