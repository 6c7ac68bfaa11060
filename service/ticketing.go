package service

import (
	"fmt"
	"time"

	"greenwave-ticketing/model"
)

const (
	exhibitionPassPrefix = "GW-EXH"
	allAccessPassPrefix  = "GW-ALL"
)

// nextTicketID mints a fresh id from the shared counter. The counter spans
// all ticket kinds; the numeric part is zero-padded to four digits and
// simply widens beyond 9999.
func (s *System) nextTicketID(prefix string) string {
	s.ticketCounter++
	return fmt.Sprintf("%s-%04d", prefix, s.ticketCounter)
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// IssueExhibitionPass mints an exhibition pass for the given exhibitions and
// attaches it to the attendee. The caller supplies the full workshop union
// for the selected exhibitions; titles are taken on trust and overwrite the
// constructor's own derivation.
func (s *System) IssueExhibitionPass(attendee *model.Attendee, exhibitionTitles, workshopTitles []string) *model.Ticket {
	ticket := model.NewExhibitionPass(s.nextTicketID(exhibitionPassPrefix), exhibitionTitles)
	if workshopTitles == nil {
		workshopTitles = []string{}
	}
	ticket.AllowedWorkshops = workshopTitles
	ticket.PurchaseDate = today()
	attendee.AssignTicket(ticket)
	s.Sales = append(s.Sales, model.SaleEvent{
		Date:     ticket.PurchaseDate,
		Category: ticket.Category,
		Amount:   ticket.Cost,
	})
	return ticket
}

// IssueAllAccessPass mints an all-access pass covering every workshop in the
// catalog at issuance time. Workshops added to the catalog later are not
// picked up by already-issued passes.
func (s *System) IssueAllAccessPass(attendee *model.Attendee) *model.Ticket {
	ticket := model.NewAllAccessPass(s.nextTicketID(allAccessPassPrefix))
	ticket.AllowedWorkshops = s.AllWorkshopTitles()
	ticket.PurchaseDate = today()
	attendee.AssignTicket(ticket)
	s.Sales = append(s.Sales, model.SaleEvent{
		Date:     ticket.PurchaseDate,
		Category: ticket.Category,
		Amount:   ticket.Cost,
	})
	return ticket
}

// PerformTicketUpgrade adds an exhibition to an already-issued pass for the
// flat upgrade fee. The ticket is trusted to belong to the attendee; callers
// resolve it from the attendee's owned tickets.
func (s *System) PerformTicketUpgrade(attendee *model.Attendee, ticket *model.Ticket, exhibitionTitle string) (bool, string) {
	if ticket.Category == model.CategoryAllAccess {
		return false, "Already Full Access."
	}

	exhibition := s.FindExhibitionByTitle(exhibitionTitle)
	if exhibition == nil {
		return false, "Exhibition not found."
	}

	ticket.AddExhibition(exhibitionTitle, exhibition.WorkshopTitles())
	s.Sales = append(s.Sales, model.SaleEvent{
		Date:     today(),
		Category: "Upgrade",
		Amount:   model.ExhibitionPassPrice,
	})
	return true, "Upgrade successful."
}
