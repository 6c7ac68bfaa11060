package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"greenwave-ticketing/errors"
	"greenwave-ticketing/model"
)

// SalesReport returns the date-grouped sales table as plain text.
func (h *Handler) SalesReport(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}
	return c.SendString(h.sys.DailySalesReport())
}

// ListAttendees returns the directory with per-attendee ticket counts.
func (h *Handler) ListAttendees(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	attendees := []fiber.Map{}
	for _, attendee := range h.sys.Attendees {
		attendees = append(attendees, fiber.Map{
			"full_name": attendee.FullName,
			"email":     attendee.Email,
			"tickets":   len(attendee.OwnedTickets),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "attendees",
		"data":    attendees})
}

// WorkshopOccupancy reports registered/capacity and a FULL/Available status
// per workshop, grouped by exhibition.
func (h *Handler) WorkshopOccupancy(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	occupancy := []fiber.Map{}
	for _, exhibition := range h.sys.Exhibitions {
		workshops := []fiber.Map{}
		for _, workshop := range exhibition.Workshops {
			status := "Available"
			if workshop.IsFull() {
				status = "FULL"
			}
			workshops = append(workshops, fiber.Map{
				"title":      workshop.Title,
				"registered": len(workshop.RegisteredAttendees),
				"capacity":   workshop.MaxCapacity,
				"status":     status,
			})
		}
		occupancy = append(occupancy, fiber.Map{
			"exhibition": exhibition.Title,
			"workshops":  workshops,
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "occupancy",
		"data":    occupancy})
}

type upgradeRequest struct {
	AttendeeEmail   string `json:"attendee_email"`
	TicketId        string `json:"ticket_id"`
	ExhibitionTitle string `json:"exhibition_title"`
}

// UpgradeTicket adds an exhibition to an attendee's pass. The ticket is
// resolved from the attendee's owned tickets before the core is called, so
// a ticket can never be upgraded against a foreign attendee.
func (h *Handler) UpgradeTicket(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	req := new(upgradeRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable upgrade parameters: %v", jsonErr))
	}
	if req.AttendeeEmail == "" || req.TicketId == "" || req.ExhibitionTitle == "" {
		return errors.RaiseBadRequestError(c, "fill all fields: attendee_email, ticket_id, exhibition_title")
	}

	attendee := h.sys.LookupAttendee(req.AttendeeEmail)
	if attendee == nil {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("attendee %v not found", req.AttendeeEmail))
	}
	ticket := attendee.FindTicket(req.TicketId)
	if ticket == nil {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("ticket %v not found for attendee %v", req.TicketId, req.AttendeeEmail))
	}

	ok, message := h.sys.PerformTicketUpgrade(attendee, ticket, req.ExhibitionTitle)
	if !ok {
		return errors.RaiseConflictError(c, message)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    ticket})
}

type exhibitionRequest struct {
	Id    string `json:"id"`
	Title string `json:"title"`
}

// CreateExhibition adds an exhibition to the catalog. An id is generated
// when the caller does not supply one.
func (h *Handler) CreateExhibition(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	req := new(exhibitionRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable exhibition parameters: %v", jsonErr))
	}
	req.Title = strings.TrimSpace(req.Title)
	if len(req.Title) < 2 {
		return errors.RaiseBadRequestError(c, "exhibition title is too short")
	}
	if req.Id == "" {
		req.Id = uuid.NewString()
	}

	exhibition := model.NewExhibition(req.Id, req.Title)
	if !h.sys.AddExhibition(exhibition) {
		return errors.RaiseError(c, fiber.StatusConflict, "exhibition already exists",
			fmt.Sprintf("exhibition with id %v already in catalog", req.Id))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "exhibition created",
		"data":    exhibition})
}

type workshopRequest struct {
	Title       string `json:"title"`
	Schedule    string `json:"schedule"`
	MaxCapacity int    `json:"max_capacity"`
}

// InsertWorkshop appends a workshop to an exhibition.
func (h *Handler) InsertWorkshop(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	exhibition := h.sys.FindExhibition(c.Params("id"))
	if exhibition == nil {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("exhibition %v not found", c.Params("id")))
	}

	req := new(workshopRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable workshop parameters: %v", jsonErr))
	}
	req.Title = strings.TrimSpace(req.Title)
	if len(req.Title) < 2 {
		return errors.RaiseBadRequestError(c, "workshop title is too short")
	}
	if req.MaxCapacity <= 0 {
		return errors.RaiseBadRequestError(c, "workshop capacity must be positive")
	}
	if h.sys.FindWorkshop(req.Title) != nil {
		return errors.RaiseError(c, fiber.StatusConflict, "workshop already exists",
			fmt.Sprintf("workshop %v already in catalog", req.Title))
	}

	workshop := model.NewWorkshop(req.Title, req.Schedule, req.MaxCapacity)
	exhibition.InsertWorkshop(workshop)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "workshop created",
		"data":    workshop})
}

// DeleteWorkshop removes a workshop from an exhibition; removing an absent
// title is a no-op that still reports success.
func (h *Handler) DeleteWorkshop(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	exhibition := h.sys.FindExhibition(c.Params("id"))
	if exhibition == nil {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("exhibition %v not found", c.Params("id")))
	}

	workshopTitle, unescapeErr := unescapeParam(c, "title")
	if unescapeErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable workshop title: %v", unescapeErr))
	}
	exhibition.DeleteWorkshop(workshopTitle)

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("workshop %v removed from exhibition %v", workshopTitle, exhibition.Id)})
}
