package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"greenwave-ticketing/errors"
)

type purchaseRequest struct {
	Exhibitions []string `json:"exhibitions"`
	// Free-text payment label; required but recorded nowhere.
	PaymentMethod string `json:"payment_method"`
}

// BuyExhibitionPass issues an exhibition pass for the selected exhibitions.
// The workshop union for the selection is derived here, from the catalog,
// and handed to the core along with the exhibition titles.
func (h *Handler) BuyExhibitionPass(c *fiber.Ctx) error {
	attendee, err := h.currentAttendee(c)
	if err != nil {
		return err
	}

	req := new(purchaseRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable purchase parameters: %v", jsonErr))
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return errors.RaiseBadRequestError(c, "enter payment method")
	}

	exhibitionTitles := []string{}
	workshopTitles := []string{}
	for _, title := range req.Exhibitions {
		exhibition := h.sys.FindExhibitionByTitle(strings.TrimSpace(title))
		if exhibition == nil {
			continue
		}
		exhibitionTitles = append(exhibitionTitles, exhibition.Title)
		workshopTitles = append(workshopTitles, exhibition.WorkshopTitles()...)
	}
	if len(exhibitionTitles) == 0 {
		return errors.RaiseBadRequestError(c, "invalid selection, no matching exhibitions")
	}

	ticket := h.sys.IssueExhibitionPass(attendee, exhibitionTitles, workshopTitles)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Success! Ticket ID: %v | Cost: %v AED", ticket.Id, ticket.Cost),
		"data":    ticket})
}

// BuyAllAccessPass issues an all-access pass covering the whole catalog.
func (h *Handler) BuyAllAccessPass(c *fiber.Ctx) error {
	attendee, err := h.currentAttendee(c)
	if err != nil {
		return err
	}

	req := new(purchaseRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable purchase parameters: %v", jsonErr))
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return errors.RaiseBadRequestError(c, "enter payment method")
	}

	ticket := h.sys.IssueAllAccessPass(attendee)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Success! Ticket ID: %v | Cost: %v AED", ticket.Id, ticket.Cost),
		"data":    ticket})
}

// GetProfile returns the authenticated attendee with owned tickets and
// booked workshops.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	attendee, err := h.currentAttendee(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "profile",
		"data": fiber.Map{
			"email":            attendee.Email,
			"full_name":        attendee.FullName,
			"owned_tickets":    attendee.OwnedTickets,
			"booked_workshops": attendee.BookedWorkshops,
		}})
}
