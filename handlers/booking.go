package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"greenwave-ticketing/errors"
)

type bookingRequest struct {
	Workshop string `json:"workshop"`
}

// GetExhibitions lists the catalog with per-workshop availability.
func (h *Handler) GetExhibitions(c *fiber.Ctx) error {
	exhibitions := []fiber.Map{}
	for _, exhibition := range h.sys.Exhibitions {
		workshops := []fiber.Map{}
		for _, workshop := range exhibition.Workshops {
			workshops = append(workshops, fiber.Map{
				"title":           workshop.Title,
				"schedule":        workshop.Schedule,
				"available_spots": workshop.AvailableSpots(),
				"full":            workshop.IsFull(),
			})
		}
		exhibitions = append(exhibitions, fiber.Map{
			"id":        exhibition.Id,
			"title":     exhibition.Title,
			"workshops": workshops,
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "catalog",
		"data":    exhibitions})
}

// BookWorkshop runs the reservation through the core checks. The core's
// refusal messages are returned verbatim.
func (h *Handler) BookWorkshop(c *fiber.Ctx) error {
	attendee, err := h.currentAttendee(c)
	if err != nil {
		return err
	}

	req := new(bookingRequest)
	if jsonErr := c.BodyParser(req); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", jsonErr))
	}
	req.Workshop = strings.TrimSpace(req.Workshop)
	if req.Workshop == "" {
		return errors.RaiseBadRequestError(c, "select a workshop")
	}

	ok, message := h.sys.ProcessWorkshopReservation(attendee, req.Workshop)
	if !ok {
		return errors.RaiseConflictError(c, message)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    req.Workshop})
}

// CancelBooking releases a previously booked workshop spot.
func (h *Handler) CancelBooking(c *fiber.Ctx) error {
	attendee, err := h.currentAttendee(c)
	if err != nil {
		return err
	}

	workshopTitle, unescapeErr := unescapeParam(c, "title")
	if unescapeErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable workshop title: %v", unescapeErr))
	}

	ok, message := h.sys.CancelWorkshopReservation(attendee, workshopTitle)
	if !ok {
		return errors.RaiseConflictError(c, message)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    workshopTitle})
}
