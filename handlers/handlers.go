// Package handlers contains the fiber HTTP handlers: the presentation layer
// calling the core conference system. Business-rule refusals surface the
// core's messages verbatim; input validation is caught here and reported as
// bad requests.
package handlers

import (
	"net/url"

	"greenwave-ticketing/database"
	"greenwave-ticketing/errors"
	"greenwave-ticketing/model"
	"greenwave-ticketing/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Handler owns the single system instance and the snapshot store. All
// handlers are methods so no state leaks into package scope.
type Handler struct {
	sys   *service.System
	store database.SnapshotStore
}

func New(sys *service.System, store database.SnapshotStore) *Handler {
	return &Handler{sys: sys, store: store}
}

// System exposes the aggregate for wiring and tests.
func (h *Handler) System() *service.System {
	return h.sys
}

// Snapshot captures the current aggregate state for persistence.
func (h *Handler) Snapshot() database.Snapshot {
	return database.Snapshot{
		Attendees:   h.sys.Attendees,
		Exhibitions: h.sys.Exhibitions,
		Sales:       h.sys.Sales,
	}
}

func identityClaims(c *fiber.Ctx) jwt.MapClaims {
	token := c.Locals("identity").(*jwt.Token)
	return token.Claims.(jwt.MapClaims)
}

func identityEmail(c *fiber.Ctx) string {
	email, _ := identityClaims(c)["email"].(string)
	return email
}

func isAdminRole(c *fiber.Ctx) bool {
	role, _ := identityClaims(c)["role"].(string)
	return role == "admin"
}

// unescapeParam decodes a path parameter; workshop titles carry spaces.
func unescapeParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}

// currentAttendee resolves the authenticated attendee, writing the error
// response itself when the token does not map to a directory entry.
func (h *Handler) currentAttendee(c *fiber.Ctx) (*model.Attendee, error) {
	attendee := h.sys.LookupAttendee(identityEmail(c))
	if attendee == nil {
		return nil, errors.RaiseNotFoundError(c, "attendee not found")
	}
	return attendee, nil
}
