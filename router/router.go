package router

import (
	"greenwave-ticketing/handlers"
	"greenwave-ticketing/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/", logger.New())

	//Public
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
	api.Get("/exhibitions", h.GetExhibitions)

	//Attendee session
	session := api.Group("/", middleware.Authorize())
	session.Get("/profile", h.GetProfile)

	tickets := session.Group("/tickets")
	tickets.Post("/exhibition-pass", h.BuyExhibitionPass)
	tickets.Post("/all-access-pass", h.BuyAllAccessPass)

	bookings := session.Group("/bookings")
	bookings.Post("/", h.BookWorkshop)
	bookings.Delete("/:title", h.CancelBooking)

	//Admin
	admin := session.Group("/admin")
	admin.Get("/sales-report", h.SalesReport)
	admin.Get("/attendees", h.ListAttendees)
	admin.Get("/occupancy", h.WorkshopOccupancy)
	admin.Post("/upgrades", h.UpgradeTicket)
	admin.Post("/exhibitions", h.CreateExhibition)
	admin.Post("/exhibitions/:id/workshops", h.InsertWorkshop)
	admin.Delete("/exhibitions/:id/workshops/:title", h.DeleteWorkshop)
}
