package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"greenwave-ticketing/config"
	"greenwave-ticketing/errors"
	"greenwave-ticketing/model"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// Register creates a new attendee account. Duplicate emails are refused
// without touching the directory.
func (h *Handler) Register(c *fiber.Ctx) error {
	req := new(registration)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable registration parameters: %v", err))
	}
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)

	if validationErr := validateRegistrationInput(*req); validationErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(validationErr))
	}

	attendee := model.NewAttendee(req.Email, req.FullName, req.Password)
	if !h.sys.AddAttendee(attendee) {
		return errors.RaiseError(c, fiber.StatusConflict, "email already registered",
			fmt.Sprintf("attendee with email %v already exists", req.Email))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "account created",
		"data":    attendee.Email})
}

// Login verifies the plain password and issues a session token. The
// configured admin credentials log in with the admin role; everyone else is
// an attendee.
func (h *Handler) Login(c *fiber.Ctx) error {
	creds := new(credentials)
	if err := c.BodyParser(creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable credentials: %v", err))
	}
	if creds.Email == "" || creds.Password == "" {
		return errors.RaiseBadRequestError(c, "enter email and password")
	}

	role := "attendee"
	adminEmail, adminPassword := config.AdminCredentials()
	if creds.Email == adminEmail {
		if creds.Password != adminPassword {
			return errors.RaiseError(c, fiber.StatusUnauthorized, "Wrong password", "")
		}
		role = "admin"
	} else {
		attendee := h.sys.LookupAttendee(creds.Email)
		if attendee == nil {
			return errors.RaiseNotFoundError(c, "Email not found")
		}
		if !attendee.VerifyPassword(creds.Password) {
			return errors.RaiseError(c, fiber.StatusUnauthorized, "Wrong password", "")
		}
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = creds.Email
	claims["role"] = role
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()

	sign, enverr := config.GetSecret("SIGN")
	if enverr != nil {
		log.Print(enverr)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	t, err := token.SignedString([]byte(sign))
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}

func validateRegistrationInput(req registration) error {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if len(req.FullName) < 2 {
		return fmt.Errorf("full name is too short")
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
