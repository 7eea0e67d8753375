package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeiq/resumeiq/app/repository"
)

type registerRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleRegister creates a user account for the email if none exists yet.
// Accounts also come into existence implicitly on the first verified payment,
// so this endpoint is idempotent sugar for the frontend.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if !parseAndValidate(c, &req) {
		return nil
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	if _, err := repo.FirstOrCreateByEmail(strings.ToLower(strings.TrimSpace(req.Email))); err != nil {
		log.Printf("register failed for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error"})
	}

	return c.JSON(fiber.Map{"success": true})
}
