package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeiq/resumeiq/internal/pkg/database"
	"github.com/resumeiq/resumeiq/internal/pkg/subscription"
)

// HandleMe reports the caller's current entitlement. The answer is re-derived
// from the store on every call; clients may display it but never rely on a
// cached copy.
func HandleMe(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_request", "message": "email query parameter is required"})
	}

	svc := subscription.NewServiceFromDB(database.GetDB())
	status, err := svc.CurrentStatus(c.Context(), email)
	if err != nil {
		log.Printf("status read failed for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error"})
	}

	if !status.Active {
		return c.JSON(fiber.Map{"email": email, "active": false})
	}

	plan := fiber.Map{
		"id":        status.Subscription.PlanID,
		"name":      status.Subscription.PlanName,
		"expiresAt": status.Subscription.ExpiresAt,
	}
	if status.Subscription.Metered() {
		plan["aiCredits"] = *status.Subscription.AICredits
	}

	return c.JSON(fiber.Map{"email": email, "active": true, "plan": plan})
}
