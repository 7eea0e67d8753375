package controllers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeiq/resumeiq/internal/pkg/database"
	"github.com/resumeiq/resumeiq/internal/pkg/entitlements"
	"github.com/resumeiq/resumeiq/internal/pkg/rewrite"
	"github.com/resumeiq/resumeiq/internal/pkg/subscription"
)

type useAIRequest struct {
	Email string `json:"email" validate:"required,email"`
	Text  string `json:"text" validate:"required"`
}

// HandleUseAI runs the protected rewrite action. The entitlement gate has
// already passed and attached the grant; metered plans burn one credit
// atomically before the model is invoked, time-boxed plans are unlimited.
func HandleUseAI(c *fiber.Ctx) error {
	var req useAIRequest
	if !parseAndValidate(c, &req) {
		return nil
	}

	sub := entitlements.GetSubscription(c)
	svc := subscription.NewServiceFromDB(database.GetDB())
	if err := svc.ConsumeCredit(c.Context(), req.Email, sub); err != nil {
		if errors.Is(err, subscription.ErrNoCredits) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "reason": subscription.ReasonNoCredits})
		}
		log.Printf("credit consumption failed for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := rewrite.NewClientFromEnv()
	result, err := client.Rewrite(ctx, req.Text)
	if err != nil {
		log.Printf("rewrite failed for %s: %v", req.Email, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "error": "rewrite_failed"})
	}

	return c.JSON(fiber.Map{"success": true, "result": result})
}
