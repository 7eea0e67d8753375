package entitlements

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeiq/resumeiq/app/models"
	"github.com/resumeiq/resumeiq/internal/pkg/subscription"
)

const subscriptionLocalsKey = "SUBSCRIPTION"

// RequireActiveSubscription guards protected actions. Entitlement is
// re-derived server-side from the persisted expiry on every request, never
// cached across requests: the lifecycle service's CurrentStatus is the only
// notion of "active" in the system.
func RequireActiveSubscription(svc *subscription.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := resolveEmail(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "EMAIL_REQUIRED"})
		}

		status, err := svc.CurrentStatus(c.Context(), email)
		if err != nil {
			log.Printf("entitlement check failed for %s: %v", email, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error"})
		}

		if !status.Active {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"reason":  status.Reason,
			})
		}

		// A metered grant with nothing left denies like an expired one,
		// but with its own reason so the client can prompt a top-up.
		if sub := status.Subscription; sub.Metered() && *sub.AICredits <= 0 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"reason":  subscription.ReasonNoCredits,
			})
		}

		c.Locals(subscriptionLocalsKey, status.Subscription)
		return c.Next()
	}
}

// GetSubscription retrieves the grant the gate attached to the request, or
// nil outside a guarded handler.
func GetSubscription(c *fiber.Ctx) *models.Subscription {
	if sub, ok := c.Locals(subscriptionLocalsKey).(*models.Subscription); ok {
		return sub
	}
	return nil
}

func resolveEmail(c *fiber.Ctx) string {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err == nil && strings.TrimSpace(body.Email) != "" {
		return strings.ToLower(strings.TrimSpace(body.Email))
	}
	return strings.ToLower(strings.TrimSpace(c.Query("email")))
}
