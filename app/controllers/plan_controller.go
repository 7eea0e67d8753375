package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resumeiq/resumeiq/internal/pkg/plans"
)

// HandleGetPlans returns the static plan catalog keyed by plan id.
func HandleGetPlans(c *fiber.Ctx) error {
	return c.JSON(plans.All())
}
