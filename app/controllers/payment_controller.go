package controllers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeiq/resumeiq/internal/pkg/database"
	"github.com/resumeiq/resumeiq/internal/pkg/env"
	"github.com/resumeiq/resumeiq/internal/pkg/payment"
	"github.com/resumeiq/resumeiq/internal/pkg/plans"
	"github.com/resumeiq/resumeiq/internal/pkg/subscription"
)

type createOrderRequest struct {
	PlanID string `json:"planId" validate:"required"`
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
	PlanID            string `json:"planId" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
}

// HandleCreateOrder prices a gateway order from the catalog and returns the
// fields the checkout widget needs. The key id is safe to expose; the secret
// never leaves the server.
func HandleCreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if !parseAndValidate(c, &req) {
		return nil
	}

	plan, ok := plans.Get(req.PlanID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_plan", "message": "Unknown plan id"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := payment.NewClientFromEnv()
	order, err := client.CreateOrder(ctx, plan.ID, plan.Name, plan.PriceMinorUnits, plans.Currency)
	if err != nil {
		log.Printf("razorpay order failed for plan %s: %v", plan.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "order_creation_failed"})
	}

	return c.JSON(fiber.Map{
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"plan":     plan,
		"key":      env.GetEnv("RAZORPAY_KEY_ID", ""),
	})
}

// HandleVerifyPayment is the trust boundary between "the client claims it
// paid" and "the user holds a grant". Order of checks matters: validation and
// the signature check never mutate state, and the duplicate-payment decision
// is left to the store's unique index inside the activation transaction so
// two racing callbacks cannot both grant.
func HandleVerifyPayment(c *fiber.Ctx) error {
	var req verifyPaymentRequest
	if !parseAndValidate(c, &req) {
		return nil
	}

	if _, ok := plans.Get(req.PlanID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_plan", "message": "Unknown plan id"})
	}

	secret := env.GetEnv("RAZORPAY_KEY_SECRET", "")
	if !payment.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid_signature"})
	}

	svc := subscription.NewServiceFromDB(database.GetDB())
	sub, err := svc.Activate(c.Context(), req.Email, req.PlanID, subscription.PaymentAttempt{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
	})
	if err != nil {
		if errors.Is(err, subscription.ErrDuplicatePayment) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": "duplicate_payment"})
		}
		if errors.Is(err, subscription.ErrPlanNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_plan"})
		}
		log.Printf("subscription activation failed for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"plan":      fiber.Map{"id": sub.PlanID, "name": sub.PlanName},
		"expiresAt": sub.ExpiresAt,
	})
}
