package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resumeiq/resumeiq/app/controllers"
	"github.com/resumeiq/resumeiq/internal/pkg/database"
	"github.com/resumeiq/resumeiq/internal/pkg/entitlements"
	"github.com/resumeiq/resumeiq/internal/pkg/subscription"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	app.Get("/plans", controllers.HandleGetPlans)
	app.Post("/register", controllers.HandleRegister)
	app.Post("/create-order", controllers.HandleCreateOrder)
	app.Post("/verify-payment", controllers.HandleVerifyPayment)
	app.Get("/me", controllers.HandleMe)

	// Protected actions sit behind the entitlement gate; the gate re-derives
	// "active" from the store on every request.
	svc := subscription.NewServiceFromDB(database.GetDB())
	app.Post("/use-ai", entitlements.RequireActiveSubscription(svc), controllers.HandleUseAI)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
