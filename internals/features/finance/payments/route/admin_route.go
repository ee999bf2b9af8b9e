package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bowlingclub_backend/internals/features/finance/payments/controller"
	middlewares "bowlingclub_backend/internals/middlewares"
)

// 결제 관리 (admin 이상)
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)
	mut := middlewares.MutationRateLimiter()

	g := r.Group("/:club_id/finance/payments")
	g.Post("/", mut, ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", mut, ctrl.Update)
	g.Delete("/:id", mut, ctrl.Delete)
}
