package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bowlingclub_backend/internals/features/finance/points/controller"
	middlewares "bowlingclub_backend/internals/middlewares"
)

// 포인트 관리 (admin 이상)
func PointAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPointController(db)
	mut := middlewares.MutationRateLimiter()

	g := r.Group("/:club_id/finance/points")
	g.Post("/", mut, ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/balance/:member_id", ctrl.MemberBalance)
	g.Put("/:id", mut, ctrl.Update)
	g.Delete("/:id", mut, ctrl.Delete)
}
