package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bowlingclub_backend/internals/features/club/members/controller"
)

// 회원 관리 (admin 이상)
func MemberAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)

	g := r.Group("/:club_id/members")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
