package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bowlingclub_backend/internals/features/club/settings/controller"
)

// 클럽 설정 (admin 이상)
func ClubSettingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClubSettingController(db)

	g := r.Group("/:club_id/settings")
	g.Get("/", ctrl.Get)
	g.Put("/", ctrl.Upsert)
}
