package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bowlingclub_backend/internals/features/club/clubs/controller"
)

// 공개 조회
func ClubPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClubController(db)
	r.Get("/clubs/:slug", ctrl.GetBySlug)
}

// 클럽 관리 (admin)
func ClubAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClubController(db)
	r.Put("/:club_id/club", ctrl.Update)
}

// 전체 관리 (owner)
func ClubOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClubController(db)
	r.Post("/clubs", ctrl.Create)
	r.Delete("/clubs/:club_id", ctrl.Delete)
}
