package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bowlingclub_backend/internals/features/score/games/controller"
)

// 점수 기록 (admin 이상)
func GameAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGameController(db)

	g := r.Group("/:club_id/games")
	g.Post("/", ctrl.CreateSession)
	g.Get("/", ctrl.ListSessions)
	g.Post("/:session_id/scores", ctrl.RecordScores)
	g.Get("/average/:member_id", ctrl.MemberAverage)
}
