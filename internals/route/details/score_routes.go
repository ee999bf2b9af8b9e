// file: internals/route/details/score_routes.go
package details

import (
	GameRoute "bowlingclub_backend/internals/features/score/games/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ScoreAdminRoutes(r fiber.Router, db *gorm.DB) {
	GameRoute.GameAdminRoutes(r, db)
}
