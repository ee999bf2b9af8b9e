// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clubMiddleware "bowlingclub_backend/internals/middlewares/auth_club"
	routeDetails "bowlingclub_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PUBLIC → 인증 없음
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ADMIN (클럽 단위, admin 이상)
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		clubMiddleware.AuthJWT(clubMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		clubMiddleware.IsClubAdmin(),
	)

	// OWNER (전역)
	log.Println("[INFO] Setting up OWNER group...")
	owner := app.Group("/api/o",
		clubMiddleware.AuthJWT(clubMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Club routes...")
	routeDetails.ClubPublicRoutes(public, db)
	routeDetails.ClubAdminRoutes(admin, db)
	routeDetails.ClubOwnerRoutes(owner, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Score routes...")
	routeDetails.ScoreAdminRoutes(admin, db)
}
