// file: internals/route/details/club_routes.go
package details

import (
	ClubRoute "bowlingclub_backend/internals/features/club/clubs/route"
	MemberRoute "bowlingclub_backend/internals/features/club/members/route"
	SettingRoute "bowlingclub_backend/internals/features/club/settings/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClubPublicRoutes(r fiber.Router, db *gorm.DB) {
	ClubRoute.ClubPublicRoutes(r, db)
}

func ClubAdminRoutes(r fiber.Router, db *gorm.DB) {
	ClubRoute.ClubAdminRoutes(r, db)
	MemberRoute.MemberAdminRoutes(r, db)
	SettingRoute.ClubSettingAdminRoutes(r, db)
}

func ClubOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ClubRoute.ClubOwnerRoutes(r, db)
}
