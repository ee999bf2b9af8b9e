// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// JWT 미들웨어가 채워주는 Locals 키
const (
	LocUserID   = "user_id"
	LocClubID   = "active_club_id"
	LocClubRole = "club_role"
)

// GetUserIDFromToken: Locals("user_id") → uuid
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id 클레임 없음")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id 형식 오류")
	}
	return id, nil
}

// GetClubIDFromToken: 토큰의 active_club_id → uuid
func GetClubIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocClubID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "active_club_id 클레임 없음")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "active_club_id 형식 오류")
	}
	return id, nil
}

// GetClubIDParam: 경로 파라미터 :club_id → uuid.
// 토큰 스코프와 불일치하면 403 (관리자 라우트는 항상 클럽 스코프 안에서 동작).
func GetClubIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params("club_id"))
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "club_id 경로 파라미터 필요")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "club_id 형식 오류")
	}
	if v, ok := c.Locals(LocClubID).(string); ok && v != "" {
		if scoped, err := uuid.Parse(v); err == nil && scoped != id {
			return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "토큰 스코프와 다른 클럽입니다")
		}
	}
	return id, nil
}

// GetClubRole: Locals("club_role") → 역할 문자열 (없으면 "")
func GetClubRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocClubRole).(string); ok {
		return s
	}
	return ""
}
