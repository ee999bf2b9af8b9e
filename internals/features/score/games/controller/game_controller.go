package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bowlingclub_backend/internals/features/score/games/dto"
	model "bowlingclub_backend/internals/features/score/games/model"
	helper "bowlingclub_backend/internals/helpers"
)

type GameController struct {
	DB *gorm.DB
}

func NewGameController(db *gorm.DB) *GameController {
	return &GameController{DB: db}
}

/* ======================= CREATE SESSION ======================= */
// POST /api/a/:club_id/games
func (h *GameController) CreateSession(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	var req dto.CreateGameSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(clubID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "세션 생성 실패")
	}

	return helper.JsonCreated(c, "게임 세션이 생성되었습니다", m)
}

/* ======================= LIST SESSIONS ======================= */
// GET /api/a/:club_id/games?page=&per_page=
func (h *GameController) ListSessions(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.GameSessionModel{}).
		Where("game_session_club_id = ?", clubID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.GameSessionModel
	if err := base.
		Order("game_session_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================= RECORD SCORES ======================= */
// POST /api/a/:club_id/games/:session_id/scores
func (h *GameController) RecordScores(c *fiber.Ctx) error {
	if _, err := helper.GetClubIDParam(c); err != nil {
		return err
	}
	sessionID, perr := uuid.Parse(strings.TrimSpace(c.Params("session_id")))
	if perr != nil {
		return fiber.NewError(fiber.StatusBadRequest, "session_id 형식 오류")
	}

	var session model.GameSessionModel
	if err := h.DB.Where("game_session_id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "세션을 찾을 수 없습니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.CreateScoresRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rows := make([]model.GameScoreModel, 0, len(req.Scores))
	for _, s := range req.Scores {
		rows = append(rows, model.GameScoreModel{
			GameScoreSessionID: sessionID,
			GameScoreMemberID:  s.GameScoreMemberID,
			GameScoreGameNo:    s.GameScoreGameNo,
			GameScoreScore:     s.GameScoreScore,
		})
	}
	if err := h.DB.Create(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "점수 저장 실패")
	}

	return helper.JsonCreated(c, "점수가 저장되었습니다", rows)
}

/* ======================= MEMBER AVERAGE ======================= */
// GET /api/a/:club_id/games/average/:member_id
func (h *GameController) MemberAverage(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	memberID, perr := uuid.Parse(strings.TrimSpace(c.Params("member_id")))
	if perr != nil {
		return fiber.NewError(fiber.StatusBadRequest, "member_id 형식 오류")
	}

	var scores []model.GameScoreModel
	if err := h.DB.
		Table("game_scores").
		Select("game_scores.*").
		Joins("JOIN game_sessions ON game_sessions.game_session_id = game_scores.game_score_session_id").
		Where("game_sessions.game_session_club_id = ? AND game_scores.game_score_member_id = ?", clubID, memberID).
		Find(&scores).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.MemberAverageResponse{MemberID: memberID}
	if len(scores) > 0 {
		var sum int
		for _, s := range scores {
			sum += s.GameScoreScore
			if s.GameScoreScore > resp.High {
				resp.High = s.GameScoreScore
			}
		}
		resp.Games = int64(len(scores))
		resp.Average = float64(sum) / float64(len(scores))
	}

	return helper.JsonOK(c, "OK", resp)
}
