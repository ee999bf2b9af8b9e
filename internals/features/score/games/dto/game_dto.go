package dto

import (
	"time"

	model "bowlingclub_backend/internals/features/score/games/model"

	"github.com/google/uuid"
)

type CreateGameSessionRequest struct {
	GameSessionDate string  `json:"game_session_date" validate:"required,datetime=2006-01-02"`
	GameSessionNote *string `json:"game_session_note,omitempty"`
}

func (r *CreateGameSessionRequest) ToModel(clubID uuid.UUID) *model.GameSessionModel {
	date, _ := time.Parse("2006-01-02", r.GameSessionDate)
	return &model.GameSessionModel{
		GameSessionClubID: clubID,
		GameSessionDate:   date,
		GameSessionNote:   r.GameSessionNote,
	}
}

type ScoreEntry struct {
	GameScoreMemberID uuid.UUID `json:"game_score_member_id" validate:"required"`
	GameScoreGameNo   int       `json:"game_score_game_no" validate:"required,gte=1"`
	GameScoreScore    int       `json:"game_score_score" validate:"gte=0,lte=300"`
}

type CreateScoresRequest struct {
	Scores []ScoreEntry `json:"scores" validate:"required,min=1,dive"`
}

type MemberAverageResponse struct {
	MemberID uuid.UUID `json:"member_id"`
	Games    int64     `json:"games"`
	Average  float64   `json:"average"`
	High     int       `json:"high"`
}
