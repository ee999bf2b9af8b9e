package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameSessionModel: 정기전/모임 1회
type GameSessionModel struct {
	GameSessionID     uuid.UUID `gorm:"column:game_session_id;type:uuid;primaryKey" json:"game_session_id"`
	GameSessionClubID uuid.UUID `gorm:"column:game_session_club_id;type:uuid;not null;index" json:"game_session_club_id"`

	GameSessionDate time.Time `gorm:"column:game_session_date;type:date;not null;index" json:"game_session_date"`
	GameSessionNote *string   `gorm:"column:game_session_note;type:text" json:"game_session_note,omitempty"`

	GameSessionCreatedAt time.Time `gorm:"column:game_session_created_at;autoCreateTime" json:"game_session_created_at"`
}

func (GameSessionModel) TableName() string { return "game_sessions" }

func (m *GameSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.GameSessionID == uuid.Nil {
		m.GameSessionID = uuid.New()
	}
	return nil
}

// GameScoreModel: 한 회원의 게임 1개 점수 (0~300)
type GameScoreModel struct {
	GameScoreID        uuid.UUID `gorm:"column:game_score_id;type:uuid;primaryKey" json:"game_score_id"`
	GameScoreSessionID uuid.UUID `gorm:"column:game_score_session_id;type:uuid;not null;index" json:"game_score_session_id"`
	GameScoreMemberID  uuid.UUID `gorm:"column:game_score_member_id;type:uuid;not null;index" json:"game_score_member_id"`

	GameScoreGameNo int `gorm:"column:game_score_game_no;not null" json:"game_score_game_no"` // 1, 2, 3...
	GameScoreScore  int `gorm:"column:game_score_score;not null" json:"game_score_score"`

	GameScoreCreatedAt time.Time `gorm:"column:game_score_created_at;autoCreateTime" json:"game_score_created_at"`
}

func (GameScoreModel) TableName() string { return "game_scores" }

func (m *GameScoreModel) BeforeCreate(tx *gorm.DB) error {
	if m.GameScoreID == uuid.Nil {
		m.GameScoreID = uuid.New()
	}
	return nil
}
