package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionAttempt is one answer submission. Rows are append-only: repeated
// attempts at the same question by the same user get new rows with an
// incremented AttemptNumber, and nothing downstream ever mutates them.
// SelectedAnswer is jsonb because multi-select NGN items submit an ordered
// set of values rather than a single one.
type QuestionAttempt struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_attempt_user_time" json:"user_id"`
	QuestionID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"question_id"`
	Question         *Question      `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuestionID;references:ID" json:"question,omitempty"`
	AttemptedAt      time.Time      `gorm:"column:attempted_at;not null;index:idx_attempt_user_time" json:"attempted_at"`
	SelectedAnswer   datatypes.JSON `gorm:"type:jsonb;column:selected_answer" json:"selected_answer"`
	IsCorrect        bool           `gorm:"column:is_correct;not null" json:"is_correct"`
	TimeSpentSeconds int            `gorm:"column:time_spent_seconds;not null;default:0" json:"time_spent_seconds"`
	AttemptNumber    int            `gorm:"column:attempt_number;not null;default:1" json:"attempt_number"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuestionAttempt) TableName() string { return "question_attempt" }
