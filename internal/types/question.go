package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is a published NCLEX exam item. Authoring content (stem, choices,
// rationale) is opaque to the analytics core and stored as jsonb.
type Question struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Category     string         `gorm:"column:category;not null;index" json:"category"`
	QuestionType string         `gorm:"column:question_type;not null;index" json:"question_type"`
	Difficulty   string         `gorm:"column:difficulty;index" json:"difficulty"`
	Content      datatypes.JSON `gorm:"type:jsonb;column:content" json:"content"`
	Published    bool           `gorm:"column:published;not null;default:false;index" json:"published"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Question) TableName() string { return "question" }
