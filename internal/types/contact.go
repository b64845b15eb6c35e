package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Contact is the central profile record. The derived columns (life_path,
// expression, score, readings, advanced_readings) are pure functions of
// full_name/birthdate/birth_time and are recomputed wholesale whenever any
// of those change; ai_summary and ai_bios are the only fields updatable
// post-creation without recomputation.
type Contact struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FullName         string         `gorm:"not null;column:full_name" json:"full_name"`
	Birthdate        string         `gorm:"not null;column:birthdate" json:"birthdate"`
	BirthTime        *string        `gorm:"column:birth_time" json:"birth_time,omitempty"`
	Email            string         `gorm:"column:email" json:"email"`
	LifePath         int            `gorm:"not null;column:life_path" json:"life_path"`
	Expression       int            `gorm:"not null;column:expression" json:"expression"`
	Score            int            `gorm:"not null;column:score;index" json:"score"`
	Readings         datatypes.JSON `gorm:"type:jsonb;column:readings" json:"readings"`
	AdvancedReadings datatypes.JSON `gorm:"type:jsonb;column:advanced_readings" json:"advanced_readings,omitempty"`
	AISummary        string         `gorm:"column:ai_summary" json:"ai_summary,omitempty"`
	AIBios           string         `gorm:"column:ai_bios" json:"ai_bios,omitempty"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Contact) TableName() string { return "contact" }
