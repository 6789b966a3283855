// internals/features/school/class_diaries/model/class_diary_objective_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassDiaryObjectiveModel não tem ciclo de vida próprio: o conjunto inteiro
// é substituído (delete + insert) a cada consolidação do diário pai.
type ClassDiaryObjectiveModel struct {
	ClassDiaryObjectiveID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_diary_objectives_id" json:"class_diary_objectives_id"`

	ClassDiaryObjectiveDiaryID uuid.UUID `gorm:"type:uuid;not null;index;column:class_diary_objectives_diary_id" json:"class_diary_objectives_diary_id"`

	ClassDiaryObjectiveCode        string `gorm:"not null;column:class_diary_objectives_code"        json:"class_diary_objectives_code"`
	ClassDiaryObjectiveDescription string `gorm:"not null;column:class_diary_objectives_description" json:"class_diary_objectives_description"`

	ClassDiaryObjectiveCreatedAt time.Time `gorm:"column:class_diary_objectives_created_at;autoCreateTime" json:"class_diary_objectives_created_at"`
}

func (ClassDiaryObjectiveModel) TableName() string { return "class_diary_objectives" }

func (m *ClassDiaryObjectiveModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassDiaryObjectiveID == uuid.Nil {
		m.ClassDiaryObjectiveID = uuid.New()
	}
	return nil
}
