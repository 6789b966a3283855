// internals/features/school/class_diaries/model/class_diary_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Ciclo de vida do diário
const (
	ClassDiaryStatusDraft        = "DRAFT"
	ClassDiaryStatusConsolidated = "CONSOLIDATED"
)

// Largura fixa da descrição denormalizada do objetivo principal.
const ClassDiaryObjectiveDescriptionMaxLen = 100

// ClassDiaryModel é o registro autoritativo da aula: no máximo um por
// (componente curricular, data). Mutado apenas pela consolidação; nunca
// excluído fisicamente por este módulo.
type ClassDiaryModel struct {
	ClassDiaryID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_diaries_id" json:"class_diaries_id"`

	ClassDiaryComponentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_diaries_component_date,priority:1;column:class_diaries_component_id" json:"class_diaries_component_id"`
	ClassDiaryDate        time.Time `gorm:"type:date;not null;uniqueIndex:uq_class_diaries_component_date,priority:2;column:class_diaries_date"          json:"class_diaries_date"`

	ClassDiarySchoolID  uuid.UUID `gorm:"type:uuid;not null;column:class_diaries_school_id"        json:"class_diaries_school_id"`
	ClassDiaryTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:class_diaries_teacher_id" json:"class_diaries_teacher_id"`

	ClassDiaryTopic   *string `gorm:"column:class_diaries_topic"   json:"class_diaries_topic,omitempty"`
	ClassDiaryContent *string `gorm:"column:class_diaries_content" json:"class_diaries_content,omitempty"`
	ClassDiaryNotes   *string `gorm:"column:class_diaries_notes"   json:"class_diaries_notes,omitempty"`

	ClassDiaryDurationMinutes int `gorm:"not null;column:class_diaries_duration_minutes" json:"class_diaries_duration_minutes"`

	// Objetivo principal denormalizado (primeiro objetivo vinculado, ou GENERAL)
	ClassDiaryObjectiveCode        string `gorm:"not null;column:class_diaries_objective_code"                 json:"class_diaries_objective_code"`
	ClassDiaryObjectiveDescription string `gorm:"size:100;not null;column:class_diaries_objective_description" json:"class_diaries_objective_description"`

	ClassDiaryStatus string `gorm:"not null;default:DRAFT;column:class_diaries_status" json:"class_diaries_status"`

	// Snapshot da última submissão consolidada (auditoria)
	ClassDiaryLastSubmission datatypes.JSON `gorm:"column:class_diaries_last_submission" json:"class_diaries_last_submission,omitempty"`

	ClassDiaryCreatedAt time.Time      `gorm:"column:class_diaries_created_at;autoCreateTime" json:"class_diaries_created_at"`
	ClassDiaryUpdatedAt *time.Time     `gorm:"column:class_diaries_updated_at;autoUpdateTime" json:"class_diaries_updated_at,omitempty"`
	ClassDiaryDeletedAt gorm.DeletedAt `gorm:"column:class_diaries_deleted_at;index"          json:"class_diaries_deleted_at,omitempty"`
}

func (ClassDiaryModel) TableName() string { return "class_diaries" }

func (m *ClassDiaryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassDiaryID == uuid.Nil {
		m.ClassDiaryID = uuid.New()
	}
	return nil
}
