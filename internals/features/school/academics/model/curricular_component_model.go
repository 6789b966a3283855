// internals/features/school/academics/model/curricular_component_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurricularComponentModel liga uma disciplina a uma turma e ao professor
// responsável. É a identidade do diário de classe: (componente, data).
type CurricularComponentModel struct {
	CurricularComponentID uuid.UUID `gorm:"type:uuid;primaryKey;column:curricular_components_id" json:"curricular_components_id"`

	CurricularComponentSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:curricular_components_section_id" json:"curricular_components_section_id"`
	CurricularComponentTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:curricular_components_teacher_id" json:"curricular_components_teacher_id"`

	CurricularComponentSubjectName string `gorm:"not null;column:curricular_components_subject_name" json:"curricular_components_subject_name"`

	CurricularComponentIsActive bool `gorm:"not null;default:true;column:curricular_components_is_active" json:"curricular_components_is_active"`

	CurricularComponentCreatedAt time.Time      `gorm:"column:curricular_components_created_at;autoCreateTime" json:"curricular_components_created_at"`
	CurricularComponentUpdatedAt *time.Time     `gorm:"column:curricular_components_updated_at;autoUpdateTime" json:"curricular_components_updated_at,omitempty"`
	CurricularComponentDeletedAt gorm.DeletedAt `gorm:"column:curricular_components_deleted_at;index"          json:"curricular_components_deleted_at,omitempty"`
}

func (CurricularComponentModel) TableName() string { return "curricular_components" }

func (m *CurricularComponentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CurricularComponentID == uuid.Nil {
		m.CurricularComponentID = uuid.New()
	}
	return nil
}
