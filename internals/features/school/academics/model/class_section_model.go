// internals/features/school/academics/model/class_section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassSectionModel struct {
	ClassSectionID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_sections_id" json:"class_sections_id"`

	// unidade escolar dona da turma
	ClassSectionSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:class_sections_school_id" json:"class_sections_school_id"`

	ClassSectionName       string `gorm:"not null;column:class_sections_name"        json:"class_sections_name"`
	ClassSectionSchoolYear string `gorm:"not null;column:class_sections_school_year" json:"class_sections_school_year"`

	ClassSectionCreatedAt time.Time      `gorm:"column:class_sections_created_at;autoCreateTime" json:"class_sections_created_at"`
	ClassSectionUpdatedAt *time.Time     `gorm:"column:class_sections_updated_at;autoUpdateTime" json:"class_sections_updated_at,omitempty"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_sections_deleted_at;index"          json:"class_sections_deleted_at,omitempty"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }

func (m *ClassSectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassSectionID == uuid.Nil {
		m.ClassSectionID = uuid.New()
	}
	return nil
}
