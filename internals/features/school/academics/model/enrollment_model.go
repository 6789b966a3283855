// internals/features/school/academics/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status de matrícula
const (
	EnrollmentStatusActive      = "ACTIVE"
	EnrollmentStatusTransferred = "TRANSFERRED"
	EnrollmentStatusLeft        = "LEFT"
)

// EnrollmentModel é a matrícula do aluno na turma, a chave de junção entre
// aluno e fato de frequência. Somente leitura para o módulo de diário.
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:enrollments_id" json:"enrollments_id"`

	EnrollmentSectionID uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollments_section_status,priority:1;column:enrollments_section_id" json:"enrollments_section_id"`
	EnrollmentStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:enrollments_student_id" json:"enrollments_student_id"`
	EnrollmentSchoolID  uuid.UUID `gorm:"type:uuid;not null;column:enrollments_school_id"        json:"enrollments_school_id"`

	EnrollmentSchoolYear string `gorm:"not null;column:enrollments_school_year" json:"enrollments_school_year"`
	EnrollmentStatus     string `gorm:"not null;default:ACTIVE;index:idx_enrollments_section_status,priority:2;column:enrollments_status" json:"enrollments_status"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollments_created_at;autoCreateTime" json:"enrollments_created_at"`
	EnrollmentUpdatedAt *time.Time     `gorm:"column:enrollments_updated_at;autoUpdateTime" json:"enrollments_updated_at,omitempty"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollments_deleted_at;index"          json:"enrollments_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	return nil
}
