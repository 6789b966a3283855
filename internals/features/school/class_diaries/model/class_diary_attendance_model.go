// internals/features/school/class_diaries/model/class_diary_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vocabulário de armazenamento da situação de presença.
const (
	AttendanceSituationPresent      = "PRESENT"
	AttendanceSituationFault        = "FAULT"
	AttendanceSituationFaultExcused = "FAULT_EXCUSED"
)

// ClassDiaryAttendanceModel guarda a situação por aluno em uma aula.
// Par (diário, matrícula) é único; upsert a cada consolidação, nunca delete.
type ClassDiaryAttendanceModel struct {
	ClassDiaryAttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_diary_attendances_id" json:"class_diary_attendances_id"`

	ClassDiaryAttendanceDiaryID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_diary_attendances_diary_enrollment,priority:1;column:class_diary_attendances_diary_id"      json:"class_diary_attendances_diary_id"`
	ClassDiaryAttendanceEnrollmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_diary_attendances_diary_enrollment,priority:2;column:class_diary_attendances_enrollment_id" json:"class_diary_attendances_enrollment_id"`

	ClassDiaryAttendanceSituation string  `gorm:"not null;column:class_diary_attendances_situation" json:"class_diary_attendances_situation"`
	ClassDiaryAttendanceNote      *string `gorm:"column:class_diary_attendances_note"               json:"class_diary_attendances_note,omitempty"`

	ClassDiaryAttendanceCreatedAt time.Time  `gorm:"column:class_diary_attendances_created_at;autoCreateTime" json:"class_diary_attendances_created_at"`
	ClassDiaryAttendanceUpdatedAt *time.Time `gorm:"column:class_diary_attendances_updated_at;autoUpdateTime" json:"class_diary_attendances_updated_at,omitempty"`
}

func (ClassDiaryAttendanceModel) TableName() string { return "class_diary_attendances" }

func (m *ClassDiaryAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassDiaryAttendanceID == uuid.Nil {
		m.ClassDiaryAttendanceID = uuid.New()
	}
	return nil
}
