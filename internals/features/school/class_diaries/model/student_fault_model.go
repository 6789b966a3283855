// internals/features/school/class_diaries/model/student_fault_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentFaultModel é o livro oficial de faltas, lido pelo boletim e pelos
// relatórios. Existe apenas para FAULT / FAULT_EXCUSED. A consolidação é a
// única dona da limpeza por data: para uma data, todas as linhas das
// matrículas da turma são apagadas e só as faltas da submissão atual voltam.
type StudentFaultModel struct {
	StudentFaultID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_faults_id" json:"student_faults_id"`

	StudentFaultEnrollmentID uuid.UUID `gorm:"type:uuid;not null;index:idx_student_faults_date_enrollment,priority:2;column:student_faults_enrollment_id" json:"student_faults_enrollment_id"`
	StudentFaultDate         time.Time `gorm:"type:date;not null;index:idx_student_faults_date_enrollment,priority:1;column:student_faults_date"           json:"student_faults_date"`

	StudentFaultJustified bool `gorm:"not null;default:false;column:student_faults_justified" json:"student_faults_justified"`

	// proveniência: diário que gravou a falta
	StudentFaultDiaryID uuid.UUID `gorm:"type:uuid;not null;index;column:student_faults_diary_id" json:"student_faults_diary_id"`

	StudentFaultCreatedAt time.Time `gorm:"column:student_faults_created_at;autoCreateTime" json:"student_faults_created_at"`
}

func (StudentFaultModel) TableName() string { return "student_faults" }

func (m *StudentFaultModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentFaultID == uuid.Nil {
		m.StudentFaultID = uuid.New()
	}
	return nil
}
