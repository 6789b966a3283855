// internals/features/school/class_diaries/service/enrollment_resolver.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	academics "diarioclasse_backend/internals/features/school/academics/model"
)

// EnrollmentResolver resolve matrículas ativas da turma. Somente leitura;
// recebe o tx da consolidação para enxergar o mesmo snapshot.
type EnrollmentResolver struct{}

func NewEnrollmentResolver() *EnrollmentResolver { return &EnrollmentResolver{} }

// Resolve mapeia studentID -> enrollmentID, restrito a matrículas ACTIVE da
// turma. Aluno submetido sem matrícula ativa é pulado em silêncio (política:
// a consolidação não falha por uma referência ruim); o total pulado volta
// para o chamador decidir se expõe um aviso.
func (r *EnrollmentResolver) Resolve(
	tx *gorm.DB, sectionID uuid.UUID, studentIDs []uuid.UUID,
) (map[uuid.UUID]uuid.UUID, int, error) {
	out := make(map[uuid.UUID]uuid.UUID, len(studentIDs))
	if len(studentIDs) == 0 {
		return out, 0, nil
	}

	type row struct {
		EnrollmentID uuid.UUID `gorm:"column:enrollments_id"`
		StudentID    uuid.UUID `gorm:"column:enrollments_student_id"`
	}
	var rows []row
	if err := tx.Model(&academics.EnrollmentModel{}).
		Select("enrollments_id, enrollments_student_id").
		Where("enrollments_section_id = ?", sectionID).
		Where("enrollments_status = ?", academics.EnrollmentStatusActive).
		Where("enrollments_student_id IN ?", studentIDs).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	for _, rw := range rows {
		out[rw.StudentID] = rw.EnrollmentID
	}

	// conta só IDs distintos submetidos que não resolveram
	distinct := make(map[uuid.UUID]struct{}, len(studentIDs))
	for _, id := range studentIDs {
		distinct[id] = struct{}{}
	}
	skipped := len(distinct) - len(out)
	if skipped < 0 {
		skipped = 0
	}
	return out, skipped, nil
}

// AllActiveEnrollmentIDs devolve todas as matrículas ativas da turma, o
// escopo da limpeza do livro de faltas por data.
func (r *EnrollmentResolver) AllActiveEnrollmentIDs(tx *gorm.DB, sectionID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := tx.Model(&academics.EnrollmentModel{}).
		Where("enrollments_section_id = ?", sectionID).
		Where("enrollments_status = ?", academics.EnrollmentStatusActive).
		Pluck("enrollments_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
