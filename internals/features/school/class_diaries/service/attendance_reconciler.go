// internals/features/school/class_diaries/service/attendance_reconciler.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "diarioclasse_backend/internals/features/school/class_diaries/model"
)

// AttendanceItem é a presença de um aluno como submetida pelo professor.
type AttendanceItem struct {
	StudentID uuid.UUID
	Situation string // vocabulário do chamador: PRESENT | ABSENT | ABSENT_EXCUSED
	Note      *string
}

// resolvedAttendance é a situação final por matrícula, já no vocabulário de
// armazenamento. Aluno repetido no payload: a última ocorrência vence.
type resolvedAttendance struct {
	EnrollmentID uuid.UUID
	Situation    string
	Note         *string
}

// AttendanceReconciler grava a presença por aluno e espelha no livro oficial
// de faltas, removendo linhas obsoletas. Last-write-wins por data: aluno
// marcado ausente numa submissão anterior e omitido agora deixa de ter falta.
type AttendanceReconciler struct {
	resolver *EnrollmentResolver
}

func NewAttendanceReconciler(resolver *EnrollmentResolver) *AttendanceReconciler {
	return &AttendanceReconciler{resolver: resolver}
}

func (r *AttendanceReconciler) Reconcile(
	tx *gorm.DB,
	diaryID, sectionID uuid.UUID,
	date time.Time,
	items []AttendanceItem,
	enrollmentMap map[uuid.UUID]uuid.UUID,
) error {
	resolved := collapseAttendance(items, enrollmentMap)

	// 1) upsert de presença por (diário, matrícula)
	if presences := attendanceRows(diaryID, resolved); len(presences) > 0 {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "class_diary_attendances_diary_id"},
				{Name: "class_diary_attendances_enrollment_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"class_diary_attendances_situation",
				"class_diary_attendances_note",
				"class_diary_attendances_updated_at",
			}),
		}).Create(&presences).Error; err != nil {
			return err
		}
	}

	// 2) escopo da limpeza: todas as matrículas ativas da turma
	scope, err := r.resolver.AllActiveEnrollmentIDs(tx, sectionID)
	if err != nil {
		return err
	}

	// 3) purga faltas da data para qualquer submissão anterior da turma
	if len(scope) > 0 {
		if err := tx.
			Where("student_faults_date = ?", date).
			Where("student_faults_enrollment_id IN ?", scope).
			Delete(&model.StudentFaultModel{}).Error; err != nil {
			return err
		}
	}

	// 4) reinsere só as faltas da submissão atual
	faults := faultRows(diaryID, date, resolved)
	if len(faults) == 0 {
		return nil
	}
	return tx.Create(&faults).Error
}

// collapseAttendance traduz e deduplica a submissão: uma situação final por
// matrícula resolvida. Puro; aluno sem matrícula ativa fica de fora.
func collapseAttendance(items []AttendanceItem, enrollmentMap map[uuid.UUID]uuid.UUID) []resolvedAttendance {
	index := make(map[uuid.UUID]int, len(items))
	out := make([]resolvedAttendance, 0, len(items))
	for _, it := range items {
		enrollmentID, ok := enrollmentMap[it.StudentID]
		if !ok {
			continue
		}
		final := resolvedAttendance{
			EnrollmentID: enrollmentID,
			Situation:    MapSituation(it.Situation),
			Note:         it.Note,
		}
		if i, dup := index[enrollmentID]; dup {
			out[i] = final
			continue
		}
		index[enrollmentID] = len(out)
		out = append(out, final)
	}
	return out
}

func attendanceRows(diaryID uuid.UUID, resolved []resolvedAttendance) []model.ClassDiaryAttendanceModel {
	now := time.Now()
	rows := make([]model.ClassDiaryAttendanceModel, 0, len(resolved))
	for _, ra := range resolved {
		rows = append(rows, model.ClassDiaryAttendanceModel{
			ClassDiaryAttendanceDiaryID:      diaryID,
			ClassDiaryAttendanceEnrollmentID: ra.EnrollmentID,
			ClassDiaryAttendanceSituation:    ra.Situation,
			ClassDiaryAttendanceNote:         ra.Note,
			ClassDiaryAttendanceUpdatedAt:    &now,
		})
	}
	return rows
}

func faultRows(diaryID uuid.UUID, date time.Time, resolved []resolvedAttendance) []model.StudentFaultModel {
	rows := make([]model.StudentFaultModel, 0)
	for _, ra := range resolved {
		if !IsFault(ra.Situation) {
			continue
		}
		rows = append(rows, model.StudentFaultModel{
			StudentFaultEnrollmentID: ra.EnrollmentID,
			StudentFaultDate:         date,
			StudentFaultJustified:    FaultJustified(ra.Situation),
			StudentFaultDiaryID:      diaryID,
		})
	}
	return rows
}
