// internals/features/school/class_diaries/service/consolidation_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	academics "diarioclasse_backend/internals/features/school/academics/model"
	model "diarioclasse_backend/internals/features/school/class_diaries/model"
)

// Objetivo principal de fallback quando a submissão não traz objetivos.
const (
	FallbackObjectiveCode        = "GENERAL"
	FallbackObjectiveDescription = "General Lesson"
)

// ConsolidateInput é a submissão de fim de aula, já validada pelo upstream.
type ConsolidateInput struct {
	ComponentID     uuid.UUID
	Date            time.Time
	Topic           *string
	Content         *string
	Notes           *string
	DurationMinutes int
	Objectives      []ObjectiveInput
	Attendance      []AttendanceItem

	// payload bruto da submissão, gravado no diário para auditoria
	Snapshot datatypes.JSON
}

// ConsolidationResult devolve o diário consolidado e quantos alunos da
// submissão foram pulados por não terem matrícula ativa na turma.
type ConsolidationResult struct {
	Diary           *model.ClassDiaryModel
	SkippedStudents int
}

// DiaryConsolidationService é o orquestrador: resolve o diário
// existente-ou-novo, força CONSOLIDATED, delega ao ObjectiveLinker e ao
// AttendanceReconciler e devolve o diário, tudo numa transação atômica.
type DiaryConsolidationService struct {
	DB         *gorm.DB
	resolver   *EnrollmentResolver
	linker     *ObjectiveLinker
	reconciler *AttendanceReconciler
}

func NewDiaryConsolidationService(db *gorm.DB) *DiaryConsolidationService {
	resolver := NewEnrollmentResolver()
	return &DiaryConsolidationService{
		DB:         db,
		resolver:   resolver,
		linker:     NewObjectiveLinker(),
		reconciler: NewAttendanceReconciler(resolver),
	}
}

func (s *DiaryConsolidationService) Consolidate(
	ctx context.Context, teacherID uuid.UUID, in ConsolidateInput,
) (*ConsolidationResult, error) {
	date := normalizeDate(in.Date)
	result := &ConsolidationResult{}
	var diary model.ClassDiaryModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) defesa em profundidade: o componente precisa ser do professor,
		// mesmo com o check já feito na camada de cima
		var component academics.CurricularComponentModel
		if err := tx.
			Where("curricular_components_id = ?", in.ComponentID).
			Where("curricular_components_is_active = ?", true).
			Take(&component).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrComponentNotFound
			}
			return err
		}
		if component.CurricularComponentTeacherID != teacherID {
			return ErrComponentNotOwned
		}

		// 2) diário existente para (componente, data)?
		found := true
		if err := tx.
			Where("class_diaries_component_id = ?", in.ComponentID).
			Where("class_diaries_date = ?", date).
			Take(&diary).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			found = false
		}

		// 3) objetivo principal denormalizado
		code, description := primaryObjective(in.Objectives)

		if !found {
			// unidade escolar dona vem da turma-mãe do componente
			var section academics.ClassSectionModel
			if err := tx.
				Where("class_sections_id = ?", component.CurricularComponentSectionID).
				Take(&section).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrComponentNotFound
				}
				return err
			}

			diary = model.ClassDiaryModel{
				ClassDiaryComponentID:          in.ComponentID,
				ClassDiaryDate:                 date,
				ClassDiarySchoolID:             section.ClassSectionSchoolID,
				ClassDiaryTeacherID:            teacherID,
				ClassDiaryTopic:                in.Topic,
				ClassDiaryContent:              in.Content,
				ClassDiaryNotes:                in.Notes,
				ClassDiaryDurationMinutes:      in.DurationMinutes,
				ClassDiaryObjectiveCode:        code,
				ClassDiaryObjectiveDescription: description,
				ClassDiaryStatus:               model.ClassDiaryStatusConsolidated,
				ClassDiaryLastSubmission:       in.Snapshot,
			}
			if err := tx.Create(&diary).Error; err != nil {
				// corrida de primeira criação: o constraint é a última defesa
				if isUniqueViolation(err) {
					return ErrDiaryConflict
				}
				return err
			}
		} else {
			// 4) upgrade DRAFT -> CONSOLIDATED, irreversível; campos sempre
			// sobrescritos pela submissão mais recente
			updates := map[string]any{
				"class_diaries_topic":                 in.Topic,
				"class_diaries_content":               in.Content,
				"class_diaries_notes":                 in.Notes,
				"class_diaries_duration_minutes":      in.DurationMinutes,
				"class_diaries_objective_code":        code,
				"class_diaries_objective_description": description,
				"class_diaries_status":                model.ClassDiaryStatusConsolidated,
				"class_diaries_teacher_id":            teacherID,
				"class_diaries_last_submission":       in.Snapshot,
			}
			if err := tx.Model(&model.ClassDiaryModel{}).
				Where("class_diaries_id = ?", diary.ClassDiaryID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		// 5) substitui o conjunto de objetivos
		if err := s.linker.Replace(tx, diary.ClassDiaryID, in.Objectives); err != nil {
			return err
		}

		// 6) frequência: payload vazio não mexe em presença nem no livro de
		// faltas (diferente de omitir um aluno num payload não-vazio)
		if len(in.Attendance) > 0 {
			studentIDs := make([]uuid.UUID, 0, len(in.Attendance))
			for _, it := range in.Attendance {
				studentIDs = append(studentIDs, it.StudentID)
			}
			enrollmentMap, skipped, err := s.resolver.Resolve(tx, component.CurricularComponentSectionID, studentIDs)
			if err != nil {
				return err
			}
			result.SkippedStudents = skipped

			if err := s.reconciler.Reconcile(
				tx, diary.ClassDiaryID, component.CurricularComponentSectionID, date, in.Attendance, enrollmentMap,
			); err != nil {
				return err
			}
		}

		// 7) devolve o diário como ficou gravado
		return tx.
			Where("class_diaries_id = ?", diary.ClassDiaryID).
			Take(&diary).Error
	})
	if err != nil {
		return nil, err
	}

	result.Diary = &diary
	return result, nil
}

// primaryObjective escolhe o objetivo denormalizado: primeiro da lista ou o
// fallback GENERAL. Descrição truncada na largura fixa da coluna.
func primaryObjective(objectives []ObjectiveInput) (string, string) {
	if len(objectives) == 0 {
		return FallbackObjectiveCode, truncateDescription(FallbackObjectiveDescription)
	}
	return objectives[0].Code, truncateDescription(objectives[0].Description)
}

func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= model.ClassDiaryObjectiveDescriptionMaxLen {
		return s
	}
	return string(runes[:model.ClassDiaryObjectiveDescriptionMaxLen])
}

// normalizeDate zera a hora em UTC. A identidade do diário é o dia.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
