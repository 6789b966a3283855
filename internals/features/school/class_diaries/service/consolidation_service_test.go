// internals/features/school/class_diaries/service/consolidation_service_test.go
package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	academics "diarioclasse_backend/internals/features/school/academics/model"
	model "diarioclasse_backend/internals/features/school/class_diaries/model"
)

type consolidationFixture struct {
	db        *gorm.DB
	svc       *DiaryConsolidationService
	section   academics.ClassSectionModel
	component academics.CurricularComponentModel
	teacherID uuid.UUID
}

func newConsolidationFixture(t *testing.T) *consolidationFixture {
	t.Helper()
	db := newTestDB(t)
	section := seedSection(t, db)
	teacherID := uuid.New()
	component := seedComponent(t, db, section.ClassSectionID, teacherID)
	return &consolidationFixture{
		db:        db,
		svc:       NewDiaryConsolidationService(db),
		section:   section,
		component: component,
		teacherID: teacherID,
	}
}

func countDiaries(t *testing.T, db *gorm.DB, componentID uuid.UUID, date time.Time) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.ClassDiaryModel{}).
		Where("class_diaries_component_id = ?", componentID).
		Where("class_diaries_date = ?", date).
		Count(&n).Error)
	return n
}

func TestConsolidateCreatesConsolidatedEntry(t *testing.T) {
	fx := newConsolidationFixture(t)
	topic := "Números reais"

	res, err := fx.svc.Consolidate(context.Background(), fx.teacherID, ConsolidateInput{
		ComponentID:     fx.component.CurricularComponentID,
		Date:            lessonDate,
		Topic:           &topic,
		DurationMinutes: 50,
		Objectives: []ObjectiveInput{
			{Code: "EF09MA01", Description: "Necessidade dos números reais"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Diary)

	assert.Equal(t, model.ClassDiaryStatusConsolidated, res.Diary.ClassDiaryStatus)
	assert.Equal(t, "EF09MA01", res.Diary.ClassDiaryObjectiveCode)
	assert.Equal(t, fx.section.ClassSectionSchoolID, res.Diary.ClassDiarySchoolID)
	assert.Equal(t, fx.teacherID, res.Diary.ClassDiaryTeacherID)
	assert.EqualValues(t, 1, countDiaries(t, fx.db, fx.component.CurricularComponentID, lessonDate))
}

func TestConsolidateIsIdempotent(t *testing.T) {
	fx := newConsolidationFixture(t)
	in := ConsolidateInput{
		ComponentID:     fx.component.CurricularComponentID,
		Date:            lessonDate,
		DurationMinutes: 50,
		Objectives: []ObjectiveInput{
			{Code: "EF09MA01", Description: "Necessidade dos números reais"},
		},
	}

	first, err := fx.svc.Consolidate(context.Background(), fx.teacherID, in)
	require.NoError(t, err)
	second, err := fx.svc.Consolidate(context.Background(), fx.teacherID, in)
	require.NoError(t, err)

	// mesma identidade, mesmos campos visíveis, um único conjunto de objetivos
	assert.Equal(t, first.Diary.ClassDiaryID, second.Diary.ClassDiaryID)
	assert.Equal(t, first.Diary.ClassDiaryObjectiveCode, second.Diary.ClassDiaryObjectiveCode)
	assert.Equal(t, model.ClassDiaryStatusConsolidated, second.Diary.ClassDiaryStatus)
	assert.EqualValues(t, 1, countDiaries(t, fx.db, fx.component.CurricularComponentID, lessonDate))
	assert.Equal(t, []string{"EF09MA01"}, listObjectiveCodes(t, fx.db, first.Diary.ClassDiaryID))
}

func TestConsolidateUpgradesDraft(t *testing.T) {
	fx := newConsolidationFixture(t)

	draft := model.ClassDiaryModel{
		ClassDiaryComponentID:          fx.component.CurricularComponentID,
		ClassDiaryDate:                 lessonDate,
		ClassDiarySchoolID:             fx.section.ClassSectionSchoolID,
		ClassDiaryTeacherID:            fx.teacherID,
		ClassDiaryDurationMinutes:      50,
		ClassDiaryObjectiveCode:        FallbackObjectiveCode,
		ClassDiaryObjectiveDescription: FallbackObjectiveDescription,
		ClassDiaryStatus:               model.ClassDiaryStatusDraft,
	}
	require.NoError(t, fx.db.Create(&draft).Error)

	res, err := fx.svc.Consolidate(context.Background(), fx.teacherID, ConsolidateInput{
		ComponentID:     fx.component.CurricularComponentID,
		Date:            lessonDate,
		DurationMinutes: 45,
	})
	require.NoError(t, err)

	// upgrade irreversível DRAFT -> CONSOLIDATED sobre a mesma linha
	assert.Equal(t, draft.ClassDiaryID, res.Diary.ClassDiaryID)
	assert.Equal(t, model.ClassDiaryStatusConsolidated, res.Diary.ClassDiaryStatus)
	assert.Equal(t, 45, res.Diary.ClassDiaryDurationMinutes)
}

func TestConsolidateRejectsForeignComponent(t *testing.T) {
	fx := newConsolidationFixture(t)

	_, err := fx.svc.Consolidate(context.Background(), uuid.New(), ConsolidateInput{
		ComponentID:     fx.component.CurricularComponentID,
		Date:            lessonDate,
		DurationMinutes: 50,
	})
	assert.ErrorIs(t, err, ErrComponentNotOwned)
	assert.EqualValues(t, 0, countDiaries(t, fx.db, fx.component.CurricularComponentID, lessonDate))
}

func TestConsolidateRejectsUnknownComponent(t *testing.T) {
	fx := newConsolidationFixture(t)

	_, err := fx.svc.Consolidate(context.Background(), fx.teacherID, ConsolidateInput{
		ComponentID:     uuid.New(),
		Date:            lessonDate,
		DurationMinutes: 50,
	})
	assert.ErrorIs(t, err, ErrComponentNotFound)
}

func TestConsolidateTruncatesObjectiveDescription(t *testing.T) {
	fx := newConsolidationFixture(t)
	long := strings.Repeat("a", 150)

	res, err := fx.svc.Consolidate(context.Background(), fx.teacherID, ConsolidateInput{
		ComponentID:     fx.component.CurricularComponentID,
		Date:            lessonDate,
		DurationMinutes: 50,
		Objectives:      []ObjectiveInput{{Code: "EF09MA01", Description: long}},
	})
	require.NoError(t, err)

	assert.Len(t, res.Diary.ClassDiaryObjectiveDescription, model.ClassDiaryObjectiveDescriptionMaxLen)
	assert.Equal(t, long[:model.ClassDiaryObjectiveDescriptionMaxLen], res.Diary.ClassDiaryObjectiveDescription)
}

// Cenário: submissão sem objetivos com um aluno ausente.
func TestConsolidateScenarioAbsentStudent(t *testing.T) {
	fx := newConsolidationFixture(t)
	s1 := uuid.New()
	e1 := seedEnrollment(t, fx.db, fx.section, s1, academics.EnrollmentStatusActive)

	res, err := fx.svc.Consolidate(context.Background(), fx.teacherID, ConsolidateInput{
		ComponentID:     fx.component.CurricularComponentID,
		Date:            lessonDate,
		DurationMinutes: 50,
		Attendance:      []AttendanceItem{{StudentID: s1, Situation: SituationAbsent}},
	})
	require.NoError(t, err)

	// objetivo principal cai no fallback GENERAL
	assert.Equal(t, FallbackObjectiveCode, res.Diary.ClassDiaryObjectiveCode)
	assert.Equal(t, FallbackObjectiveDescription, res.Diary.ClassDiaryObjectiveDescription)

	faults := listFaults(t, fx.db, lessonDate)
	require.Len(t, faults, 1)
	assert.Equal(t, e1.EnrollmentID, faults[0].StudentFaultEnrollmentID)
	assert.False(t, faults[0].StudentFaultJustified)

	presences := listPresences(t, fx.db, res.Diary.ClassDiaryID)
	require.Len(t, presences, 1)
	assert.Equal(t, model.AttendanceSituationFault, presences[0].ClassDiaryAttendanceSituation)
}

// Cenário: mesma chamada repetida, agora com falta justificada.
func TestConsolidateScenarioAbsenceBecomesExcused(t *testing.T) {
	fx := newConsolidationFixture(t)
	s1 := uuid.New()
	e1 := seedEnrollment(t, fx.db, fx.section, s1, academics.EnrollmentStatusActive)

	in := ConsolidateInput{
		ComponentID:     fx.component.CurricularComponentID,
		Date:            lessonDate,
		DurationMinutes: 50,
		Attendance:      []AttendanceItem{{StudentID: s1, Situation: SituationAbsent}},
	}
	_, err := fx.svc.Consolidate(context.Background(), fx.teacherID, in)
	require.NoError(t, err)

	in.Attendance = []AttendanceItem{{StudentID: s1, Situation: SituationAbsentExcused}}
	res, err := fx.svc.Consolidate(context.Background(), fx.teacherID, in)
	require.NoError(t, err)

	assert.Equal(t, model.ClassDiaryStatusConsolidated, res.Diary.ClassDiaryStatus)
	faults := listFaults(t, fx.db, lessonDate)
	require.Len(t, faults, 1)
	assert.Equal(t, e1.EnrollmentID, faults[0].StudentFaultEnrollmentID)
	assert.True(t, faults[0].StudentFaultJustified)
}

func TestConsolidateEmptyAttendanceLeavesLedgerUntouched(t *testing.T) {
	fx := newConsolidationFixture(t)
	s1 := uuid.New()
	seedEnrollment(t, fx.db, fx.section, s1, academics.EnrollmentStatusActive)

	in := ConsolidateInput{
		ComponentID:     fx.component.CurricularComponentID,
		Date:            lessonDate,
		DurationMinutes: 50,
		Attendance:      []AttendanceItem{{StudentID: s1, Situation: SituationAbsent}},
	}
	_, err := fx.svc.Consolidate(context.Background(), fx.teacherID, in)
	require.NoError(t, err)
	require.Len(t, listFaults(t, fx.db, lessonDate), 1)

	// payload de frequência vazio não limpa presença nem livro de faltas
	in.Attendance = nil
	_, err = fx.svc.Consolidate(context.Background(), fx.teacherID, in)
	require.NoError(t, err)
	assert.Len(t, listFaults(t, fx.db, lessonDate), 1)
}

func TestConsolidateReportsSkippedStudents(t *testing.T) {
	fx := newConsolidationFixture(t)
	s1 := uuid.New()
	seedEnrollment(t, fx.db, fx.section, s1, academics.EnrollmentStatusActive)

	res, err := fx.svc.Consolidate(context.Background(), fx.teacherID, ConsolidateInput{
		ComponentID:     fx.component.CurricularComponentID,
		Date:            lessonDate,
		DurationMinutes: 50,
		Attendance: []AttendanceItem{
			{StudentID: s1, Situation: SituationPresent},
			{StudentID: uuid.New(), Situation: SituationAbsent}, // sem matrícula
		},
	})
	require.NoError(t, err)

	// referência ruim não derruba a consolidação, só é contada
	assert.Equal(t, 1, res.SkippedStudents)
	assert.Empty(t, listFaults(t, fx.db, lessonDate))
}

func TestConsolidateAtomicOnFailure(t *testing.T) {
	fx := newConsolidationFixture(t)

	// força a falha do passo de frequência derrubando a tabela do livro
	require.NoError(t, fx.db.Migrator().DropTable(&model.StudentFaultModel{}))

	s1 := uuid.New()
	seedEnrollment(t, fx.db, fx.section, s1, academics.EnrollmentStatusActive)

	_, err := fx.svc.Consolidate(context.Background(), fx.teacherID, ConsolidateInput{
		ComponentID:     fx.component.CurricularComponentID,
		Date:            lessonDate,
		DurationMinutes: 50,
		Attendance:      []AttendanceItem{{StudentID: s1, Situation: SituationAbsent}},
	})
	require.Error(t, err)

	// nada persistiu: nem o diário, nem objetivos, nem presença
	assert.EqualValues(t, 0, countDiaries(t, fx.db, fx.component.CurricularComponentID, lessonDate))
	var n int64
	require.NoError(t, fx.db.Model(&model.ClassDiaryAttendanceModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUniqueConstraintGuardsConcurrentCreate(t *testing.T) {
	fx := newConsolidationFixture(t)

	first := model.ClassDiaryModel{
		ClassDiaryComponentID:          fx.component.CurricularComponentID,
		ClassDiaryDate:                 lessonDate,
		ClassDiarySchoolID:             fx.section.ClassSectionSchoolID,
		ClassDiaryTeacherID:            fx.teacherID,
		ClassDiaryDurationMinutes:      50,
		ClassDiaryObjectiveCode:        FallbackObjectiveCode,
		ClassDiaryObjectiveDescription: FallbackObjectiveDescription,
		ClassDiaryStatus:               model.ClassDiaryStatusConsolidated,
	}
	require.NoError(t, fx.db.Create(&first).Error)

	// segunda criação para o mesmo par (componente, data): o constraint é a
	// última defesa e o erro é reconhecido como violação de unicidade
	dup := first
	dup.ClassDiaryID = uuid.Nil
	err := fx.db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))
}

func TestPrimaryObjectiveFallback(t *testing.T) {
	code, description := primaryObjective(nil)
	assert.Equal(t, FallbackObjectiveCode, code)
	assert.Equal(t, FallbackObjectiveDescription, description)

	code, description = primaryObjective([]ObjectiveInput{
		{Code: "EF09MA01", Description: "Necessidade dos números reais"},
		{Code: "EF09MA02", Description: "Potências"},
	})
	assert.Equal(t, "EF09MA01", code)
	assert.Equal(t, "Necessidade dos números reais", description)
}

func TestNormalizeDateDropsTime(t *testing.T) {
	in := time.Date(2024, time.March, 10, 15, 42, 7, 0, time.FixedZone("BRT", -3*3600))
	got := normalizeDate(in)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), got)
}
