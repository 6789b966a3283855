// internals/features/school/class_diaries/service/attendance_reconciler_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	academics "diarioclasse_backend/internals/features/school/academics/model"
	model "diarioclasse_backend/internals/features/school/class_diaries/model"
)

var lessonDate = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

func listFaults(t *testing.T, db *gorm.DB, date time.Time) []model.StudentFaultModel {
	t.Helper()
	var faults []model.StudentFaultModel
	require.NoError(t, db.Where("student_faults_date = ?", date).Find(&faults).Error)
	return faults
}

func listPresences(t *testing.T, db *gorm.DB, diaryID uuid.UUID) []model.ClassDiaryAttendanceModel {
	t.Helper()
	var rows []model.ClassDiaryAttendanceModel
	require.NoError(t, db.Where("class_diary_attendances_diary_id = ?", diaryID).Find(&rows).Error)
	return rows
}

func TestReconcileWritesPresenceAndFaults(t *testing.T) {
	db := newTestDB(t)
	section := seedSection(t, db)
	reconciler := NewAttendanceReconciler(NewEnrollmentResolver())
	diaryID := uuid.New()

	s1, s2 := uuid.New(), uuid.New()
	e1 := seedEnrollment(t, db, section, s1, academics.EnrollmentStatusActive)
	e2 := seedEnrollment(t, db, section, s2, academics.EnrollmentStatusActive)

	enrollmentMap := map[uuid.UUID]uuid.UUID{s1: e1.EnrollmentID, s2: e2.EnrollmentID}
	items := []AttendanceItem{
		{StudentID: s1, Situation: SituationAbsent},
		{StudentID: s2, Situation: SituationPresent},
	}
	require.NoError(t, reconciler.Reconcile(db, diaryID, section.ClassSectionID, lessonDate, items, enrollmentMap))

	presences := listPresences(t, db, diaryID)
	require.Len(t, presences, 2)
	bySituation := map[uuid.UUID]string{}
	for _, p := range presences {
		bySituation[p.ClassDiaryAttendanceEnrollmentID] = p.ClassDiaryAttendanceSituation
	}
	assert.Equal(t, model.AttendanceSituationFault, bySituation[e1.EnrollmentID])
	assert.Equal(t, model.AttendanceSituationPresent, bySituation[e2.EnrollmentID])

	faults := listFaults(t, db, lessonDate)
	require.Len(t, faults, 1)
	assert.Equal(t, e1.EnrollmentID, faults[0].StudentFaultEnrollmentID)
	assert.False(t, faults[0].StudentFaultJustified)
	assert.Equal(t, diaryID, faults[0].StudentFaultDiaryID)
}

func TestReconcileLedgerExclusivity(t *testing.T) {
	db := newTestDB(t)
	section := seedSection(t, db)
	reconciler := NewAttendanceReconciler(NewEnrollmentResolver())
	diaryID := uuid.New()

	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	e1 := seedEnrollment(t, db, section, s1, academics.EnrollmentStatusActive)
	e2 := seedEnrollment(t, db, section, s2, academics.EnrollmentStatusActive)
	e3 := seedEnrollment(t, db, section, s3, academics.EnrollmentStatusActive)

	// submissão parcial anterior deixou uma falta de s3 na mesma data
	require.NoError(t, db.Create(&model.StudentFaultModel{
		StudentFaultEnrollmentID: e3.EnrollmentID,
		StudentFaultDate:         lessonDate,
		StudentFaultDiaryID:      uuid.New(),
	}).Error)

	enrollmentMap := map[uuid.UUID]uuid.UUID{s1: e1.EnrollmentID, s2: e2.EnrollmentID}
	items := []AttendanceItem{
		{StudentID: s1, Situation: SituationAbsent},
		{StudentID: s2, Situation: SituationPresent},
	}
	require.NoError(t, reconciler.Reconcile(db, diaryID, section.ClassSectionID, lessonDate, items, enrollmentMap))

	// sobra exatamente a falta de s1; a de s3 foi purgada
	faults := listFaults(t, db, lessonDate)
	require.Len(t, faults, 1)
	assert.Equal(t, e1.EnrollmentID, faults[0].StudentFaultEnrollmentID)
}

func TestReconcileOmissionClearsFault(t *testing.T) {
	db := newTestDB(t)
	section := seedSection(t, db)
	reconciler := NewAttendanceReconciler(NewEnrollmentResolver())
	diaryID := uuid.New()

	s1 := uuid.New()
	e1 := seedEnrollment(t, db, section, s1, academics.EnrollmentStatusActive)
	enrollmentMap := map[uuid.UUID]uuid.UUID{s1: e1.EnrollmentID}

	require.NoError(t, reconciler.Reconcile(db, diaryID, section.ClassSectionID, lessonDate,
		[]AttendanceItem{{StudentID: s1, Situation: SituationAbsent}}, enrollmentMap))
	require.Len(t, listFaults(t, db, lessonDate), 1)

	// segunda consolidação marca s1 presente: a falta antiga sai do livro
	require.NoError(t, reconciler.Reconcile(db, diaryID, section.ClassSectionID, lessonDate,
		[]AttendanceItem{{StudentID: s1, Situation: SituationPresent}}, enrollmentMap))
	assert.Empty(t, listFaults(t, db, lessonDate))
}

func TestReconcileUpsertsPresence(t *testing.T) {
	db := newTestDB(t)
	section := seedSection(t, db)
	reconciler := NewAttendanceReconciler(NewEnrollmentResolver())
	diaryID := uuid.New()

	s1 := uuid.New()
	e1 := seedEnrollment(t, db, section, s1, academics.EnrollmentStatusActive)
	enrollmentMap := map[uuid.UUID]uuid.UUID{s1: e1.EnrollmentID}

	require.NoError(t, reconciler.Reconcile(db, diaryID, section.ClassSectionID, lessonDate,
		[]AttendanceItem{{StudentID: s1, Situation: SituationAbsent}}, enrollmentMap))
	require.NoError(t, reconciler.Reconcile(db, diaryID, section.ClassSectionID, lessonDate,
		[]AttendanceItem{{StudentID: s1, Situation: SituationAbsentExcused}}, enrollmentMap))

	// uma única linha de presença por (diário, matrícula), atualizada
	presences := listPresences(t, db, diaryID)
	require.Len(t, presences, 1)
	assert.Equal(t, model.AttendanceSituationFaultExcused, presences[0].ClassDiaryAttendanceSituation)

	// e a falta reescrita agora é justificada
	faults := listFaults(t, db, lessonDate)
	require.Len(t, faults, 1)
	assert.True(t, faults[0].StudentFaultJustified)
}

func TestReconcileDoesNotTouchOtherDates(t *testing.T) {
	db := newTestDB(t)
	section := seedSection(t, db)
	reconciler := NewAttendanceReconciler(NewEnrollmentResolver())

	s1 := uuid.New()
	e1 := seedEnrollment(t, db, section, s1, academics.EnrollmentStatusActive)
	enrollmentMap := map[uuid.UUID]uuid.UUID{s1: e1.EnrollmentID}

	otherDate := lessonDate.AddDate(0, 0, -1)
	require.NoError(t, db.Create(&model.StudentFaultModel{
		StudentFaultEnrollmentID: e1.EnrollmentID,
		StudentFaultDate:         otherDate,
		StudentFaultDiaryID:      uuid.New(),
	}).Error)

	require.NoError(t, reconciler.Reconcile(db, uuid.New(), section.ClassSectionID, lessonDate,
		[]AttendanceItem{{StudentID: s1, Situation: SituationPresent}}, enrollmentMap))

	// a purga é restrita à data consolidada
	assert.Len(t, listFaults(t, db, otherDate), 1)
}

func TestCollapseAttendanceLastWins(t *testing.T) {
	s1 := uuid.New()
	e1 := uuid.New()
	enrollmentMap := map[uuid.UUID]uuid.UUID{s1: e1}

	resolved := collapseAttendance([]AttendanceItem{
		{StudentID: s1, Situation: SituationAbsent},
		{StudentID: s1, Situation: SituationPresent},
	}, enrollmentMap)

	require.Len(t, resolved, 1)
	assert.Equal(t, model.AttendanceSituationPresent, resolved[0].Situation)
	// presente no payload final: não entra no livro de faltas
	assert.Empty(t, faultRows(uuid.New(), lessonDate, resolved))
}
