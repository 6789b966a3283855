// internals/features/school/class_diaries/service/main_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	academics "diarioclasse_backend/internals/features/school/academics/model"
	model "diarioclasse_backend/internals/features/school/class_diaries/model"
)

// newTestDB abre um sqlite em memória com o mesmo schema e o mesmo caminho
// transacional do Postgres de produção.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// banco em memória vive em uma única conexão
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&academics.ClassSectionModel{},
		&academics.CurricularComponentModel{},
		&academics.EnrollmentModel{},
		&model.ClassDiaryModel{},
		&model.ClassDiaryObjectiveModel{},
		&model.ClassDiaryAttendanceModel{},
		&model.StudentFaultModel{},
	))
	return db
}

func seedSection(t *testing.T, db *gorm.DB) academics.ClassSectionModel {
	t.Helper()
	section := academics.ClassSectionModel{
		ClassSectionSchoolID:   uuid.New(),
		ClassSectionName:       "9º Ano B",
		ClassSectionSchoolYear: "2024",
	}
	require.NoError(t, db.Create(&section).Error)
	return section
}

func seedComponent(t *testing.T, db *gorm.DB, sectionID, teacherID uuid.UUID) academics.CurricularComponentModel {
	t.Helper()
	component := academics.CurricularComponentModel{
		CurricularComponentSectionID:   sectionID,
		CurricularComponentTeacherID:   teacherID,
		CurricularComponentSubjectName: "Matemática",
		CurricularComponentIsActive:    true,
	}
	require.NoError(t, db.Create(&component).Error)
	return component
}

func seedEnrollment(t *testing.T, db *gorm.DB, section academics.ClassSectionModel, studentID uuid.UUID, status string) academics.EnrollmentModel {
	t.Helper()
	enrollment := academics.EnrollmentModel{
		EnrollmentSectionID:  section.ClassSectionID,
		EnrollmentStudentID:  studentID,
		EnrollmentSchoolID:   section.ClassSectionSchoolID,
		EnrollmentSchoolYear: section.ClassSectionSchoolYear,
		EnrollmentStatus:     status,
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return enrollment
}
