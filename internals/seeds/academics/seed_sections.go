// internals/seeds/academics/seed_sections.go
package academics

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"diarioclasse_backend/internals/features/school/academics/model"
	usermodel "diarioclasse_backend/internals/features/users/auth/model"
)

type ComponentSeed struct {
	SubjectName  string `json:"subject_name"`
	TeacherEmail string `json:"teacher_email"`
}

type SectionSeed struct {
	SchoolID   string          `json:"school_id"`
	Name       string          `json:"name"`
	SchoolYear string          `json:"school_year"`
	Components []ComponentSeed `json:"components"`
	Students   []string        `json:"students"`
}

func SeedSectionsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de turmas:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o JSON: %v", err)
	}

	var inputs []SectionSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao decodificar o JSON: %v", err)
	}

	for _, data := range inputs {
		schoolID, err := uuid.Parse(data.SchoolID)
		if err != nil {
			log.Printf("❌ school_id inválido para a turma '%s': %v", data.Name, err)
			continue
		}

		var existing model.ClassSectionModel
		if err := db.Where("class_sections_name = ? AND class_sections_school_year = ?", data.Name, data.SchoolYear).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Turma '%s' (%s) já existe, pulando.", data.Name, data.SchoolYear)
			continue
		}

		section := model.ClassSectionModel{
			ClassSectionSchoolID:   schoolID,
			ClassSectionName:       data.Name,
			ClassSectionSchoolYear: data.SchoolYear,
		}
		if err := db.Create(&section).Error; err != nil {
			log.Printf("❌ Falha ao criar turma '%s': %v", data.Name, err)
			continue
		}

		for _, comp := range data.Components {
			var teacher usermodel.UserModel
			if err := db.Where("users_email = ?", comp.TeacherEmail).First(&teacher).Error; err != nil {
				log.Printf("❌ Professor '%s' não encontrado para '%s', pulando componente.", comp.TeacherEmail, comp.SubjectName)
				continue
			}
			component := model.CurricularComponentModel{
				CurricularComponentSectionID:   section.ClassSectionID,
				CurricularComponentTeacherID:   teacher.UserID,
				CurricularComponentSubjectName: comp.SubjectName,
				CurricularComponentIsActive:    true,
			}
			if err := db.Create(&component).Error; err != nil {
				log.Printf("❌ Falha ao criar componente '%s': %v", comp.SubjectName, err)
			}
		}

		for _, raw := range data.Students {
			studentID, err := uuid.Parse(raw)
			if err != nil {
				log.Printf("❌ student_id inválido '%s': %v", raw, err)
				continue
			}
			enrollment := model.EnrollmentModel{
				EnrollmentSectionID:  section.ClassSectionID,
				EnrollmentStudentID:  studentID,
				EnrollmentSchoolID:   schoolID,
				EnrollmentSchoolYear: data.SchoolYear,
				EnrollmentStatus:     model.EnrollmentStatusActive,
			}
			if err := db.Create(&enrollment).Error; err != nil {
				log.Printf("❌ Falha ao matricular aluno '%s': %v", raw, err)
			}
		}

		log.Printf("✅ Turma '%s' criada com %d componentes e %d matrículas",
			data.Name, len(data.Components), len(data.Students))
	}
}
