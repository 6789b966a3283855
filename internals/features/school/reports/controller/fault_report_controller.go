// internals/features/school/reports/controller/fault_report_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "diarioclasse_backend/internals/helpers"
)

// FaultReportController lê o livro oficial de faltas. Leitura pura: quem
// escreve no livro é só a consolidação do diário.
type FaultReportController struct {
	DB *gorm.DB
}

func NewFaultReportController(db *gorm.DB) *FaultReportController {
	return &FaultReportController{DB: db}
}

type sectionFaultRow struct {
	StudentFaultID           uuid.UUID `gorm:"column:student_faults_id"            json:"student_faults_id"`
	StudentFaultEnrollmentID uuid.UUID `gorm:"column:student_faults_enrollment_id" json:"student_faults_enrollment_id"`
	StudentID                uuid.UUID `gorm:"column:enrollments_student_id"       json:"student_id"`
	StudentFaultDate         time.Time `gorm:"column:student_faults_date"          json:"student_faults_date"`
	StudentFaultJustified    bool      `gorm:"column:student_faults_justified"     json:"student_faults_justified"`
	StudentFaultDiaryID      uuid.UUID `gorm:"column:student_faults_diary_id"      json:"student_faults_diary_id"`
}

/* ===================== FALTAS POR TURMA ===================== */
// GET /api/t/class-sections/:section_id/faults?start=YYYY-MM-DD&end=YYYY-MM-DD
func (ctrl *FaultReportController) ListSectionFaults(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("section_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID da turma inválido")
	}

	q := ctrl.DB.Table("student_faults").
		Select("student_faults_id, student_faults_enrollment_id, enrollments_student_id, student_faults_date, student_faults_justified, student_faults_diary_id").
		Joins("JOIN enrollments ON enrollments_id = student_faults_enrollment_id").
		Where("enrollments_section_id = ?", sectionID)

	if start := c.Query("start"); start != "" {
		d, err := time.Parse("2006-01-02", start)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Parâmetro start inválido")
		}
		q = q.Where("student_faults_date >= ?", d)
	}
	if end := c.Query("end"); end != "" {
		d, err := time.Parse("2006-01-02", end)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Parâmetro end inválido")
		}
		q = q.Where("student_faults_date <= ?", d)
	}

	p := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []sectionFaultRow
	if err := q.
		Order("student_faults_date ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
