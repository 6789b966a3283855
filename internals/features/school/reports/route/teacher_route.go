package route

import (
	reportCtrl "diarioclasse_backend/internals/features/school/reports/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FaultReportTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportCtrl.NewFaultReportController(db)

	g := r.Group("/class-sections")
	g.Get("/:section_id/faults", ctrl.ListSectionFaults)
}
