// internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	DiaryRoutes "diarioclasse_backend/internals/features/school/class_diaries/route"
	ReportRoutes "diarioclasse_backend/internals/features/school/reports/route"
	AuthRoutes "diarioclasse_backend/internals/features/users/auth/route"
	authMiddleware "diarioclasse_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	AuthRoutes.AuthRoutes(api, db)

	// ===================== TEACHER (JWT) =====================
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := api.Group("/t", authMiddleware.AuthMiddleware())

	DiaryRoutes.ClassDiaryTeacherRoutes(teacher, db)
	ReportRoutes.FaultReportTeacherRoutes(teacher, db)
}
