package route

import (
	diaryCtrl "diarioclasse_backend/internals/features/school/class_diaries/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClassDiaryTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := diaryCtrl.NewClassDiaryController(db)

	g := r.Group("/class-diaries")
	g.Post("/consolidate", ctrl.Consolidate)
	g.Get("/", ctrl.List)
	g.Get("/:component_id/:date", ctrl.GetByComponentAndDate)
}
