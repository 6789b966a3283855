// internals/features/school/class_diaries/controller/class_diary_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "diarioclasse_backend/internals/features/school/class_diaries/dto"
	model "diarioclasse_backend/internals/features/school/class_diaries/model"
	service "diarioclasse_backend/internals/features/school/class_diaries/service"
	helper "diarioclasse_backend/internals/helpers"
)

type ClassDiaryController struct {
	DB      *gorm.DB
	Service *service.DiaryConsolidationService
}

func NewClassDiaryController(db *gorm.DB) *ClassDiaryController {
	return &ClassDiaryController{
		DB:      db,
		Service: service.NewDiaryConsolidationService(db),
	}
}

/* ===================== CONSOLIDATE ===================== */
// POST /api/t/class-diaries/consolidate
func (ctrl *ClassDiaryController) Consolidate(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ConsolidateClassDiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	in, err := req.ToInput()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Data da aula inválida")
	}

	res, err := ctrl.Service.Consolidate(c.UserContext(), teacherID, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComponentNotOwned):
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrDiaryConflict):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrComponentNotFound):
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao consolidar o diário")
		}
	}

	return helper.JsonOK(c, "Diário consolidado com sucesso",
		dto.NewClassDiaryResponse(*res.Diary, res.SkippedStudents))
}

/* ===================== DETAIL ===================== */
// GET /api/t/class-diaries/:component_id/:date
func (ctrl *ClassDiaryController) GetByComponentAndDate(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	componentID, err := uuid.Parse(c.Params("component_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID do componente inválido")
	}
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Data inválida")
	}

	var diary model.ClassDiaryModel
	if err := ctrl.DB.
		Where("class_diaries_component_id = ?", componentID).
		Where("class_diaries_date = ?", date).
		Take(&diary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Diário não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if diary.ClassDiaryTeacherID != teacherID {
		return fiber.NewError(fiber.StatusForbidden, "Diário pertence a outro professor")
	}

	var objectives []model.ClassDiaryObjectiveModel
	if err := ctrl.DB.
		Where("class_diary_objectives_diary_id = ?", diary.ClassDiaryID).
		Order("class_diary_objectives_created_at ASC").
		Find(&objectives).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var attendance []model.ClassDiaryAttendanceModel
	if err := ctrl.DB.
		Where("class_diary_attendances_diary_id = ?", diary.ClassDiaryID).
		Find(&attendance).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.NewClassDiaryDetailResponse(diary, objectives, attendance))
}

/* ===================== LIST ===================== */
// GET /api/t/class-diaries?section_id=&page=&per_page=
func (ctrl *ClassDiaryController) List(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ClassDiaryModel{}).
		Where("class_diaries_teacher_id = ?", teacherID)

	if raw := c.Query("section_id"); raw != "" {
		sectionID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "section_id inválido")
		}
		q = q.Joins("JOIN curricular_components ON curricular_components_id = class_diaries_component_id").
			Where("curricular_components_section_id = ?", sectionID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var diaries []model.ClassDiaryModel
	if err := q.
		Order("class_diaries_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&diaries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.ClassDiaryResponse, 0, len(diaries))
	for _, d := range diaries {
		items = append(items, dto.NewClassDiaryResponse(d, 0))
	}

	return helper.JsonList(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
