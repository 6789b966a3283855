// internals/features/school/class_diaries/dto/class_diary_dto.go
package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "diarioclasse_backend/internals/features/school/class_diaries/model"
	service "diarioclasse_backend/internals/features/school/class_diaries/service"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type ConsolidateObjectiveRequest struct {
	ObjectiveCode        string `json:"objective_code"        validate:"required,max=40"`
	ObjectiveDescription string `json:"objective_description" validate:"required"`
}

type ConsolidateAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Situation string    `json:"situation"  validate:"required,oneof=PRESENT ABSENT ABSENT_EXCUSED"`
	Note      *string   `json:"note"       validate:"omitempty,max=255"`
}

// ConsolidateClassDiaryRequest é a submissão de fim de aula do professor.
type ConsolidateClassDiaryRequest struct {
	ClassDiaryComponentID uuid.UUID `json:"class_diary_component_id" validate:"required"`

	// data da aula, ISO-8601 (só o dia)
	ClassDiaryDate string `json:"class_diary_date" validate:"required,datetime=2006-01-02"`

	ClassDiaryTopic   *string `json:"class_diary_topic"   validate:"omitempty,max=255"`
	ClassDiaryContent *string `json:"class_diary_content" validate:"omitempty"`
	ClassDiaryNotes   *string `json:"class_diary_notes"   validate:"omitempty"`

	ClassDiaryDurationMinutes int `json:"class_diary_duration_minutes" validate:"required,min=1"`

	ClassDiaryObjectives []ConsolidateObjectiveRequest  `json:"class_diary_objectives" validate:"omitempty,dive"`
	ClassDiaryAttendance []ConsolidateAttendanceRequest `json:"class_diary_attendance" validate:"omitempty,dive"`
}

// ToInput converte a request no input do serviço. O snapshot é a própria
// request serializada, gravada no diário para auditoria.
func (r ConsolidateClassDiaryRequest) ToInput() (service.ConsolidateInput, error) {
	date, err := time.Parse("2006-01-02", r.ClassDiaryDate)
	if err != nil {
		return service.ConsolidateInput{}, err
	}

	objectives := make([]service.ObjectiveInput, 0, len(r.ClassDiaryObjectives))
	for _, o := range r.ClassDiaryObjectives {
		objectives = append(objectives, service.ObjectiveInput{
			Code:        o.ObjectiveCode,
			Description: o.ObjectiveDescription,
		})
	}

	attendance := make([]service.AttendanceItem, 0, len(r.ClassDiaryAttendance))
	for _, a := range r.ClassDiaryAttendance {
		attendance = append(attendance, service.AttendanceItem{
			StudentID: a.StudentID,
			Situation: a.Situation,
			Note:      a.Note,
		})
	}

	raw, err := sonic.Marshal(r)
	if err != nil {
		return service.ConsolidateInput{}, err
	}

	return service.ConsolidateInput{
		ComponentID:     r.ClassDiaryComponentID,
		Date:            date,
		Topic:           r.ClassDiaryTopic,
		Content:         r.ClassDiaryContent,
		Notes:           r.ClassDiaryNotes,
		DurationMinutes: r.ClassDiaryDurationMinutes,
		Objectives:      objectives,
		Attendance:      attendance,
		Snapshot:        datatypes.JSON(raw),
	}, nil
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ClassDiaryResponse struct {
	ClassDiaryID          uuid.UUID `json:"class_diaries_id"`
	ClassDiaryComponentID uuid.UUID `json:"class_diaries_component_id"`
	ClassDiaryDate        string    `json:"class_diaries_date"`
	ClassDiarySchoolID    uuid.UUID `json:"class_diaries_school_id"`
	ClassDiaryTeacherID   uuid.UUID `json:"class_diaries_teacher_id"`

	ClassDiaryTopic   *string `json:"class_diaries_topic,omitempty"`
	ClassDiaryContent *string `json:"class_diaries_content,omitempty"`
	ClassDiaryNotes   *string `json:"class_diaries_notes,omitempty"`

	ClassDiaryDurationMinutes int `json:"class_diaries_duration_minutes"`

	ClassDiaryObjectiveCode        string `json:"class_diaries_objective_code"`
	ClassDiaryObjectiveDescription string `json:"class_diaries_objective_description"`

	ClassDiaryStatus string `json:"class_diaries_status"`

	ClassDiaryCreatedAt time.Time  `json:"class_diaries_created_at"`
	ClassDiaryUpdatedAt *time.Time `json:"class_diaries_updated_at,omitempty"`

	// alunos submetidos sem matrícula ativa (pulados pela consolidação)
	SkippedStudents int `json:"skipped_students"`
}

func NewClassDiaryResponse(m model.ClassDiaryModel, skipped int) ClassDiaryResponse {
	return ClassDiaryResponse{
		ClassDiaryID:                   m.ClassDiaryID,
		ClassDiaryComponentID:          m.ClassDiaryComponentID,
		ClassDiaryDate:                 m.ClassDiaryDate.Format("2006-01-02"),
		ClassDiarySchoolID:             m.ClassDiarySchoolID,
		ClassDiaryTeacherID:            m.ClassDiaryTeacherID,
		ClassDiaryTopic:                m.ClassDiaryTopic,
		ClassDiaryContent:              m.ClassDiaryContent,
		ClassDiaryNotes:                m.ClassDiaryNotes,
		ClassDiaryDurationMinutes:      m.ClassDiaryDurationMinutes,
		ClassDiaryObjectiveCode:        m.ClassDiaryObjectiveCode,
		ClassDiaryObjectiveDescription: m.ClassDiaryObjectiveDescription,
		ClassDiaryStatus:               m.ClassDiaryStatus,
		ClassDiaryCreatedAt:            m.ClassDiaryCreatedAt,
		ClassDiaryUpdatedAt:            m.ClassDiaryUpdatedAt,
		SkippedStudents:                skipped,
	}
}

type ClassDiaryObjectiveResponse struct {
	ClassDiaryObjectiveID          uuid.UUID `json:"class_diary_objectives_id"`
	ClassDiaryObjectiveCode        string    `json:"class_diary_objectives_code"`
	ClassDiaryObjectiveDescription string    `json:"class_diary_objectives_description"`
}

type ClassDiaryAttendanceResponse struct {
	ClassDiaryAttendanceID           uuid.UUID `json:"class_diary_attendances_id"`
	ClassDiaryAttendanceEnrollmentID uuid.UUID `json:"class_diary_attendances_enrollment_id"`
	ClassDiaryAttendanceSituation    string    `json:"class_diary_attendances_situation"`
	ClassDiaryAttendanceNote         *string   `json:"class_diary_attendances_note,omitempty"`
}

// ClassDiaryDetailResponse é a leitura completa do diário consolidado.
type ClassDiaryDetailResponse struct {
	ClassDiaryResponse
	ClassDiaryObjectives []ClassDiaryObjectiveResponse  `json:"class_diary_objectives"`
	ClassDiaryAttendance []ClassDiaryAttendanceResponse `json:"class_diary_attendance"`
}

func NewClassDiaryDetailResponse(
	m model.ClassDiaryModel,
	objectives []model.ClassDiaryObjectiveModel,
	attendance []model.ClassDiaryAttendanceModel,
) ClassDiaryDetailResponse {
	objs := make([]ClassDiaryObjectiveResponse, 0, len(objectives))
	for _, o := range objectives {
		objs = append(objs, ClassDiaryObjectiveResponse{
			ClassDiaryObjectiveID:          o.ClassDiaryObjectiveID,
			ClassDiaryObjectiveCode:        o.ClassDiaryObjectiveCode,
			ClassDiaryObjectiveDescription: o.ClassDiaryObjectiveDescription,
		})
	}
	atts := make([]ClassDiaryAttendanceResponse, 0, len(attendance))
	for _, a := range attendance {
		atts = append(atts, ClassDiaryAttendanceResponse{
			ClassDiaryAttendanceID:           a.ClassDiaryAttendanceID,
			ClassDiaryAttendanceEnrollmentID: a.ClassDiaryAttendanceEnrollmentID,
			ClassDiaryAttendanceSituation:    a.ClassDiaryAttendanceSituation,
			ClassDiaryAttendanceNote:         a.ClassDiaryAttendanceNote,
		})
	}
	return ClassDiaryDetailResponse{
		ClassDiaryResponse:   NewClassDiaryResponse(m, 0),
		ClassDiaryObjectives: objs,
		ClassDiaryAttendance: atts,
	}
}
