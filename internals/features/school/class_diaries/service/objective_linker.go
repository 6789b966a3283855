// internals/features/school/class_diaries/service/objective_linker.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "diarioclasse_backend/internals/features/school/class_diaries/model"
)

// ObjectiveInput é um objetivo curricular já resolvido pelo serviço de
// consulta externo (BNCC); chega pré-selecionado.
type ObjectiveInput struct {
	Code        string
	Description string
}

// ObjectiveLinker substitui o conjunto de objetivos do diário.
// Substituição, não merge: delete-all e depois bulk insert.
type ObjectiveLinker struct{}

func NewObjectiveLinker() *ObjectiveLinker { return &ObjectiveLinker{} }

func (l *ObjectiveLinker) Replace(tx *gorm.DB, diaryID uuid.UUID, objectives []ObjectiveInput) error {
	if err := tx.
		Where("class_diary_objectives_diary_id = ?", diaryID).
		Delete(&model.ClassDiaryObjectiveModel{}).Error; err != nil {
		return err
	}

	if len(objectives) == 0 {
		return nil
	}

	rows := make([]model.ClassDiaryObjectiveModel, 0, len(objectives))
	for _, o := range objectives {
		rows = append(rows, model.ClassDiaryObjectiveModel{
			ClassDiaryObjectiveDiaryID:     diaryID,
			ClassDiaryObjectiveCode:        o.Code,
			ClassDiaryObjectiveDescription: o.Description,
		})
	}
	return tx.Create(&rows).Error
}
