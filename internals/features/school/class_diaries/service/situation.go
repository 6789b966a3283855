// internals/features/school/class_diaries/service/situation.go
package service

import (
	model "diarioclasse_backend/internals/features/school/class_diaries/model"
)

// Vocabulário do chamador (validado no DTO).
const (
	SituationPresent       = "PRESENT"
	SituationAbsent        = "ABSENT"
	SituationAbsentExcused = "ABSENT_EXCUSED"
)

// MapSituation traduz o vocabulário do chamador para o de armazenamento.
// Tradução 1:1 e exaustiva; qualquer valor não reconhecido como falta vira
// PRESENT por contrato.
func MapSituation(situation string) string {
	switch situation {
	case SituationAbsent:
		return model.AttendanceSituationFault
	case SituationAbsentExcused:
		return model.AttendanceSituationFaultExcused
	case SituationPresent:
		return model.AttendanceSituationPresent
	default:
		return model.AttendanceSituationPresent
	}
}

// IsFault diz se a situação armazenada conta como falta oficial.
func IsFault(stored string) bool {
	return stored == model.AttendanceSituationFault || stored == model.AttendanceSituationFaultExcused
}

// FaultJustified deriva o booleano `justified` do livro de faltas.
func FaultJustified(stored string) bool {
	return stored == model.AttendanceSituationFaultExcused
}
