// internals/features/school/class_diaries/service/situation_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "diarioclasse_backend/internals/features/school/class_diaries/model"
)

func TestMapSituation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{SituationPresent, model.AttendanceSituationPresent},
		{SituationAbsent, model.AttendanceSituationFault},
		{SituationAbsentExcused, model.AttendanceSituationFaultExcused},
		// qualquer coisa não reconhecida como falta vira PRESENT
		{"", model.AttendanceSituationPresent},
		{"LATE", model.AttendanceSituationPresent},
		{"absent", model.AttendanceSituationPresent},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MapSituation(tc.in), "MapSituation(%q)", tc.in)
	}
}

func TestIsFault(t *testing.T) {
	assert.False(t, IsFault(model.AttendanceSituationPresent))
	assert.True(t, IsFault(model.AttendanceSituationFault))
	assert.True(t, IsFault(model.AttendanceSituationFaultExcused))
}

func TestFaultJustified(t *testing.T) {
	assert.False(t, FaultJustified(model.AttendanceSituationFault))
	assert.True(t, FaultJustified(model.AttendanceSituationFaultExcused))
}
