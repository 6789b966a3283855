// internals/features/school/class_diaries/service/errors.go
package service

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Erros de domínio da consolidação. O controller traduz para HTTP.
var (
	// componente curricular não pertence ao professor que submeteu
	ErrComponentNotOwned = errors.New("componente curricular não pertence ao professor")

	// componente inexistente ou inativo, entrada malformada que passou do upstream
	ErrComponentNotFound = errors.New("componente curricular não encontrado")

	// criação concorrente perdeu a corrida do par (componente, data)
	ErrDiaryConflict = errors.New("já existe diário para este componente nesta data")
)

// isUniqueViolation reconhece violação de unicidade vinda do Postgres (23505),
// do tradutor do GORM ou do sqlite usado nos testes.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
