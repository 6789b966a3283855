// internals/helpers/token.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	userModel "diarioclasse_backend/internals/features/users/auth/model"
)

// GetUserIDFromToken lê o user_id colocado nos Locals pelo AuthMiddleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Não autenticado")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Token com user_id inválido")
	}
	return id, nil
}

// GetTeacherIDFromToken exige papel de professor (admin também passa).
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	role, _ := c.Locals("user_role").(string)
	if role != userModel.RoleTeacher && role != userModel.RoleAdmin {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Apenas professores podem acessar este recurso")
	}
	return id, nil
}
