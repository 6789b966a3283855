// internals/seeds/users/seed_users.go
package user

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"diarioclasse_backend/internals/features/users/auth/model"
)

type UserSeed struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de usuários:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao decodificar o JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("users_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Usuário '%s' já existe, pulando.", data.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Falha ao gerar hash para '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			UserFullName:     data.FullName,
			UserEmail:        data.Email,
			UserPasswordHash: string(hash),
			UserRole:         data.Role,
			UserIsActive:     true,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Falha ao criar usuário '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ Usuário '%s' criado (%s)", data.Email, data.Role)
	}
}
