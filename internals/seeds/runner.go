// internals/seeds/runner.go
package seeds

import (
	academics "diarioclasse_backend/internals/seeds/academics"
	user "diarioclasse_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds popula os dados de demonstração. A ordem importa: os
// componentes curriculares resolvem o professor pelo e-mail semeado antes.
func RunAllSeeds(db *gorm.DB) {
	user.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	academics.SeedSectionsFromJSON(db, "internals/seeds/academics/data_sections.json")
}
