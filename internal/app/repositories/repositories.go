package repositories

import (
	"github.com/yigit/studentroster/internal/config"
	"github.com/yigit/studentroster/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(gateway db.Gateway, cfg *config.Config) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(gateway, cfg.Database.Table, cfg.Students.ReasonColumn),
	}
}
