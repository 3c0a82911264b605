// Services defined in this package:
// - StudentService: Handles roster listing, suspension changes and statistics
package services

import (
	"github.com/yigit/studentroster/internal/app/repositories"
	"github.com/yigit/studentroster/internal/config"
)

// Services holds all the service instances
type Services struct {
	StudentService *StudentService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, events EventPublisher, cfg *config.Config) *Services {
	return &Services{
		StudentService: NewStudentService(repos.StudentRepository, events, cfg.Students.SectionColumn),
	}
}
