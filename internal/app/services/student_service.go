package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/yigit/studentroster/internal/app/models"
	"github.com/yigit/studentroster/internal/app/models/dto"
	"github.com/yigit/studentroster/internal/pkg/apperrors"
	"github.com/yigit/studentroster/internal/pkg/logger"
)

// UnassignedSection groups students whose section column is missing or empty
const UnassignedSection = "Unassigned"

// StudentStore is the data access the student service needs
type StudentStore interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	ListActiveStudents(ctx context.Context) ([]*models.Student, error)
	SetSuspended(ctx context.Context, id int64, suspended bool, reason *string) error
}

// EventPublisher receives roster changes after they are committed
type EventPublisher interface {
	Publish(event models.Event)
}

// StudentService handles student roster operations
type StudentService struct {
	repo          StudentStore
	events        EventPublisher
	sectionColumn string
	now           func() time.Time
}

// NewStudentService creates a new student service instance. events may be nil.
func NewStudentService(repo StudentStore, events EventPublisher, sectionColumn string) *StudentService {
	return &StudentService{
		repo:          repo,
		events:        events,
		sectionColumn: sectionColumn,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// ListStudents returns every student ordered by id
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.repo.ListStudents(ctx)
}

// ListActiveStudents returns the students that are not suspended ordered by name
func (s *StudentService) ListActiveStudents(ctx context.Context) ([]*models.Student, error) {
	return s.repo.ListActiveStudents(ctx)
}

// SuspendStudent marks a student suspended. Suspending an already suspended
// student succeeds.
func (s *StudentService) SuspendStudent(ctx context.Context, id int64, reason *string) error {
	return s.setSuspended(ctx, id, true, normalizeReason(reason))
}

// UnsuspendStudent clears a student's suspension
func (s *StudentService) UnsuspendStudent(ctx context.Context, id int64) error {
	return s.setSuspended(ctx, id, false, nil)
}

func (s *StudentService) setSuspended(ctx context.Context, id int64, suspended bool, reason *string) error {
	// Identifiers are serial, nothing can match a non-positive one
	if id <= 0 {
		logger.Warn().Int64("studentID", id).Msg("Suspension change requested for non-positive student ID")
		return apperrors.ErrStudentNotFound
	}

	if err := s.repo.SetSuspended(ctx, id, suspended, reason); err != nil {
		return err
	}

	eventType := models.EventStudentUnsuspended
	if suspended {
		eventType = models.EventStudentSuspended
	}
	s.publish(models.Event{
		Type:      eventType,
		StudentID: id,
		Reason:    reason,
		Timestamp: s.now(),
	})
	return nil
}

func (s *StudentService) publish(event models.Event) {
	if s.events == nil {
		return
	}
	s.events.Publish(event)
}

// GetStats aggregates suspension counts overall and per section
func (s *StudentService) GetStats(ctx context.Context) (*dto.StudentStatsResponse, error) {
	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StudentStatsResponse{Success: true, Sections: []dto.SectionStats{}}
	bySection := make(map[string]*dto.SectionStats)

	for _, student := range students {
		section := strings.TrimSpace(student.Text(s.sectionColumn))
		if section == "" {
			section = UnassignedSection
		}

		entry, ok := bySection[section]
		if !ok {
			entry = &dto.SectionStats{Section: section}
			bySection[section] = entry
		}

		stats.Total++
		entry.Total++
		if student.IsSuspended() {
			stats.Suspended++
			entry.Suspended++
		} else {
			stats.Active++
			entry.Active++
		}
	}

	stats.SuspensionRate = suspensionRate(stats.Suspended, stats.Total)
	for _, entry := range bySection {
		entry.SuspensionRate = suspensionRate(entry.Suspended, entry.Total)
		stats.Sections = append(stats.Sections, *entry)
	}

	sort.Slice(stats.Sections, func(i, j int) bool {
		a, b := stats.Sections[i].Section, stats.Sections[j].Section
		if (a == UnassignedSection) != (b == UnassignedSection) {
			return b == UnassignedSection
		}
		return a < b
	})

	return stats, nil
}

// suspensionRate returns suspended/total as a percentage with one decimal
func suspensionRate(suspended, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(suspended)*1000/float64(total)) / 10
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
