package dto

import "github.com/yigit/studentroster/internal/app/models"

// StudentListResponse is the envelope returned by the student list endpoints
type StudentListResponse struct {
	Success  bool              `json:"success" example:"true"`
	Count    int               `json:"count" example:"1"`
	Students []*models.Student `json:"students"`
}

// NewStudentListResponse wraps students in the list envelope. A nil slice is
// reported as an empty list.
func NewStudentListResponse(students []*models.Student) StudentListResponse {
	if students == nil {
		students = []*models.Student{}
	}
	return StudentListResponse{
		Success:  true,
		Count:    len(students),
		Students: students,
	}
}

// SuspendStudentRequest is the optional body of the suspend endpoint
type SuspendStudentRequest struct {
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=500" example:"Repeated absence"`
}

// SectionStats summarizes suspensions within one section
type SectionStats struct {
	Section        string  `json:"section" example:"CS-A"`
	Total          int     `json:"total" example:"30"`
	Active         int     `json:"active" example:"27"`
	Suspended      int     `json:"suspended" example:"3"`
	SuspensionRate float64 `json:"suspensionRate" example:"10"`
}

// StudentStatsResponse summarizes the roster overall and per section
type StudentStatsResponse struct {
	Success        bool           `json:"success" example:"true"`
	Total          int            `json:"total" example:"120"`
	Active         int            `json:"active" example:"111"`
	Suspended      int            `json:"suspended" example:"9"`
	SuspensionRate float64        `json:"suspensionRate" example:"7.5"`
	Sections       []SectionStats `json:"sections"`
}
