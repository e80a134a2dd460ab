package mentorship

import (
	"github.com/encodersih/alumni-connect/internal/app/system/matching"
	"github.com/encodersih/alumni-connect/internal/domain/models"
)

// Matching result types accepted by GET /matching.
const (
	TypeRecommendations = "recommendations"
	TypeAnalytics       = "analytics"
)

type recommendationsResponse struct {
	Student models.Student `json:"student"`
	matching.Recommendations
	Analytics *matching.Analytics `json:"analytics,omitempty"`
}

type analyticsResponse struct {
	Analytics matching.Analytics `json:"analytics"`
}

type requestListResponse struct {
	Requests   []models.MentorshipRequest `json:"requests"`
	Total      int                        `json:"total"`
	Page       int                        `json:"page"`
	PageSize   int                        `json:"page_size"`
	TotalPages int                        `json:"total_pages"`
}

// createRequestInput is the POST /requests body.
type createRequestInput struct {
	StudentID string `json:"student_id" validate:"required,objectid" label:"Student"`
	MentorID  string `json:"mentor_id" validate:"required,objectid" label:"Mentor"`
	Message   string `json:"message" validate:"required,max=2000" label:"Message"`
	Category  string `json:"category" validate:"required,max=100" label:"Category"`
}

// updateRequestInput is the PUT /requests body.
type updateRequestInput struct {
	RequestID string `json:"request_id" validate:"required,objectid" label:"Request"`
	Status    string `json:"status" validate:"required" label:"Status"`
}

type requestResponse struct {
	Success bool                     `json:"success"`
	Request models.MentorshipRequest `json:"request"`
	Message string                   `json:"message"`
}
