package dto

import "jobconnect/internal/matcher"

type RecommendationItemResponse struct {
	JobID       int64  `json:"job_id"`
	CompanyID   int64  `json:"company_id"`
	Title       string `json:"title"`
	Designation string `json:"designation"`
	Skills      string `json:"skills"`
	Experience  int    `json:"experience"`
	Score       int    `json:"score"`
	Company     string `json:"company,omitempty"`
	Domain      string `json:"domain,omitempty"`
}

func NewRecommendationItemResponses(in []matcher.Match) []RecommendationItemResponse {
	out := make([]RecommendationItemResponse, 0, len(in))
	for _, m := range in {
		out = append(out, RecommendationItemResponse{
			JobID:       m.JobID,
			CompanyID:   m.CompanyID,
			Title:       m.Title,
			Designation: m.Designation,
			Skills:      m.Skills,
			Experience:  m.Experience,
			Score:       m.Score,
			Company:     m.Company,
			Domain:      m.Domain,
		})
	}
	return out
}
