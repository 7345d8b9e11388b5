package dto

import "jobconnect/internal/catalog"

type PostingResponse struct {
	JobID       int64  `json:"job_id"`
	CompanyID   int64  `json:"company_id"`
	Title       string `json:"title"`
	Designation string `json:"designation"`
	Skills      string `json:"skills"`
	Experience  int    `json:"experience"`
}

func NewPostingResponses(in []catalog.Posting) []PostingResponse {
	out := make([]PostingResponse, 0, len(in))
	for _, p := range in {
		out = append(out, PostingResponse{
			JobID:       p.JobID,
			CompanyID:   p.CompanyID,
			Title:       p.Title,
			Designation: p.Designation,
			Skills:      p.Skills,
			Experience:  p.Experience,
		})
	}
	return out
}
