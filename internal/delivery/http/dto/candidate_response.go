package dto

import "jobconnect/internal/domain/candidate"

type CandidateResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Experience  int    `json:"experience"`
	Designation string `json:"designation"`
	Skills      string `json:"skills"`
}

func NewCandidateResponse(c candidate.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:          c.ID,
		Username:    c.Username,
		Name:        c.Name,
		Email:       c.Email,
		Experience:  c.Experience,
		Designation: c.Designation,
		Skills:      c.Skills,
	}
}

type CandidateSummaryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Experience  int    `json:"experience"`
	Designation string `json:"designation"`
	Skills      string `json:"skills"`
}

func NewCandidateSummaryResponses(in []candidate.Summary) []CandidateSummaryResponse {
	out := make([]CandidateSummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, CandidateSummaryResponse{
			ID:          s.ID,
			Name:        s.Name,
			Email:       s.Email,
			Experience:  s.Experience,
			Designation: s.Designation,
			Skills:      s.Skills,
		})
	}
	return out
}
