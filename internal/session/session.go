package session

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session not found")

// CandidateIdentity is the candidate slot of a session.
type CandidateIdentity struct {
	Username string `json:"username"`
}

// RecruiterIdentity is the recruiter slot of a session.
type RecruiterIdentity struct {
	CompanyID int64  `json:"company_id"`
	Company   string `json:"company"`
	Domain    string `json:"domain"`
}

// Identity is a tagged union: at most one slot is populated at a time. The
// two identity domains are never unified; logging in as one replaces the
// whole session, and logout destroys it regardless of which slot was active.
type Identity struct {
	Candidate *CandidateIdentity `json:"candidate,omitempty"`
	Recruiter *RecruiterIdentity `json:"recruiter,omitempty"`
}

func (id Identity) IsCandidate() bool { return id.Candidate != nil }
func (id Identity) IsRecruiter() bool { return id.Recruiter != nil }

// Store persists sessions keyed by opaque IDs. Sessions have no expiry.
type Store interface {
	Create(ctx context.Context, id Identity) (string, error)
	Get(ctx context.Context, sessionID string) (Identity, error)
	Destroy(ctx context.Context, sessionID string) error
}
