package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobconnect/internal/domain/candidate"
)

// mockCandidateRepo is an in-memory CandidateRepository shared by the
// usecase tests in this package.
type mockCandidateRepo struct {
	byUsername map[string]candidate.Candidate
	nextID     int64
	err        error
}

func newMockCandidateRepo(existing ...candidate.Candidate) *mockCandidateRepo {
	m := &mockCandidateRepo{byUsername: map[string]candidate.Candidate{}, nextID: 1}
	for _, c := range existing {
		if c.ID >= m.nextID {
			m.nextID = c.ID + 1
		}
		m.byUsername[c.Username] = c
	}
	return m
}

func (m *mockCandidateRepo) Create(_ context.Context, c candidate.Candidate) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	c.ID = m.nextID
	m.nextID++
	m.byUsername[c.Username] = c
	return c.ID, nil
}

func (m *mockCandidateRepo) GetByUsername(_ context.Context, username string) (candidate.Candidate, error) {
	if m.err != nil {
		return candidate.Candidate{}, m.err
	}
	c, ok := m.byUsername[username]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func (m *mockCandidateRepo) IDByUsername(_ context.Context, username string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	c, ok := m.byUsername[username]
	if !ok {
		return 0, candidate.ErrNotFound
	}
	return c.ID, nil
}

func (m *mockCandidateRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byUsername[username]
	return ok, nil
}

func (m *mockCandidateRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, c := range m.byUsername {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCandidateRepo) ListSummaries(_ context.Context) ([]candidate.Summary, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]candidate.Summary, 0, len(m.byUsername))
	for _, c := range m.byUsername {
		out = append(out, candidate.Summary{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			Experience:  c.Experience,
			Designation: c.Designation,
			Skills:      c.Skills,
		})
	}
	return out, nil
}

func validSignup() SignupInput {
	return SignupInput{
		Username:    "asha",
		Password:    "hunter2",
		Name:        "Asha Rao",
		Email:       "asha@example.com",
		Experience:  2,
		Designation: "analyst",
		Skills:      "python,sql",
	}
}

func TestAuth_Signup_CreatesCandidate(t *testing.T) {
	repo := newMockCandidateRepo()
	uc := NewAuthUsecase(repo)

	got, err := uc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if got.Password != "" {
		t.Fatalf("expected password stripped from result")
	}
	if len(repo.byUsername) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.byUsername))
	}
	if repo.byUsername["asha"].Password != "hunter2" {
		t.Fatalf("expected stored password verbatim")
	}
}

func TestAuth_Signup_DuplicateUsername(t *testing.T) {
	repo := newMockCandidateRepo(candidate.Candidate{ID: 1, Username: "asha", Email: "other@example.com"})
	uc := NewAuthUsecase(repo)

	_, err := uc.Signup(context.Background(), validSignup())
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if len(repo.byUsername) != 1 {
		t.Fatalf("duplicate signup must not create a record")
	}
	if repo.byUsername["asha"].Email != "other@example.com" {
		t.Fatalf("existing record must be unchanged")
	}
}

func TestAuth_Signup_DuplicateEmail(t *testing.T) {
	repo := newMockCandidateRepo(candidate.Candidate{ID: 1, Username: "other", Email: "asha@example.com"})
	uc := NewAuthUsecase(repo)

	_, err := uc.Signup(context.Background(), validSignup())
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuth_Signup_MissingFields(t *testing.T) {
	uc := NewAuthUsecase(newMockCandidateRepo())

	in := validSignup()
	in.Email = "  "
	if _, err := uc.Signup(context.Background(), in); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuth_Login_Success(t *testing.T) {
	repo := newMockCandidateRepo(candidate.Candidate{ID: 7, Username: "asha", Password: "hunter2", Name: "Asha Rao"})
	uc := NewAuthUsecase(repo)

	got, err := uc.Login(context.Background(), "asha", "hunter2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("expected id 7, got %d", got.ID)
	}
	if got.Password != "" {
		t.Fatalf("expected password stripped from result")
	}
}

func TestAuth_RepositoryFailureKeepsCause(t *testing.T) {
	repo := newMockCandidateRepo()
	repo.err = errors.New("connection refused")
	uc := NewAuthUsecase(repo)

	_, err := uc.Signup(context.Background(), validSignup())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected root cause in error chain, got %q", err.Error())
	}

	_, err = uc.Login(context.Background(), "asha", "hunter2")
	if !errors.Is(err, ErrInternal) || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected wrapped cause on login, got %v", err)
	}
}

func TestAuth_Login_DistinctFailureModes(t *testing.T) {
	repo := newMockCandidateRepo(candidate.Candidate{ID: 7, Username: "asha", Password: "hunter2"})
	uc := NewAuthUsecase(repo)

	if _, err := uc.Login(context.Background(), "nobody", "hunter2"); !errors.Is(err, ErrUsernameNotFound) {
		t.Fatalf("expected ErrUsernameNotFound, got %v", err)
	}
	if _, err := uc.Login(context.Background(), "asha", "wrong"); !errors.Is(err, ErrIncorrectPassword) {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
	if _, err := uc.Login(context.Background(), "", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}
