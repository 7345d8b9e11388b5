package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobconnect/internal/domain/candidate"
	"jobconnect/internal/repository"
)

var (
	ErrMissingFields     = errors.New("missing required fields")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrEmailTaken        = errors.New("email already taken")
	ErrUsernameNotFound  = errors.New("username not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInternal          = errors.New("internal error")
)

type SignupInput struct {
	Username    string
	Password    string
	Name        string
	Email       string
	Experience  int
	Designation string
	Skills      string
}

type AuthUsecase interface {
	Signup(ctx context.Context, in SignupInput) (candidate.Candidate, error)
	Login(ctx context.Context, username, password string) (candidate.Candidate, error)
}

type Auth struct {
	candidates repository.CandidateRepository
}

func NewAuthUsecase(candidates repository.CandidateRepository) *Auth {
	return &Auth{candidates: candidates}
}

func (u *Auth) Signup(ctx context.Context, in SignupInput) (candidate.Candidate, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Designation = strings.TrimSpace(in.Designation)
	in.Skills = strings.TrimSpace(in.Skills)

	if in.Username == "" || in.Password == "" || in.Name == "" || in.Email == "" ||
		in.Designation == "" || in.Skills == "" || in.Experience < 0 {
		return candidate.Candidate{}, ErrMissingFields
	}

	taken, err := u.candidates.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if taken {
		return candidate.Candidate{}, ErrUsernameTaken
	}

	taken, err = u.candidates.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if taken {
		return candidate.Candidate{}, ErrEmailTaken
	}

	c := candidate.Candidate{
		Username:    in.Username,
		Password:    in.Password,
		Name:        in.Name,
		Email:       in.Email,
		Experience:  in.Experience,
		Designation: in.Designation,
		Skills:      in.Skills,
	}

	id, err := u.candidates.Create(ctx, c)
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	c.ID = id

	return sanitize(c), nil
}

// Login compares the stored password verbatim. The plaintext comparison is a
// deliberate behavioral constraint carried over from the existing data; the
// two failure modes stay distinct for the client.
func (u *Auth) Login(ctx context.Context, username, password string) (candidate.Candidate, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return candidate.Candidate{}, ErrMissingFields
	}

	c, err := u.candidates.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return candidate.Candidate{}, ErrUsernameNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if c.Password != password {
		return candidate.Candidate{}, ErrIncorrectPassword
	}

	return sanitize(c), nil
}

func sanitize(c candidate.Candidate) candidate.Candidate {
	c.Password = ""
	return c
}
