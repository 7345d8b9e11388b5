package candidate

import "errors"

var ErrNotFound = errors.New("candidate not found")

// Candidate is a userinfo row. Passwords are stored and compared as plaintext
// to keep parity with the existing rows; see DESIGN.md before changing this.
type Candidate struct {
	ID          int64
	Username    string
	Password    string
	Name        string
	Email       string
	Experience  int
	Designation string
	Skills      string
}

// Summary is the directory projection of a candidate, without credentials.
type Summary struct {
	ID          int64
	Name        string
	Email       string
	Experience  int
	Designation string
	Skills      string
}
