package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// ErrUnavailable means the catalog resource itself could not be read. Callers
// must keep this distinct from an empty catalog: "no postings" is a valid
// result, an unreadable file is not.
var ErrUnavailable = errors.New("job catalog unavailable")

// Posting is one row of the jobs CSV.
type Posting struct {
	JobID       int64
	CompanyID   int64
	Title       string
	Designation string
	Skills      string
	Experience  int
}

// Loader reads the full catalog. Implemented by File; tests substitute a stub.
type Loader interface {
	Load() ([]Posting, error)
}

// File loads postings from a headered CSV at Path on every call.
type File struct {
	Path string
}

// Expected header columns. Order in the file does not matter.
const (
	colJobID       = "job id"
	colCompanyID   = "company id"
	colTitle       = "title"
	colDesignation = "designation"
	colSkills      = "skills"
	colExperience  = "experience"
)

func (f File) Load() ([]Posting, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, f.Path)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer fh.Close()

	return Parse(fh)
}

// Parse reads a headered CSV stream into postings. Integer fields must parse;
// a malformed row fails the whole read rather than being silently dropped.
func Parse(r io.Reader) ([]Posting, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("catalog: empty file")
		}
		return nil, fmt.Errorf("catalog: read header: %w", err)
	}

	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colJobID, colCompanyID} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("catalog: missing column %q", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []Posting
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: read row: %w", err)
		}
		line++

		jobID, err := strconv.ParseInt(field(rec, colJobID), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("catalog: line %d: bad job id: %w", line, err)
		}
		companyID, err := strconv.ParseInt(field(rec, colCompanyID), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("catalog: line %d: bad company id: %w", line, err)
		}

		exp := 0
		if raw := field(rec, colExperience); raw != "" {
			exp, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("catalog: line %d: bad experience: %w", line, err)
			}
		}

		out = append(out, Posting{
			JobID:       jobID,
			CompanyID:   companyID,
			Title:       field(rec, colTitle),
			Designation: field(rec, colDesignation),
			Skills:      field(rec, colSkills),
			Experience:  exp,
		})
	}

	return out, nil
}
