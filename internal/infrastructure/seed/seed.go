// Package seed loads reference registry data from a YAML file.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
)

// Entry is one registry record in the seed file.
type Entry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// File is the seed document. Each list fills the registry of the same name.
type File struct {
	TitleCaseNames bool    `yaml:"title_case_names"`
	Categories     []Entry `yaml:"categories"`
	Types          []Entry `yaml:"types"`
	Languages      []Entry `yaml:"languages"`
	Modes          []Entry `yaml:"modes"`
	PaymentModes   []Entry `yaml:"payment_modes"`
}

// Entries returns the records of one registry.
func (f *File) Entries(kind reference.Kind) []Entry {
	switch kind {
	case reference.KindCategory:
		return f.Categories
	case reference.KindType:
		return f.Types
	case reference.KindLanguage:
		return f.Languages
	case reference.KindMode:
		return f.Modes
	case reference.KindPaymentMode:
		return f.PaymentModes
	}
	return nil
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// LoadFile reads and parses the seed file at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Result counts what Apply did per registry.
type Result struct {
	Created map[reference.Kind]int
	Skipped map[reference.Kind]int
}

func (r Result) Total() (created, skipped int) {
	for _, n := range r.Created {
		created += n
	}
	for _, n := range r.Skipped {
		skipped += n
	}
	return created, skipped
}

type Seeder struct {
	repo   reference.Repository
	logger logger.Interface
}

func NewSeeder(repo reference.Repository, logger logger.Interface) *Seeder {
	return &Seeder{
		repo:   repo,
		logger: logger,
	}
}

// Apply creates every record whose id is not stored yet. Existing records are
// left untouched, so running a seed twice is harmless.
func (s *Seeder) Apply(ctx context.Context, f *File) (Result, error) {
	res := Result{
		Created: make(map[reference.Kind]int),
		Skipped: make(map[reference.Kind]int),
	}
	title := cases.Title(language.English)

	for _, kind := range reference.Kinds {
		for i, e := range f.Entries(kind) {
			id := strings.TrimSpace(e.ID)
			name := strings.TrimSpace(e.Name)
			if f.TitleCaseNames {
				name = title.String(name)
			}

			entity, err := reference.NewEntity(kind, id, &name)
			if err != nil {
				if verrs := errors.GetValidationErrors(err); verrs != nil {
					return res, fmt.Errorf("%s entry %d: %w", kind, i+1, verrs)
				}
				return res, err
			}

			exists, err := s.repo.Exists(ctx, kind, id)
			if err != nil {
				return res, fmt.Errorf("failed to check %s %q: %w", kind, id, err)
			}
			if exists {
				res.Skipped[kind]++
				continue
			}

			if err := s.repo.Create(ctx, entity); err != nil {
				s.logger.Errorw("failed to seed reference", "kind", kind, "id", id, "error", err)
				return res, fmt.Errorf("failed to create %s %q: %w", kind, id, err)
			}
			res.Created[kind]++
		}
	}

	created, skipped := res.Total()
	s.logger.Infow("reference data seeded", "created", created, "skipped", skipped)
	return res, nil
}
