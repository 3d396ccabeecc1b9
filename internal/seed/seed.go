package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/yigit/grantsphere/internal/app/models"
	"github.com/yigit/grantsphere/internal/pkg/apperrors"
)

//go:embed data/scholarships.yaml
var defaultDataset []byte

// dataset is the top-level shape of a dataset file
type dataset struct {
	Scholarships []*models.Scholarship `yaml:"scholarships"`
}

var validate = validator.New()

// LoadScholarships reads the dataset at path, or the embedded dataset when
// path is empty, and validates every record.
func LoadScholarships(path string, lgr zerolog.Logger) ([]*models.Scholarship, error) {
	if path == "" {
		lgr.Info().Msg("Loading embedded scholarship dataset")
		return DecodeScholarships(bytes.NewReader(defaultDataset))
	}

	lgr.Info().Str("path", path).Msg("Loading scholarship dataset from file")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return DecodeScholarships(f)
}

// DecodeScholarships decodes and validates a YAML dataset
func DecodeScholarships(r io.Reader) ([]*models.Scholarship, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return []*models.Scholarship{}, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatasetInvalid, err)
	}

	var errs error
	for i, rec := range ds.Scholarships {
		if rec == nil {
			errs = errors.Join(errs, fmt.Errorf("record %d is empty", i))
			continue
		}
		if err := validate.Struct(rec); err != nil {
			errs = errors.Join(errs, fmt.Errorf("record %d (id %d): %w", i, rec.ID, err))
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDatasetInvalid, errs)
	}

	if ds.Scholarships == nil {
		ds.Scholarships = []*models.Scholarship{}
	}
	return ds.Scholarships, nil
}
