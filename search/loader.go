// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/seqlabs/strand"
	"github.com/seqlabs/strand/config"

	"github.com/go-playground/validator/v10"
)

// optionsFile is the schema of a search options file. Every field is
// optional; only the options present end up as elements.
type optionsFile struct {
	MaxError *struct {
		Total         *uint8 `config:"total"`
		Substitutions *uint8 `config:"substitutions"`
		Insertions    *uint8 `config:"insertions"`
		Deletions     *uint8 `config:"deletions"`
	} `config:"max_error"`

	MaxErrorRate *struct {
		Total         *float64 `config:"total" validate:"omitempty,gte=0,lte=1"`
		Substitutions *float64 `config:"substitutions" validate:"omitempty,gte=0,lte=1"`
		Insertions    *float64 `config:"insertions" validate:"omitempty,gte=0,lte=1"`
		Deletions     *float64 `config:"deletions" validate:"omitempty,gte=0,lte=1"`
	} `config:"max_error_rate"`

	Mode     *string `config:"mode" validate:"omitempty,oneof=all best all_best strata"`
	Strata   *uint8  `config:"strata"`
	Output   *string `config:"output" validate:"omitempty,oneof=text_position index_position"`
	Parallel *uint32 `config:"parallel" validate:"omitempty,gt=0"`
}

// InvalidOptionsError occurs when an options file is structurally valid
// but its values fail validation, e.g. an unknown mode name or an error
// rate above 1.
type InvalidOptionsError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidOptionsError) Error() string {
	return fmt.Sprintf("search: invalid options: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidOptionsError) Unwrap() error {
	return e.Cause
}

// Loader reads option sources into a validated search configuration.
type Loader struct {
	log      *slog.Logger
	validate *validator.Validate
}

// LoaderOption configures a [Loader].
type LoaderOption func(*Loader)

// LogHandler sets the slog handler the loader logs applied options to.
// By default nothing is logged.
func LogHandler(h slog.Handler) LoaderOption {
	return func(l *Loader) {
		l.log = slog.New(h)
	}
}

// NewLoader configures a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges the given sources and composes the options they carry
// into a search configuration. File supplied options pass through the
// exact same uniqueness and compatibility checks as code supplied
// elements, so a file naming both max_error and max_error_rate fails
// with a [strand.IncompatibleKindsError].
func (l *Loader) Load(srcs ...config.Source) (strand.Composite, error) {
	m, err := config.Read(srcs...)
	if err != nil {
		return strand.Composite{}, err
	}

	var f optionsFile
	err = m.Unmarshal(&f)
	if err != nil {
		return strand.Composite{}, err
	}

	err = l.validate.Struct(f)
	if err != nil {
		return strand.Composite{}, InvalidOptionsError{Cause: err}
	}

	var elems []strand.Element

	if f.MaxError != nil {
		var counts []ErrorCount
		if f.MaxError.Total != nil {
			counts = append(counts, Total(*f.MaxError.Total))
		}
		if f.MaxError.Substitutions != nil {
			counts = append(counts, Substitutions(*f.MaxError.Substitutions))
		}
		if f.MaxError.Insertions != nil {
			counts = append(counts, Insertions(*f.MaxError.Insertions))
		}
		if f.MaxError.Deletions != nil {
			counts = append(counts, Deletions(*f.MaxError.Deletions))
		}

		me, err := NewMaxError(counts...)
		if err != nil {
			return strand.Composite{}, err
		}
		elems = append(elems, me)
		l.log.Debug("loaded max_error option", slog.Int("total", int(me.Total())))
	}

	if f.MaxErrorRate != nil {
		var rates []ErrorRate
		if f.MaxErrorRate.Total != nil {
			rates = append(rates, TotalRate(*f.MaxErrorRate.Total))
		}
		if f.MaxErrorRate.Substitutions != nil {
			rates = append(rates, SubstitutionRate(*f.MaxErrorRate.Substitutions))
		}
		if f.MaxErrorRate.Insertions != nil {
			rates = append(rates, InsertionRate(*f.MaxErrorRate.Insertions))
		}
		if f.MaxErrorRate.Deletions != nil {
			rates = append(rates, DeletionRate(*f.MaxErrorRate.Deletions))
		}

		mer, err := NewMaxErrorRate(rates...)
		if err != nil {
			return strand.Composite{}, err
		}
		elems = append(elems, mer)
		l.log.Debug("loaded max_error_rate option", slog.Float64("total", mer.Total()))
	}

	if f.Mode != nil {
		mode, err := parseMode(*f.Mode, f.Strata)
		if err != nil {
			return strand.Composite{}, err
		}
		elems = append(elems, mode)
		l.log.Debug("loaded mode option", slog.String("mode", mode.String()))
	}

	if f.Output != nil {
		out := TextPosition
		if *f.Output == "index_position" {
			out = IndexPosition
		}
		elems = append(elems, out)
		l.log.Debug("loaded output option", slog.String("output", out.String()))
	}

	if f.Parallel != nil {
		elems = append(elems, NewParallel(*f.Parallel))
		l.log.Debug("loaded parallel option", slog.Int("workers", int(*f.Parallel)))
	}

	c, err := Compose(elems...)
	if err != nil {
		return strand.Composite{}, err
	}
	l.log.Debug("composed search configuration", slog.Int("elements", c.Len()))
	return c, nil
}

func parseMode(s string, strata *uint8) (Mode, error) {
	switch s {
	case "all":
		return ModeAll, nil
	case "best":
		return ModeBest, nil
	case "all_best":
		return ModeAllBest, nil
	case "strata":
		if strata == nil {
			return Mode{}, InvalidOptionsError{Cause: fmt.Errorf("mode %q requires the strata option", s)}
		}
		return ModeStrata(*strata), nil
	default:
		return Mode{}, InvalidOptionsError{Cause: fmt.Errorf("unknown mode %q", s)}
	}
}
