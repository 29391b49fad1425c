// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package align

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/seqlabs/strand"
	"github.com/seqlabs/strand/config"
	"github.com/seqlabs/strand/internal/ptr"

	"github.com/go-playground/validator/v10"
)

// optionsFile is the schema of an alignment options file. Every option
// is optional; only the ones present end up as elements.
type optionsFile struct {
	AlignedEnds *struct {
		FirstLeading   *bool `config:"first_leading"`
		FirstTrailing  *bool `config:"first_trailing"`
		SecondLeading  *bool `config:"second_leading"`
		SecondTrailing *bool `config:"second_trailing"`
	} `config:"aligned_ends"`

	Band *struct {
		Lower *int32 `config:"lower"`
		Upper *int32 `config:"upper"`
	} `config:"band"`

	Gap *struct {
		Open   *int32 `config:"open" validate:"omitempty,lte=0"`
		Extend *int32 `config:"extend" validate:"omitempty,lte=0"`
	} `config:"gap"`

	Global   *bool   `config:"global"`
	MaxError *uint32 `config:"max_error"`
	Result   *string `config:"result" validate:"omitempty,oneof=score end_position begin_position trace"`

	Scoring *struct {
		Match    *int32 `config:"match" validate:"omitempty,gte=0"`
		Mismatch *int32 `config:"mismatch" validate:"omitempty,lte=0"`
	} `config:"scoring"`
}

// InvalidOptionsError occurs when an options file is structurally valid
// but its values fail validation, e.g. an unknown result name or a
// positive gap score.
type InvalidOptionsError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidOptionsError) Error() string {
	return fmt.Sprintf("align: invalid options: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidOptionsError) Unwrap() error {
	return e.Cause
}

// Loader reads option sources into a validated alignment configuration.
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
// into an alignment configuration, running file supplied options
// through the same uniqueness and compatibility checks as code
// supplied elements.
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

	if f.AlignedEnds != nil {
		ae := AlignedEnds{
			FirstLeading:   ptr.Deref(f.AlignedEnds.FirstLeading),
			FirstTrailing:  ptr.Deref(f.AlignedEnds.FirstTrailing),
			SecondLeading:  ptr.Deref(f.AlignedEnds.SecondLeading),
			SecondTrailing: ptr.Deref(f.AlignedEnds.SecondTrailing),
		}
		elems = append(elems, ae)
		l.log.Debug("loaded aligned_ends option")
	}

	if f.Band != nil {
		b, err := NewBand(ptr.Deref(f.Band.Lower), ptr.Deref(f.Band.Upper))
		if err != nil {
			return strand.Composite{}, err
		}
		elems = append(elems, b)
		l.log.Debug("loaded band option",
			slog.Int("lower", int(b.Lower())),
			slog.Int("upper", int(b.Upper())),
		)
	}

	if f.Gap != nil {
		g := NewGap(ptr.Deref(f.Gap.Open), ptr.Deref(f.Gap.Extend))
		elems = append(elems, g)
		l.log.Debug("loaded gap option",
			slog.Int("open", int(g.Open())),
			slog.Int("extend", int(g.Extend())),
		)
	}

	if ptr.Deref(f.Global) {
		elems = append(elems, Global{})
		l.log.Debug("loaded global option")
	}

	if f.MaxError != nil {
		elems = append(elems, MaxError(*f.MaxError))
		l.log.Debug("loaded max_error option", slog.Int("total", int(*f.MaxError)))
	}

	if f.Result != nil {
		r, err := parseResult(*f.Result)
		if err != nil {
			return strand.Composite{}, err
		}
		elems = append(elems, r)
		l.log.Debug("loaded result option", slog.String("result", r.String()))
	}

	if f.Scoring != nil {
		s, err := NewScoring(ptr.Deref(f.Scoring.Match), ptr.Deref(f.Scoring.Mismatch))
		if err != nil {
			return strand.Composite{}, err
		}
		elems = append(elems, s)
		l.log.Debug("loaded scoring option",
			slog.Int("match", int(s.Match())),
			slog.Int("mismatch", int(s.Mismatch())),
		)
	}

	c, err := Compose(elems...)
	if err != nil {
		return strand.Composite{}, err
	}
	l.log.Debug("composed alignment configuration", slog.Int("elements", c.Len()))
	return c, nil
}

func parseResult(s string) (Result, error) {
	switch s {
	case "score":
		return ResultScore, nil
	case "end_position":
		return ResultEndPosition, nil
	case "begin_position":
		return ResultBeginPosition, nil
	case "trace":
		return ResultTrace, nil
	default:
		return Result(0), InvalidOptionsError{Cause: fmt.Errorf("unknown result %q", s)}
	}
}
