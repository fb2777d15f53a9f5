package fieldstyle

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-drift/drift/pkg/graphics"
	"gopkg.in/yaml.v3"
)

// document is the YAML form of a Style. Pointer fields distinguish "omitted"
// from zero so omitted values keep their defaults.
type document struct {
	APIVersion string             `yaml:"apiVersion,omitempty"`
	Colors     colorsDocument     `yaml:"colors,omitempty"`
	Metrics    metricsDocument    `yaml:"metrics,omitempty"`
	Transition transitionDocument `yaml:"transition,omitempty"`
}

type colorsDocument struct {
	Error                 string `yaml:"error,omitempty"`
	Focus                 string `yaml:"focus,omitempty"`
	Idle                  string `yaml:"idle,omitempty"`
	PlaceholderBackground string `yaml:"placeholderBackground,omitempty"`
	Hint                  string `yaml:"hint,omitempty"`
}

type metricsDocument struct {
	Height                *float64 `yaml:"height,omitempty"`
	CornerRadius          *float64 `yaml:"cornerRadius,omitempty"`
	InputPadding          *float64 `yaml:"inputPadding,omitempty"`
	IdleBorderWidth       *float64 `yaml:"idleBorderWidth,omitempty"`
	EditingBorderWidth    *float64 `yaml:"editingBorderWidth,omitempty"`
	RestingFontSize       *float64 `yaml:"restingFontSize,omitempty"`
	FloatingFontSize      *float64 `yaml:"floatingFontSize,omitempty"`
	FloatingBottomPadding *float64 `yaml:"floatingBottomPadding,omitempty"`
	LeadingPadding        *float64 `yaml:"leadingPadding,omitempty"`
	InitialLeadingPadding *float64 `yaml:"initialLeadingPadding,omitempty"`
	PlaceholderInset      *float64 `yaml:"placeholderInset,omitempty"`
	HintFontSize          *float64 `yaml:"hintFontSize,omitempty"`
	HintLeadingPadding    *float64 `yaml:"hintLeadingPadding,omitempty"`
}

type transitionDocument struct {
	Duration string `yaml:"duration,omitempty"`
	Curve    string `yaml:"curve,omitempty"`
}

// Parse decodes a YAML style document on top of [Default] and validates it.
func Parse(data []byte) (Style, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Style{}, fmt.Errorf("fieldstyle: parse: %w", err)
	}
	style, err := doc.apply(Default())
	if err != nil {
		return Style{}, err
	}
	if err := style.Validate(); err != nil {
		return Style{}, err
	}
	return style, nil
}

// Load reads and parses the style file at path.
func Load(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("fieldstyle: read %s: %w", path, err)
	}
	style, err := Parse(data)
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return style, nil
}

// LoadOptional reads path if it exists and returns [Default] otherwise.
func LoadOptional(path string) (Style, error) {
	if path == "" {
		return Default(), nil
	}
	style, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return style, err
}

// Marshal encodes s as a YAML style document.
func Marshal(s Style) ([]byte, error) {
	version := s.APIVersion
	if version == "" {
		version = CurrentAPIVersion
	}
	m := s.Metrics
	doc := document{
		APIVersion: version,
		Colors: colorsDocument{
			Error:                 FormatColor(s.Colors.Error),
			Focus:                 FormatColor(s.Colors.Focus),
			Idle:                  FormatColor(s.Colors.Idle),
			PlaceholderBackground: FormatColor(s.Colors.PlaceholderBackground),
			Hint:                  FormatColor(s.Colors.Hint),
		},
		Metrics: metricsDocument{
			Height:                &m.Height,
			CornerRadius:          &m.CornerRadius,
			InputPadding:          &m.InputPadding,
			IdleBorderWidth:       &m.IdleBorderWidth,
			EditingBorderWidth:    &m.EditingBorderWidth,
			RestingFontSize:       &m.RestingFontSize,
			FloatingFontSize:      &m.FloatingFontSize,
			FloatingBottomPadding: &m.FloatingBottomPadding,
			LeadingPadding:        &m.LeadingPadding,
			InitialLeadingPadding: &m.InitialLeadingPadding,
			PlaceholderInset:      &m.PlaceholderInset,
			HintFontSize:          &m.HintFontSize,
			HintLeadingPadding:    &m.HintLeadingPadding,
		},
		Transition: transitionDocument{
			Duration: s.Transition.Duration.String(),
			Curve:    s.Transition.Curve,
		},
	}
	return yaml.Marshal(doc)
}

func (d document) apply(s Style) (Style, error) {
	if d.APIVersion != "" {
		s.APIVersion = d.APIVersion
	}
	if err := checkVersion(s.APIVersion); err != nil {
		return Style{}, err
	}

	colors := []struct {
		raw string
		dst *graphics.Color
	}{
		{d.Colors.Error, &s.Colors.Error},
		{d.Colors.Focus, &s.Colors.Focus},
		{d.Colors.Idle, &s.Colors.Idle},
		{d.Colors.PlaceholderBackground, &s.Colors.PlaceholderBackground},
		{d.Colors.Hint, &s.Colors.Hint},
	}
	for _, c := range colors {
		if c.raw == "" {
			continue
		}
		parsed, err := ParseColor(c.raw)
		if err != nil {
			return Style{}, err
		}
		*c.dst = parsed
	}

	metrics := []struct {
		src *float64
		dst *float64
	}{
		{d.Metrics.Height, &s.Metrics.Height},
		{d.Metrics.CornerRadius, &s.Metrics.CornerRadius},
		{d.Metrics.InputPadding, &s.Metrics.InputPadding},
		{d.Metrics.IdleBorderWidth, &s.Metrics.IdleBorderWidth},
		{d.Metrics.EditingBorderWidth, &s.Metrics.EditingBorderWidth},
		{d.Metrics.RestingFontSize, &s.Metrics.RestingFontSize},
		{d.Metrics.FloatingFontSize, &s.Metrics.FloatingFontSize},
		{d.Metrics.FloatingBottomPadding, &s.Metrics.FloatingBottomPadding},
		{d.Metrics.LeadingPadding, &s.Metrics.LeadingPadding},
		{d.Metrics.InitialLeadingPadding, &s.Metrics.InitialLeadingPadding},
		{d.Metrics.PlaceholderInset, &s.Metrics.PlaceholderInset},
		{d.Metrics.HintFontSize, &s.Metrics.HintFontSize},
		{d.Metrics.HintLeadingPadding, &s.Metrics.HintLeadingPadding},
	}
	for _, m := range metrics {
		if m.src != nil {
			*m.dst = *m.src
		}
	}

	if d.Transition.Duration != "" {
		dur, err := time.ParseDuration(d.Transition.Duration)
		if err != nil {
			return Style{}, fmt.Errorf("fieldstyle: transition.duration: %w", err)
		}
		s.Transition.Duration = dur
	}
	if d.Transition.Curve != "" {
		if _, ok := curveByName(d.Transition.Curve); !ok {
			return Style{}, fmt.Errorf("%w: %q", ErrUnknownCurve, d.Transition.Curve)
		}
		s.Transition.Curve = d.Transition.Curve
	}
	return s, nil
}
