package fieldstyle

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the style's apiVersion, metrics, and transition.
// Field violations are reported together as a [*ValidationError].
func (s Style) Validate() error {
	if err := checkVersion(s.APIVersion); err != nil {
		return err
	}
	err := structValidator().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("fieldstyle: validate: %w", err)
	}
	verr := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, FieldError{
			Field: strings.TrimPrefix(fe.Namespace(), "Style."),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return verr
}

// checkVersion accepts an empty version or any v1 semver ("v1", "v1.2.0").
func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != semver.Major(CurrentAPIVersion) {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, v, semver.Major(CurrentAPIVersion))
	}
	if semver.Compare(v, CurrentAPIVersion) > 0 {
		return fmt.Errorf("%w: %s is newer than %s", ErrUnsupportedVersion, v, CurrentAPIVersion)
	}
	return nil
}
