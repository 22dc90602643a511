package category

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxNameBytes is the longest name, in bytes, a record accepts.
const MaxNameBytes = 255

// Delimiters are the structural characters a name may not contain.
const Delimiters = "|[]{}#<>"

// nameTag is the validator rule set shared by every record name.
// 0x7C is the validator escape for '|'.
const nameTag = "required,trimmed,maxbytes=255,excludesall=0x7C[]{}#<>"

var (
	// ErrInvalidName is returned (wrapped) when a name breaks the naming rules.
	ErrInvalidName = errors.New("invalid name")
	// ErrSelfParent is returned (wrapped) when a category lists itself as a parent.
	ErrSelfParent = errors.New("category lists itself as a parent")
)

// nameValidate is the validator instance for record names.
// Initialized in init() with custom validators.
var nameValidate *validator.Validate

func init() {
	nameValidate = validator.New()

	if err := nameValidate.RegisterValidation("trimmed", validateTrimmed); err != nil {
		panic(fmt.Sprintf("registering trimmed validator: %v", err))
	}

	if err := nameValidate.RegisterValidation("maxbytes", validateMaxBytes); err != nil {
		panic(fmt.Sprintf("registering maxbytes validator: %v", err))
	}
}

// validateTrimmed rejects leading or trailing whitespace.
func validateTrimmed(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.TrimSpace(s) == s
}

// validateMaxBytes checks byte length, not rune count, against the tag parameter.
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

// NameError describes why a name was rejected.
type NameError struct {
	Name string
	Rule string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Name, ruleMessage(e.Rule))
}

func (e *NameError) Unwrap() error {
	return ErrInvalidName
}

// ValidateName checks a category, subobject, property or parent name:
// non-empty, no surrounding whitespace, at most MaxNameBytes bytes and free
// of structural delimiters.
func ValidateName(name string) error {
	err := nameValidate.Var(name, nameTag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &NameError{Name: name, Rule: fieldErrs[0].Tag()}
	}

	return fmt.Errorf("%w %q: %w", ErrInvalidName, name, err)
}

func ruleMessage(rule string) string {
	switch rule {
	case "required":
		return "must not be empty"
	case "trimmed":
		return "must not have leading or trailing whitespace"
	case "maxbytes":
		return fmt.Sprintf("must be at most %d bytes", MaxNameBytes)
	case "excludesall":
		return "must not contain any of " + Delimiters
	default:
		return "breaks rule " + rule
	}
}
