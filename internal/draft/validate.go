package draft

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError is one validation violation, addressed by the wire name of the
// offending field.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// wireNames maps struct fields to the names the rest of the system uses.
var wireNames = map[string]string{
	"AuthorName":  "authorName",
	"Title":       "title",
	"Category":    "category",
	"SubCategory": "subCategory",
	"Summary":     "summary",
	"Content":     "content",
}

// Validator checks drafts against the submission rules. Struct-tag rules are
// enforced by go-playground/validator; the category whitelist and the
// author-image rule are checked on top.
type Validator struct {
	validate   *validator.Validate
	categories map[string]struct{}
}

// NewValidator creates a Validator accepting the given category options.
func NewValidator(categories []string) *Validator {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return &Validator{
		validate:   validator.New(),
		categories: set,
	}
}

// Validate returns every violation in the draft, or nil when the draft may
// be submitted. A draft with any violation must not be serialized.
func (v *Validator) Validate(d *Draft) []FieldError {
	var violations []FieldError

	if err := v.validate.Struct(d); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				violations = append(violations, FieldError{
					Field:   wireName(fe.StructField()),
					Message: tagMessage(fe),
				})
			}
		} else {
			violations = append(violations, FieldError{Field: "draft", Message: err.Error()})
		}
	}

	if d.Category != "" {
		if _, ok := v.categories[d.Category]; !ok {
			violations = append(violations, FieldError{
				Field:   "category",
				Message: fmt.Sprintf("%q is not a known category", d.Category),
			})
		}
	}

	// A new local image satisfies the rule, and so does an image already
	// persisted on the server.
	if !d.HasAuthorImage() {
		violations = append(violations, FieldError{
			Field:   "authorImage",
			Message: "author image is required",
		})
	}

	return violations
}

func wireName(structField string) string {
	if name, ok := wireNames[structField]; ok {
		return name
	}
	return structField
}

func tagMessage(fe validator.FieldError) string {
	name := wireName(fe.StructField())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
