package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attributes err to the named field of a validated value. Nested
// fields are joined with dots and list elements are named by index, as in
// Owners.2 or Metadata.Schema. It returns nil if err is nil.
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{field: name, desc: description, parent: err}
}

// AppendField appends the error of the named field, if any, to errs.
func AppendField(errs error, name string, err error) error {
	return Append(errs, Field(name, err, ""))
}

// FieldErrors returns every error attributed to the named field.
func FieldErrors(err error, name string) []error {
	var found []error
	visit(err, func(cur error) bool {
		if f, ok := cur.(*fieldError); ok && f.field == name {
			found = append(found, cur)
		}
		return false
	})
	return found
}

type fieldError struct {
	field  string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("field %q: %s", e.field, e.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", e.field, e.desc, e.parent)
}

func (e *fieldError) Cause() error {
	return e.parent
}
