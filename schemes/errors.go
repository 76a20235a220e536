package schemes

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("color scheme not found")

// NotFoundError is returned for identifiers that are not in the registry.
// Category is set when the lookup was scoped to a category.
type NotFoundError struct {
	ID       string   `json:"id"`
	Category Category `json:"category,omitempty"`
}

func (e *NotFoundError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("color scheme %q not found in category %q", e.ID, e.Category)
	}
	return fmt.Sprintf("color scheme %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MalformedColorError means a definition carries a literal that is not a hex
// color. It is a defect in the data and the registry refuses to build.
type MalformedColorError struct {
	ID      string `json:"id"`
	Index   int    `json:"index"`
	Literal string `json:"literal"`
	Err     error  `json:"-"`
}

func (e *MalformedColorError) Error() string {
	return fmt.Sprintf("color scheme %q: color %d: %v", e.ID, e.Index, e.Err)
}

func (e *MalformedColorError) Unwrap() error {
	return e.Err
}
