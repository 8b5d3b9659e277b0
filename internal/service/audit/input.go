package audit

import (
	"strings"

	"github.com/heartmarshall/snaptrail/internal/domain"
)

const (
	maxActionLen = 64
	maxTagLen    = 255
)

// SnapshotInput holds the optional overrides of a manual snapshot.
type SnapshotInput struct {
	Action domain.Action // empty = record override or configured default
	Tag    *string       // nil = record override or no tag
}

// Validate checks all fields and collects all errors.
func (i SnapshotInput) Validate() error {
	var errs []domain.FieldError

	if i.Action != "" {
		action := strings.TrimSpace(string(i.Action))
		if action == "" {
			errs = append(errs, domain.FieldError{Field: "action", Message: "must not be blank"})
		}
		if len(action) > maxActionLen {
			errs = append(errs, domain.FieldError{Field: "action", Message: "max 64 characters"})
		}
	}

	if i.Tag != nil {
		errs = append(errs, validateTag(*i.Tag)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTag(tag string) []domain.FieldError {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return []domain.FieldError{{Field: "tag", Message: "required"}}
	}
	if len(tag) > maxTagLen {
		return []domain.FieldError{{Field: "tag", Message: "max 255 characters"}}
	}
	return nil
}
