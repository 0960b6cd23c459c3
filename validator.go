package socketkit

import "fmt"

// FieldError describes a single schema violation on an event field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validateEvent checks an event's shape against the schema for its type
// and reports every field-level mismatch, not just the first one. An
// empty result means the event is valid.
//
// Callers must classify and enrich before validating: the app_open
// schema requires library_version, which only exists after enrichment.
func validateEvent(t EventType, e Event) []FieldError {
	s, ok := lookupSchema(t)
	if !ok {
		return []FieldError{{Field: "name", Message: fmt.Sprintf("no schema registered for event type %q", t)}}
	}

	var errs []FieldError

	if e.Timestamp <= 0 {
		errs = append(errs, FieldError{
			Field:   "timestamp",
			Message: "required field is missing or not a positive epoch millisecond value",
		})
	}

	declared := make(map[string]fieldSpec, len(s.Fields))
	for _, spec := range s.Fields {
		declared[spec.Name] = spec

		value, present := e.Fields[spec.Name]
		if !present {
			if spec.Required {
				errs = append(errs, FieldError{
					Field:   spec.Name,
					Message: "required field is missing",
				})
			}
			continue
		}
		if !matchesKind(value, spec.Kind) {
			errs = append(errs, FieldError{
				Field:   spec.Name,
				Message: fmt.Sprintf("expected %s, got %T", spec.Kind, value),
			})
		}
	}

	if s.Strict {
		for name := range e.Fields {
			if _, ok := declared[name]; !ok {
				errs = append(errs, FieldError{
					Field:   name,
					Message: fmt.Sprintf("field is not allowed for event type %q", t),
				})
			}
		}
	}

	return errs
}

// matchesKind reports whether a field value satisfies a schema kind.
// Integer accepts whole floats because callers frequently round-trip
// events through encoding/json, which decodes all numbers as float64.
func matchesKind(value any, kind fieldKind) bool {
	switch kind {
	case kindString:
		_, ok := value.(string)
		return ok
	case kindBool:
		_, ok := value.(bool)
		return ok
	case kindInteger:
		switch v := value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case float64:
			return v == float64(int64(v))
		case float32:
			return v == float32(int64(v))
		}
		return false
	case kindNumber:
		switch value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			return true
		}
		return false
	}
	return false
}
