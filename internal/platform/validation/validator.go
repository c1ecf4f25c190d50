package validation

// Validator checks a struct against its validate tags.
// It returns nil when the struct is valid, otherwise a mapping from the
// dot-joined json field path to the messages for that field.
type Validator interface {
	ValidateStruct(s any) map[string][]string
}
