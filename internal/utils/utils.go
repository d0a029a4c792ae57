package utils

// NullableID converts an optional id form value into the pointer shape
// the store expects: empty string means root (nil).
func NullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
