// Package models holds the HTTP request/response types shared by the API
// layer and the services. Database enums are stored lowercase; the wire
// format is UPPERCASE, converted here and nowhere else.
package models

import "strings"

// ToWire converts a stored lowercase enum value to its wire form.
func ToWire[T ~string](v T) string {
	return strings.ToUpper(string(v))
}

// FromWire converts a wire enum value to its stored form.
func FromWire(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
