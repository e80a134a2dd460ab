// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email trims and lowercases an address.
func Email(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Name trims a person name, keeping case.
func Name(s string) string { return strings.TrimSpace(s) }

// UserType trims and lowercases an account type.
func UserType(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
