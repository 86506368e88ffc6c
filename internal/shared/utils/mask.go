package utils

import "strings"

// MaskEmail hides the local part of an address for logs: "ravi@x.in" -> "r***@x.in".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if r := []rune(local); len(r) > 0 {
		local = string(r[0])
	}
	return local + "***@" + domain
}

// MaskTail keeps the last n characters of an identifier such as an Aadhaar
// or mobile number.
func MaskTail(value string, n int) string {
	r := []rune(value)
	if len(r) <= n {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-n) + string(r[len(r)-n:])
}
