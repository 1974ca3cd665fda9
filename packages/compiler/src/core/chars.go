package core

// Character code constants
const (
	CharTAB   = 9
	CharSPACE = 32
	CharNBSP  = 160

	CharA = 65
	CharZ = 90
)

// IsWhitespace checks if a character code represents whitespace
func IsWhitespace(code int) bool {
	return (code >= CharTAB && code <= CharSPACE) || code == CharNBSP
}

// IsAsciiUpper checks if a character code represents an uppercase ASCII letter
func IsAsciiUpper(code int) bool {
	return code >= CharA && code <= CharZ
}

// IsBlank reports whether s is empty or only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !IsWhitespace(int(r)) {
			return false
		}
	}
	return true
}

// StartsWithUpper reports whether the first character of s is an uppercase ASCII letter
func StartsWithUpper(s string) bool {
	return len(s) > 0 && IsAsciiUpper(int(s[0]))
}
