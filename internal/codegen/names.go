package codegen

import "strings"

// Variable names used in generated code
const (
	inputName = "input"
	currName  = "curr"
	nextName  = "next"
	stackName = "stack"
	setName   = "set"
)

// LowerFirst converts a leading ASCII uppercase letter to lowercase.
func LowerFirst(s string) string {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// Identifier reduces s to an exported Go identifier suffix: letters and
// digits are kept, anything else starts a new capitalized word, and
// leading digits are dropped. Returns "" when nothing usable remains.
func Identifier(s string) string {
	var sb strings.Builder
	upper := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			if upper {
				sb.WriteString(strings.ToUpper(string(r)))
			} else {
				sb.WriteRune(r)
			}
			upper = false
		case r >= '0' && r <= '9' && sb.Len() > 0:
			sb.WriteRune(r)
			upper = true
		default:
			upper = true
		}
	}
	return sb.String()
}
