package players

import "strings"

// missingName is the placeholder the lineup source uses for an unnamed slot.
const missingName = "-"

var suffixes = map[string]struct{}{
	"jr": {}, "sr": {}, "ii": {}, "iii": {}, "iv": {},
}

// NormalizeName reduces a raw name to the shared comparison key: lowercase,
// trimmed, periods and apostrophes stripped, a trailing generational suffix
// dropped, and the first token expanded through the nickname table. Surname
// tokens are never altered. Returns ok=false for empty input or the "-"
// placeholder.
func NormalizeName(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" || cleaned == missingName {
		return "", false
	}

	cleaned = strings.ToLower(cleaned)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, "'", "")

	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return "", false
	}

	if len(tokens) > 1 {
		last := tokens[len(tokens)-1]
		if _, ok := suffixes[last]; ok {
			tokens = tokens[:len(tokens)-1]
		}
	}

	if full, ok := nicknames[tokens[0]]; ok {
		tokens[0] = full
	}

	return strings.Join(tokens, " "), true
}

// SplitKey breaks a normalized key into first token and surname (the final
// token). Single-token keys return the token as surname with an empty first.
func SplitKey(key string) (first, surname string) {
	tokens := strings.Fields(key)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return "", tokens[0]
	default:
		return tokens[0], tokens[len(tokens)-1]
	}
}
