package teams

import "strings"

// Normalize maps an arbitrary team spelling to its canonical 3-letter code.
// Input is uppercased and trimmed first; anything not in the alias table is
// returned as-is, so the function is total and idempotent.
func Normalize(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return ""
	}
	if canonical, ok := aliases[code]; ok {
		return canonical
	}
	return code
}

// Known reports whether code is one of the canonical league team codes.
func Known(code string) bool {
	_, ok := canonical[code]
	return ok
}

// LogoURL returns the logo location for a canonical team code.
func LogoURL(code string) string {
	return logoBase + strings.ToLower(code) + ".png"
}

const logoBase = "https://a.espncdn.com/i/teamlogos/nba/500/"
