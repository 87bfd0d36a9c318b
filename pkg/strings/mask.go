package strings

import (
	"net/url"
	"strings"
)

// Mask replaces secret values.
const Mask = "****"

// secretKeys are the connection string keys whose values are masked,
// compared case-insensitively with spaces removed.
var secretKeys = map[string]bool{
	"password":   true,
	"pwd":        true,
	"accountkey": true,
	"secret":     true,
	"token":      true,
}

// MaskConnectionString hides secrets in a connection string. Both
// "Key=Value;..." strings and URLs with user info are handled; anything
// else is returned unchanged.
func MaskConnectionString(cs string) string {
	if u, err := url.Parse(cs); err == nil && u.Scheme != "" && u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), Mask)
			// url.String escapes the mask; keep it readable.
			return strings.Replace(u.String(), url.QueryEscape(Mask), Mask, 1)
		}
		return cs
	}

	parts := strings.Split(cs, ";")
	for i, part := range parts {
		key, _, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), " ", ""))
		if secretKeys[normalized] {
			parts[i] = key + "=" + Mask
		}
	}
	return strings.Join(parts, ";")
}
