// Package masking redacts stored credentials before they leave the API.
// Tokens are never returned verbatim outside the explicit reveal endpoint.
package masking

// sensitiveConfigKeys lists config map keys whose values are secrets in
// their own right and get the same treatment as tokens.
var sensitiveConfigKeys = map[string]struct{}{
	"app_key": {},
	"api_key": {},
	"secret":  {},
}

// MaskToken redacts a credential for display. Long tokens keep their first
// and last four characters so operators can tell credentials apart; short
// ones keep only the last two.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 2 {
		return "****"
	}
	if len(token) <= 8 {
		return "****" + token[len(token)-2:]
	}
	return token[:4] + "****" + token[len(token)-4:]
}

// MaskConfig returns a copy of the config map with sensitive values
// redacted. Non-sensitive entries pass through untouched.
func MaskConfig(config map[string]any) map[string]any {
	if config == nil {
		return nil
	}
	out := make(map[string]any, len(config))
	for key, value := range config {
		if _, sensitive := sensitiveConfigKeys[key]; sensitive {
			if s, ok := value.(string); ok {
				out[key] = MaskToken(s)
				continue
			}
		}
		out[key] = value
	}
	return out
}
