package language

import "strings"

// NormalizeTag normalizes a language tag to lowercase and "-" separators.
// Subtags may contain letters and digits ("es-419"). Returns an empty string
// when the value is blank or contains other characters.
func NormalizeTag(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}

	trimmed = strings.ReplaceAll(trimmed, "_", "-")
	parts := strings.Split(trimmed, "-")
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if !isSubtag(part) {
			return ""
		}
		normalized = append(normalized, part)
	}

	if len(normalized) == 0 {
		return ""
	}
	return strings.Join(normalized, "-")
}

// NormalizeCode returns the primary language subtag (for example, "en" from "en-US").
func NormalizeCode(raw string) string {
	tag := NormalizeTag(raw)
	if dash := strings.IndexByte(tag, '-'); dash >= 0 {
		return tag[:dash]
	}
	return tag
}

func isSubtag(value string) bool {
	for _, r := range value {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// splitTag picks the primary, script and region subtags out of a normalized
// tag. Variants and extensions after the region are ignored.
func splitTag(tag string) (primary, script, region string) {
	parts := strings.Split(tag, "-")
	primary = parts[0]
	rest := parts[1:]
	if len(rest) > 0 && isScript(rest[0]) {
		script = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && isRegion(rest[0]) {
		region = rest[0]
	}
	return primary, script, region
}

func isScript(subtag string) bool {
	if len(subtag) != 4 {
		return false
	}
	for _, r := range subtag {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// isRegion accepts ISO 3166 alpha-2 and UN M.49 numeric regions.
func isRegion(subtag string) bool {
	switch len(subtag) {
	case 2:
		return subtag[0] >= 'a' && subtag[0] <= 'z' && subtag[1] >= 'a' && subtag[1] <= 'z'
	case 3:
		for _, r := range subtag {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	return false
}
