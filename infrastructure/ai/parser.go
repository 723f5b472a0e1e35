package ai

import "strings"

// parseKeyValues reads KEY: value lines into a map with lower_snake
// keys. Only an all-caps label starts a new field; any other line
// continues the previous field, so a multi-paragraph MESSAGE with
// colons in its sentences survives parsing intact.
func parseKeyValues(text string) map[string]string {
	fields := make(map[string]string)
	lastKey := ""

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		rawKey, value, found := strings.Cut(line, ":")
		key := normalizeKey(rawKey)

		if !found || key == "" {
			if lastKey != "" && strings.TrimSpace(line) != "" {
				fields[lastKey] = strings.TrimSpace(fields[lastKey] + "\n" + strings.TrimSpace(line))
			}
			continue
		}

		fields[key] = strings.TrimSpace(value)
		lastKey = key
	}
	return fields
}

// normalizeKey turns an all-caps label like SUBJECT_LINE into
// subject_line, returning empty for anything that does not look like
// one of the prompt's format keys
func normalizeKey(raw string) string {
	key := strings.TrimSpace(raw)
	if key == "" || len(key) > 32 {
		return ""
	}
	for _, r := range key {
		if (r < 'A' || r > 'Z') && r != '_' && r != ' ' {
			return ""
		}
	}
	key = strings.ToLower(key)
	return strings.ReplaceAll(key, " ", "_")
}
