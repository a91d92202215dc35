package registry

import (
	"strings"
)

// Descriptor holds the fields of a mod descriptor that the registry needs
type Descriptor struct {
	Name string
	Path string
}

// ParseDescriptor extracts name and path from key=value descriptor lines.
// Keys are trimmed and lower-cased; values are trimmed of whitespace and
// of one pair of surrounding double quotes. Lines without "=" and block values ("tags={") are
// ignored. The first occurrence of a key wins.
func ParseDescriptor(lines []string) Descriptor {
	var d Descriptor
	for _, line := range lines {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "{") {
			continue
		}
		value = unquote(value)

		switch key {
		case "name":
			if d.Name == "" {
				d.Name = value
			}
		case "path":
			if d.Path == "" {
				d.Path = value
			}
		}
	}
	return d
}

// Complete reports whether both name and path are present
func (d Descriptor) Complete() bool {
	return d.Name != "" && d.Path != ""
}

// unquote strips one matching pair of double quotes
func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return strings.TrimSpace(value[1 : len(value)-1])
	}
	return value
}
