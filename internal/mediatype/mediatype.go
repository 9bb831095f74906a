// Package mediatype classifies Content-Type header values.
package mediatype

import (
	"mime"
	"strings"
)

// Parse returns the lower-cased media type of a Content-Type value without
// its parameters. Unparsable values fall back to the text before the first
// semicolon.
func Parse(contentType string) string {
	if contentType == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, _, _ = strings.Cut(contentType, ";")
	}

	return strings.ToLower(strings.TrimSpace(mediaType))
}

// IsJSON reports whether mediaType carries JSON.
func IsJSON(mediaType string) bool {
	return mediaType == "application/json" ||
		mediaType == "text/json" ||
		strings.HasSuffix(mediaType, "+json")
}

// IsYAML reports whether mediaType carries YAML.
func IsYAML(mediaType string) bool {
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	}

	return strings.HasSuffix(mediaType, "+yaml")
}

// IsForm reports whether mediaType is an url-encoded form.
func IsForm(mediaType string) bool {
	return mediaType == "application/x-www-form-urlencoded"
}

// IsText reports whether a body of mediaType can be read as text.
func IsText(mediaType string) bool {
	switch {
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case IsJSON(mediaType), IsYAML(mediaType), IsForm(mediaType):
		return true
	case mediaType == "application/xml", strings.HasSuffix(mediaType, "+xml"):
		return true
	case mediaType == "application/javascript":
		return true
	}

	return false
}
