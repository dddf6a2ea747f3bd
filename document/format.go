package document

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// SourceFormat is the serialization a document was loaded from.
type SourceFormat string

const (
	SourceFormatYAML    SourceFormat = "yaml"
	SourceFormatJSON    SourceFormat = "json"
	SourceFormatUnknown SourceFormat = "unknown"
)

// StdinFilePath is the path that selects standard input.
const StdinFilePath = "-"

// detectFormat prefers the file extension and falls back to sniffing the
// first non-blank byte: '{' or '[' is JSON, anything else YAML.
func detectFormat(path string, data []byte) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case len(trimmed) == 0:
		return SourceFormatUnknown
	case trimmed[0] == '{' || trimmed[0] == '[':
		return SourceFormatJSON
	default:
		return SourceFormatYAML
	}
}

// FormatBytes renders size with binary units, e.g. "512 B" or "1.5 MiB".
func FormatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	value, prefix := float64(size)/unit, 0
	for value >= unit && prefix < 5 {
		value /= unit
		prefix++
	}
	return fmt.Sprintf("%.1f %ciB", value, "KMGTPE"[prefix])
}
