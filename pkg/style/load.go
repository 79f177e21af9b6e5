package style

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
)

// Load reads a stylesheet from disk, picking the format from the file
// extension: .toml, or .json/.jsonc for comment-tolerant JSON.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: read sheet: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".json", ".jsonc":
		return ParseJSONC(data)
	default:
		return nil, fmt.Errorf("style: unsupported sheet format %q", filepath.Ext(path))
	}
}

// ParseTOML decodes a TOML stylesheet.
func ParseTOML(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := toml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("style: parse toml sheet: %w", err)
	}
	return &sheet, nil
}

// ParseJSONC decodes a JSON stylesheet, stripping comments and
// trailing commas first.
func ParseJSONC(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := json.Unmarshal(jsonc.ToJSON(data), &sheet); err != nil {
		return nil, fmt.Errorf("style: parse jsonc sheet: %w", err)
	}
	return &sheet, nil
}
