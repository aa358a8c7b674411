package charts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stylefit/backend/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load returns the chart from path when set, otherwise the named built-in.
func Load(name, path string) (domain.SizeChart, error) {
	if path != "" {
		return LoadFile(path)
	}
	return Builtin(name)
}

// LoadFile reads a chart from a .yaml, .yml or .json file and validates it.
// A chart without a name is named after the file.
func LoadFile(path string) (domain.SizeChart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SizeChart{}, fmt.Errorf("failed to read size chart: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	chart, err := Parse(data, ext)
	if err != nil {
		return domain.SizeChart{}, fmt.Errorf("%s: %w", path, err)
	}

	if chart.Name == "" {
		chart.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return chart, nil
}

// Parse decodes and validates a chart. format is a file extension such as ".yaml".
func Parse(data []byte, format string) (domain.SizeChart, error) {
	var chart domain.SizeChart

	switch format {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &chart); err != nil {
			return domain.SizeChart{}, fmt.Errorf("%w: %v", domain.ErrInvalidChart, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &chart); err != nil {
			return domain.SizeChart{}, fmt.Errorf("%w: %v", domain.ErrInvalidChart, err)
		}
	default:
		return domain.SizeChart{}, fmt.Errorf("%w: unsupported chart format %q", domain.ErrInvalidChart, format)
	}

	if err := chart.Validate(); err != nil {
		return domain.SizeChart{}, err
	}

	return chart, nil
}
