package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisgy/labelexpr/pkg/labelexpr/config"
)

// TestNew verifies Config creation from maps.
func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"key": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.NotNil(t, cfg.Raw())
		})
	}
}

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"name": "premium"}, "name", "default", "premium"},
		{"key missing", map[string]any{"other": "value"}, "name", "default", "default"},
		{"empty string", map[string]any{"name": ""}, "name", "default", ""},
		{"wrong type int", map[string]any{"name": 123}, "name", "default", "default"},
		{"wrong type bool", map[string]any{"name": true}, "name", "default", "default"},
		{"nil map", nil, "name", "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.String(tt.key, tt.defaultVal))
		})
	}
}

// TestInt verifies integer extraction from the types YAML and JSON produce.
func TestInt(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal int
		want       int
	}{
		{"int value", map[string]any{"limit": 10}, "limit", 1, 10},
		{"int64 value", map[string]any{"limit": int64(20)}, "limit", 1, 20},
		{"whole float (json numbers)", map[string]any{"limit": 30.0}, "limit", 1, 30},
		{"fractional float rejected", map[string]any{"limit": 30.5}, "limit", 1, 1},
		{"missing key", map[string]any{}, "limit", 7, 7},
		{"wrong type", map[string]any{"limit": "ten"}, "limit", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.Int(tt.key, tt.defaultVal))
		})
	}
}

// TestBool verifies boolean extraction with defaults.
func TestBool(t *testing.T) {
	cfg := config.New(map[string]any{"strict": true, "notabool": "yes"})

	assert.True(t, cfg.Bool("strict", false))
	assert.False(t, cfg.Bool("missing", false))
	assert.True(t, cfg.Bool("missing", true))
	assert.False(t, cfg.Bool("notabool", false))
}

// TestStringSlice verifies slice extraction from YAML-shaped data.
func TestStringSlice(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal []string
		want       []string
	}{
		{"string slice", map[string]any{"names": []string{"a", "b"}}, "names", nil, []string{"a", "b"}},
		{"any slice", map[string]any{"names": []any{"a", "b"}}, "names", nil, []string{"a", "b"}},
		{"mixed slice rejected", map[string]any{"names": []any{"a", 1}}, "names", []string{"x"}, []string{"x"}},
		{"missing key", map[string]any{}, "names", []string{"x"}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.StringSlice(tt.key, tt.defaultVal))
		})
	}
}

// TestStringMap verifies filter-definition-shaped map extraction.
func TestStringMap(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		key  string
		want map[string]string
	}{
		{
			"string map",
			map[string]any{"filters": map[string]string{"premium": "1&2"}},
			"filters",
			map[string]string{"premium": "1&2"},
		},
		{
			"any map (yaml shape)",
			map[string]any{"filters": map[string]any{"premium": "1&2", "visible": "!3"}},
			"filters",
			map[string]string{"premium": "1&2", "visible": "!3"},
		},
		{
			"non-string value rejected",
			map[string]any{"filters": map[string]any{"premium": 12}},
			"filters",
			nil,
		},
		{"missing key", map[string]any{}, "filters", nil},
		{"wrong type", map[string]any{"filters": "1&2"}, "filters", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.Equal(t, tt.want, cfg.StringMap(tt.key))
		})
	}
}

// TestFromYAML verifies YAML parsing into a Config.
func TestFromYAML(t *testing.T) {
	data := []byte(`
filters:
  premium: "1&2"
  visible: "!(4|5)"
strict: true
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	filters := cfg.StringMap("filters")
	assert.Equal(t, "1&2", filters["premium"])
	assert.Equal(t, "!(4|5)", filters["visible"])
	assert.True(t, cfg.Bool("strict", false))
}

// TestFromYAML_Invalid verifies malformed YAML is rejected.
func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("filters: [unclosed"))
	assert.Error(t, err)
}

// TestFromJSON verifies JSON parsing into a Config.
func TestFromJSON(t *testing.T) {
	data := []byte(`{"filters": {"premium": "1&2"}, "strict": false}`)

	cfg, err := config.FromJSON(data)
	require.NoError(t, err)

	filters := cfg.StringMap("filters")
	assert.Equal(t, "1&2", filters["premium"])
	assert.False(t, cfg.Bool("strict", true))
}

// TestFromFile verifies extension-based format detection.
func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "filters.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("filters:\n  a: \"1\"\n"), 0o644))

	jsonPath := filepath.Join(dir, "filters.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"filters": {"a": "1"}}`), 0o644))

	txtPath := filepath.Join(dir, "filters.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("a=1"), 0o644))

	t.Run("yaml", func(t *testing.T) {
		cfg, err := config.FromFile(yamlPath)
		require.NoError(t, err)
		assert.Equal(t, "1", cfg.StringMap("filters")["a"])
	})

	t.Run("json", func(t *testing.T) {
		cfg, err := config.FromFile(jsonPath)
		require.NoError(t, err)
		assert.Equal(t, "1", cfg.StringMap("filters")["a"])
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := config.FromFile(txtPath)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}
