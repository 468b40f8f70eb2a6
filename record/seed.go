package record

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Int and Str return pointers for building rows literally.
func Int(v int64) *int64   { return &v }
func Str(v string) *string { return &v }

// Seed returns the fixed dataset that Reset restores. Each call returns a
// fresh copy.
func Seed() []Row {
	return []Row{
		{ID: Int(1), TargetID: Int(1), Name: Str("uintValue"), DynamicValue: Str("100"), DynamicValue2: Str("aaa")},
		{ID: Int(2), TargetID: Int(2), Name: Str("floatValue"), DynamicValue: Str("1.0"), DynamicValue2: Str("aaa")},
		{ID: Int(3), TargetID: Int(3), Name: Str("binaryValue"), DynamicValue: Str("1"), DynamicValue2: Str("aaa")},
		{ID: Int(4), TargetID: Int(4), Name: Str("stringValue"), DynamicValue: Str("hoge"), DynamicValue2: Str("aaa")},
	}
}

// Parse decodes a YAML (or JSON) list of rows.
func Parse(data []byte) ([]Row, error) {
	var rows []Row

	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse rows: %w", err)
	}

	return rows, nil
}

// LoadFile reads and parses a rows file from the given path.
func LoadFile(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows file %s: %w", path, err)
	}

	return Parse(data)
}
