package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/gridops/recovery-optimizer/model"
)

// loadInput reads a model.Input from path, dispatching on its
// extension: .json for encoding/json, .yaml/.yml for yaml.v3.
func loadInput(path string) (model.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Input{}, fmt.Errorf("read %s: %w", path, err)
	}

	var in model.Input
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &in)
	case ".json", "":
		err = json.Unmarshal(data, &in)
	default:
		return model.Input{}, fmt.Errorf("unsupported input extension %q", ext)
	}
	if err != nil {
		return model.Input{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return in, nil
}

// writeOutput serializes v as indented JSON to path, or stdout if path
// is empty.
func writeOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
