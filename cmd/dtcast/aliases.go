package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// resolveAlias loads a YAML file mapping alias names to format strings
// (grounded on sqldef's database.ParseGeneratorConfig: read the whole
// file, decode into a plain map, look up by key) and returns the format
// string for name, or name itself if it isn't a key in the file.
func resolveAlias(configFile, name string) (string, error) {
	buf, err := os.ReadFile(configFile)
	if err != nil {
		return "", fmt.Errorf("reading alias file %q: %w", configFile, err)
	}

	var aliases map[string]string
	if err := yaml.Unmarshal(buf, &aliases); err != nil {
		return "", fmt.Errorf("parsing alias file %q: %w", configFile, err)
	}

	if format, ok := aliases[name]; ok {
		return format, nil
	}
	return name, nil
}
