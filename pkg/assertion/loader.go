package assertion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// bankFile is the on-disk structure for an assertion bank. JSON
// banks are read with the same decoder since JSON is valid YAML.
type bankFile struct {
	Version    string       `yaml:"version"`
	Assertions []Definition `yaml:"assertions"`
}

// LoadFile reads a YAML or JSON assertion bank and validates
// every definition in it.
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read assertions file %s: %w", path, err,
		)
	}

	return loadFromBytes(data, path)
}

// LoadDir loads all .json and .yaml/.yml bank files from a
// directory in lexical order. It does not recurse into
// subdirectories. Names must be unique across the directory.
func LoadDir(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isBankFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var defs []Definition
	for _, name := range names {
		p := filepath.Join(dir, name)
		loaded, err := LoadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", p, err)
		}
		defs = append(defs, loaded...)
	}

	if err := ValidateAll(defs); err != nil {
		return nil, fmt.Errorf("assertions in %s: %w", dir, err)
	}

	return defs, nil
}

// Load reads path as a bank file or, if it is a directory, as a
// directory of bank files.
func Load(path string) ([]Definition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// Marshal encodes definitions as a YAML bank.
func Marshal(defs []Definition) ([]byte, error) {
	data, err := yaml.Marshal(bankFile{Version: "1", Assertions: defs})
	if err != nil {
		return nil, fmt.Errorf("marshal assertions YAML: %w", err)
	}
	return data, nil
}

func loadFromBytes(data []byte, source string) ([]Definition, error) {
	var bank bankFile
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf(
			"failed to parse assertions from %s: %w", source, err,
		)
	}

	if err := ValidateAll(bank.Assertions); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	for i := range bank.Assertions {
		bank.Assertions[i], _ = normalize(bank.Assertions[i])
	}

	return bank.Assertions, nil
}

func isBankFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
