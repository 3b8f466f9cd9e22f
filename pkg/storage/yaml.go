package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CollectionFile is the name of the collection metadata file written at the
// root of a saved collection directory.
const CollectionFile = "collection.yaml"

// collectionMeta is the content of CollectionFile.
type collectionMeta struct {
	Name    string `yaml:"name"`
	UID     string `yaml:"uid"`
	Version string `yaml:"version"`
}

// SaveCollection writes a collection as a directory tree: one directory per
// folder, one YAML file per request, one YAML file per environment under
// environments/, and collection.yaml with the collection metadata.
func SaveCollection(c *Collection, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	meta := collectionMeta{Name: c.Name, UID: c.UID, Version: c.Version}
	if err := writeYAML(meta, filepath.Join(dir, CollectionFile)); err != nil {
		return err
	}

	if err := saveItems(c.Items, dir, dir); err != nil {
		return err
	}

	for _, env := range c.Environments {
		path, err := ValidatePathWithinWorkDir(envFilePath(dir, env), dir)
		if err != nil {
			return err
		}
		if err := SaveEnvironment(env, path); err != nil {
			return err
		}
	}
	return nil
}

func saveItems(items []Item, dir, root string) error {
	used := make(map[string]int)
	for _, item := range items {
		name := uniqueName(SafeFileName(item.Name), used)
		if item.IsFolder() {
			sub, err := ValidatePathWithinWorkDir(filepath.Join(dir, name), root)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(sub, 0755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
			if err := saveItems(item.Items, sub, root); err != nil {
				return err
			}
			continue
		}

		path, err := ValidatePathWithinWorkDir(filepath.Join(dir, name+".yaml"), root)
		if err != nil {
			return err
		}
		if err := SaveRequest(item, path); err != nil {
			return err
		}
	}
	return nil
}

// uniqueName appends " (n)" to file names already used in the same
// directory. Item names themselves are left untouched.
func uniqueName(name string, used map[string]int) string {
	key := strings.ToLower(name)
	n := used[key]
	used[key] = n + 1
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%s (%d)", name, n)
}

// SaveRequest saves a request item to a YAML file
func SaveRequest(item Item, filePath string) error {
	if !strings.HasSuffix(filePath, ".yaml") && !strings.HasSuffix(filePath, ".yml") {
		filePath = filePath + ".yaml"
	}
	return writeYAML(item, filePath)
}

// LoadRequest loads a request item from a YAML file
func LoadRequest(filePath string) (*Item, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var item Item
	if err := yaml.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &item, nil
}

// ListRequests lists the request files of a saved collection, relative to
// its directory.
func ListRequests(baseDir string) ([]string, error) {
	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	envDir := GetEnvironmentsDir(baseDir)
	var files []string
	err := filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path == envDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Base(path) == CollectionFile {
			return nil
		}
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			relPath, _ := filepath.Rel(baseDir, path)
			files = append(files, relPath)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return files, nil
}

// GetEnvironmentsDir returns the environments directory path
func GetEnvironmentsDir(baseDir string) string {
	return filepath.Join(baseDir, "environments")
}

func writeYAML(v any, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(filePath), err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// WriteYAML saves a collection as a single YAML file.
func WriteYAML(c *Collection, filePath string) error {
	return writeYAML(c, filePath)
}
