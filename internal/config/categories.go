package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// categoriesFileEnv names a YAML file that overrides the built-in category
// options.
const categoriesFileEnv = "BLOGDESK_CATEGORIES_FILE"

// DefaultCategories returns the built-in category options, in display order.
func DefaultCategories() []string {
	return []string{
		"Technology",
		"Health",
		"Business",
		"Lifestyle",
		"Education",
		"Travel",
		"Sports",
		"Entertainment",
		"Food",
		"Finance",
	}
}

// categoriesFile is the YAML shape of a category override file:
//
//	categories:
//	  - Travel
//	  - Food
type categoriesFile struct {
	Categories []string `yaml:"categories"`
}

// LoadCategories returns the category options, reading the override file
// named by BLOGDESK_CATEGORIES_FILE when set. An unreadable or empty
// override is an error rather than a silent fallback, since a wrong
// category list would reject valid drafts.
func LoadCategories() ([]string, error) {
	path := os.Getenv(categoriesFileEnv)
	if path == "" {
		return DefaultCategories(), nil
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- path is operator-provided configuration
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}

	var file categoriesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse categories file: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("categories file %s defines no categories", path)
	}
	return file.Categories, nil
}
