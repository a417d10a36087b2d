package venue

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type tableFile struct {
	Venues []Entry `yaml:"venues"`
}

// LoadTable reads a venue table from a YAML file of the form:
//
//	venues:
//	  - name: Montevideo
//	    country: Uruguay
//	    requires_customs: true
func LoadTable(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read venue table: %w", err)
	}
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse venue table %s: %w", path, err)
	}
	for _, e := range file.Venues {
		if e.Name == "" || e.Country == "" {
			return nil, fmt.Errorf("venue table %s: entry with empty name or country", path)
		}
	}
	return file.Venues, nil
}
