package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Project is the optional dieter.yaml project file: a non-normative
// convenience declaring the qualifier names a directory of sources
// expects to introduce, and whether strict mode is on. Its absence is
// not an error.
type Project struct {
	Qualifiers []string `yaml:"qualifiers"`
	Strict     bool     `yaml:"strict"`
}

// LoadProject reads dieter.yaml at path. A missing file returns a zero
// Project and no error.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Project{}, nil
		}
		return nil, err
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
