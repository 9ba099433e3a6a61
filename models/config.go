// Package models defines shared configuration types.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the scrape target. Defaults point at the Royal Galician
// Academy dictionary; a YAML file can override any field if the site
// changes its markup.
type Config struct {
	SourceURL     string `yaml:"source_url"`
	ContainerID   string `yaml:"container_id"`
	WeekListClass string `yaml:"week_list_class"`
	ItemClass     string `yaml:"item_class"`
}

func DefaultConfig() *Config {
	return &Config{
		SourceURL:     "https://academia.gal/dicionario",
		ContainerID:   "_com_ideit_ragportal_liferay_dictionary_TopSearchsPortlet_INSTANCE_kzkg_",
		WeekListClass: "dictionary-topsearch__list--week",
		ItemClass:     "dictionary-topsearch__item",
	}
}

// LoadConfig reads a YAML config file on top of the defaults. An empty
// path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SourceURL == "" {
		return nil, fmt.Errorf("config: source_url must not be empty")
	}
	return cfg, nil
}
