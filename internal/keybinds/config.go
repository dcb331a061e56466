package keybinds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the user's keybinding override file: one key/action map per
// context. User bindings are applied on top of the defaults.
type Config struct {
	Global  map[string]string `yaml:"global,omitempty"`
	Edit    map[string]string `yaml:"edit,omitempty"`
	Command map[string]string `yaml:"command,omitempty"`
}

// LoadConfig reads a keybinding override file. A missing file is not an
// error; callers get a nil config back.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds file %s: %w", path, err)
	}

	return &config, nil
}

// ApplyConfig layers user bindings over a registry after validating them.
func ApplyConfig(registry *Registry, config *Config) error {
	if config == nil {
		return nil
	}

	result := NewValidator().Validate(config)
	if result.HasErrors() {
		return fmt.Errorf("invalid keybinds:\n%s", result.String())
	}

	for context, section := range config.sections() {
		for key, action := range section {
			registry.Register(context, key, Action(action))
		}
	}
	return nil
}

func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:  c.Global,
		ContextEdit:    c.Edit,
		ContextCommand: c.Command,
	}
}
