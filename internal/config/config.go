package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/cardrender/internal/render"
)

// Config represents the application configuration
type Config struct {
	Color   bool              `toml:"color"`
	Width   int               `toml:"width"`
	Palette map[string]string `toml:"palette"`
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardrender", "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if _, err := config.ItemPalette(); err != nil {
		return nil, err
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := &Config{
		Color:   true,
		Width:   0, // Use the terminal width
		Palette: map[string]string{},
	}

	if err := saveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// saveConfig writes the config file, creating its directory if needed
func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// ItemPalette converts the palette section into item kinds
func (c *Config) ItemPalette() (map[render.ItemKind]string, error) {
	out := make(map[render.ItemKind]string, len(c.Palette))
	for name, hex := range c.Palette {
		kind, ok := render.ParseItemKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown item kind in palette: %s", name)
		}
		out[kind] = hex
	}
	return out, nil
}

// SetPaletteColor sets the icon colour of one item kind
func SetPaletteColor(kindName, hex string) error {
	if _, ok := render.ParseItemKind(kindName); !ok {
		return fmt.Errorf("unknown item kind: %s", kindName)
	}
	if _, err := colorful.Hex(hex); err != nil {
		return fmt.Errorf("invalid colour %q: %w", hex, err)
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if config.Palette == nil {
		config.Palette = map[string]string{}
	}
	config.Palette[kindName] = hex

	return saveConfig(config)
}

// SetWidth sets the rendering width, 0 meaning the terminal width
func SetWidth(width int) error {
	if width < 0 {
		return fmt.Errorf("width must not be negative: %d", width)
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.Width = width
	return saveConfig(config)
}

// SetColor enables or disables coloured output
func SetColor(enabled bool) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.Color = enabled
	return saveConfig(config)
}
