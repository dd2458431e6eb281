package hold

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// UI constants
const (
	// Dimensions
	ButtonWidth      = 320
	ButtonHeight     = 56
	ButtonSpacing    = 4
	FooterGap        = 5
	SettingsGap      = 8
	HoldSecondsWidth = 70
)

var (
	// BackgroundColor is the base background color for the demo window.
	BackgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
)

// ButtonConfig holds the static configuration for one demo hold button.
type ButtonConfig struct {
	Name        string
	Label       string
	HoldSeconds int
	Enabled     bool
	ToneHz      float64
}

// ButtonConfigs holds the configuration for all demo buttons.
var ButtonConfigs []*ButtonConfig

// LoadButtonConfigs loads button configurations from the embedded JSON file.
func LoadButtonConfigs(reader AppContentReader) error {
	data, err := reader.ReadFile("assets/buttons_config.json")
	if err != nil {
		return fmt.Errorf("read button configs: %w", err)
	}

	if err := json.Unmarshal(data, &ButtonConfigs); err != nil {
		return fmt.Errorf("unmarshal button configs: %w", err)
	}
	return nil
}
