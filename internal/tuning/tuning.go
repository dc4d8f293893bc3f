// Package tuning loads pipeline tuning parameters from a JSON file.
package tuning

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"

	bodypose "github.com/movewise/kinemetric/body_pose"
)

// Load reads a JSON tuning file and decodes it over the default pipeline
// configuration, so a file only needs to name the parameters it changes.
func Load(path string) (*bodypose.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tuning file: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing tuning file: %w", err)
	}

	cfg := bodypose.DefaultConfig()
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decoding tuning parameters: %w", err)
	}
	return &cfg, nil
}
