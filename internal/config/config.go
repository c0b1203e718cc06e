package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	TabWidth    int  `yaml:"tabwidth"`    // spaces inserted per tab key
	ConfirmSave bool `yaml:"confirmsave"` // ask before saving on exit
}

var DefaultConfig = Config{TabWidth: 4, ConfirmSave: true}

// GetConfig reads the yaml config from LINED_CONF or ./config.yaml and
// overrides the defaults; any read or parse failure falls back to defaults.
func GetConfig() Config {
	conf := DefaultConfig

	conffilename, exists := os.LookupEnv("LINED_CONF")
	if !exists { conffilename = "config.yaml" }

	data, err := os.ReadFile(conffilename)
	if err != nil { return conf }

	err = yaml.Unmarshal(data, &conf)
	if err != nil { return DefaultConfig }

	if conf.TabWidth <= 0 { conf.TabWidth = DefaultConfig.TabWidth }
	return conf
}
