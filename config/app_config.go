package config

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// This is the global app config for the settlement demo.
type AppConfig struct {
	// Value of the coinbase output used to seed the demo ledger.
	COINBASE_REWARD float64
	// RSA key size for freshly generated wallet keys.
	KEY_BITS int
	// Log rejected transactions together with the failing check.
	DEBUG bool
}

// ParseAppConfig reads an AppConfig from a yaml file.
func ParseAppConfig(path string) (AppConfig, error) {
	c := AppConfig{}
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(yamlFile, &c); err != nil {
		return c, err
	}
	return c, nil
}
