package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "coinbase_reward: 25.0\nkey_bits: 2048\ndebug: true\n"
	assert.Nil(t, ioutil.WriteFile(path, []byte(content), 0644))

	c, err := ParseAppConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, 25.0, c.COINBASE_REWARD)
	assert.Equal(t, 2048, c.KEY_BITS)
	assert.True(t, c.DEBUG)
}

func TestParseAppConfigMissingFile(t *testing.T) {
	_, err := ParseAppConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotNil(t, err)
}
