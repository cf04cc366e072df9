package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"storefront", "-a", "http://shop.example.com", "-p", "10", "-s", "150"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://shop.example.com", cfg.ServerEndpointAddr)
	assert.Equal(t, "storefront.db", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"storefront", "-unknown", "x", "-d", "local.db"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "local.db", cfg.DatabaseDSN)
}
