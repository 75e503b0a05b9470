package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dsssp/config"
)

type ConfigSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigSuite) write(name, body string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))

	return path
}

func (s *ConfigSuite) TestLoadConfig_OverridesDefaults() {
	path := s.write("run.yaml", `
workers: 4
source: 7
round_timeout: 250ms
input:
  path: graph.bin
  format: binary
log:
  level: debug
  format: json
verify: true
`)
	cfg, err := config.LoadConfig(path)
	s.Require().NoError(err)

	s.Equal(4, cfg.Workers)
	s.Equal(7, cfg.Source)
	s.Equal(250*time.Millisecond, cfg.RoundTimeout)
	s.Equal("graph.bin", cfg.Input.Path)
	s.Equal("debug", cfg.Log.Level)
	s.True(cfg.Verify)
	// untouched keys keep defaults
	s.Equal(config.GenRandom, cfg.Generator.Kind)
	s.Equal(0, cfg.MailboxSize)
}

func (s *ConfigSuite) TestLoadConfig_Invalid() {
	path := s.write("bad.yaml", "workers: 0\n")
	_, err := config.LoadConfig(path)
	s.ErrorIs(err, config.ErrInvalid)

	path = s.write("broken.yaml", "workers: [\n")
	_, err = config.LoadConfig(path)
	s.Error(err)

	_, err = config.LoadConfig(filepath.Join(s.dir, "missing.yaml"))
	s.Error(err)
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DSSSP_WORKERS", "8")
	t.Setenv("DSSSP_SOURCE", "3")
	t.Setenv("DSSSP_GEN", "grid")
	t.Setenv("DSSSP_PROB", "0.25")
	t.Setenv("DSSSP_ROUND_TIMEOUT", "2s")
	t.Setenv("DSSSP_VERIFY", "true")
	t.Setenv("DSSSP_MAILBOX_SIZE", "not-a-number")

	cfg := config.LoadConfigFromEnv()
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 3, cfg.Source)
	assert.Equal(t, config.GenGrid, cfg.Generator.Kind)
	assert.InDelta(t, 0.25, cfg.Generator.Prob, 1e-12)
	assert.Equal(t, 2*time.Second, cfg.RoundTimeout)
	assert.True(t, cfg.Verify)
	assert.Equal(t, 0, cfg.MailboxSize, "unparsable values fall back to the default")
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	require.NoError(t, config.Default().Validate())

	cases := map[string]func(c *config.Config){
		"workers":        func(c *config.Config) { c.Workers = 0 },
		"default source": func(c *config.Config) { c.DefaultSource = -1 },
		"timeout":        func(c *config.Config) { c.RoundTimeout = -time.Second },
		"mailbox":        func(c *config.Config) { c.MailboxSize = -2 },
		"format":         func(c *config.Config) { c.Input.Format = "xml" },
		"generator":      func(c *config.Config) { c.Generator.Kind = "torus" },
		"nodes":          func(c *config.Config) { c.Generator.Nodes = 0 },
		"prob":           func(c *config.Config) { c.Generator.Prob = 1.5 },
		"log format":     func(c *config.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			mutate(c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}

	// generator settings are ignored when an input file is given
	c := config.Default()
	c.Input.Path = "graph.txt"
	c.Generator.Kind = "torus"
	assert.NoError(t, c.Validate())
}
