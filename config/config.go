// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads settings shared by the command line tools.
//
// Settings are layered: the defaults from Default, then an optional run
// control file, then any flag the user set explicitly. The run control
// file may be TOML, YAML or JSON; the format is taken from the extension.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mdhender/trash/renderer"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the tools. Not every tool uses every
// setting.
type Config struct {
	File             string             `json:"File" toml:"file" yaml:"file"`
	Timeout          int                `json:"Timeout" toml:"timeout" yaml:"timeout"` // seconds
	Verbose          bool               `json:"Verbose" toml:"verbose" yaml:"verbose"`
	DisplayName      bool               `json:"DisplayName" toml:"display-name" yaml:"display-name"`
	AntlrStyle       bool               `json:"AntlrStyle" toml:"antlr-style" yaml:"antlr-style"`
	ParenIndentStyle bool               `json:"ParenIndentStyle" toml:"paren-indent-style" yaml:"paren-indent-style"`
	IndentStyle      bool               `json:"IndentStyle" toml:"indent-style" yaml:"indent-style"`
	BlockTreeStyle   bool               `json:"BlockTreeStyle" toml:"block-tree-style" yaml:"block-tree-style"`
	Only             string             `json:"Only" toml:"only" yaml:"only"`
	Grammars         map[string]Grammar `json:"Grammars" toml:"grammars" yaml:"grammars"`

	// dir is the directory of the file the config was loaded from.
	// Relative grammar paths are resolved against it.
	dir string
}

// Grammar names the symbol tables of one lexer or parser identifier.
type Grammar struct {
	Tokens string   `json:"Tokens" toml:"tokens" yaml:"tokens"` // ANTLR .tokens file
	Rules  []string `json:"Rules" toml:"rules" yaml:"rules"`    // rule names in index order
}

// DefaultTimeout is the watchdog limit in seconds.
const DefaultTimeout = 300

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Timeout: DefaultTimeout,
	}
}

// Format is the encoding of a run control file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	}
	return "unknown"
}

// DetectFormat determines the format from the file extension.
// Files without a known extension are read as JSON, the format of the
// older .rc files.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// RCNames are the run control files searched for in the home directory,
// in order.
var RCNames = []string{
	".trash.toml",
	".trash.yaml",
	".trash.yml",
	".trash.json",
	".trash.rc",
	".trwdog.rc",
}

// Discover returns the first run control file found in dir, or the
// empty string if there is none.
func Discover(dir string) string {
	for _, name := range RCNames {
		path := filepath.Join(dir, name)
		if sb, err := os.Stat(path); err == nil && sb.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// Load reads the run control file at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the first run control file in the user's home
// directory. A missing file is not an error.
func LoadDefault() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	path := Discover(home)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Merge reads the file at path into cfg. Settings that are absent from
// the file keep their current values.
func (cfg *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	if err := cfg.decode(data, DetectFormat(path)); err != nil {
		return errors.Wrapf(err, "config: %s", path)
	}
	cfg.dir = filepath.Dir(path)
	return nil
}

func (cfg *Config) decode(data []byte, format Format) error {
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return errors.Wrap(err, "toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errors.Wrap(err, "yaml")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, cfg); err != nil {
			return errors.Wrap(err, "json")
		}
	default:
		return errors.New("unknown format")
	}
	return cfg.Validate()
}

// Validate reports settings that can never work.
func (cfg *Config) Validate() error {
	if cfg.Timeout < 0 {
		return errors.Errorf("timeout: %d: must not be negative", cfg.Timeout)
	}
	for id, g := range cfg.Grammars {
		if id == "" {
			return errors.New("grammars: empty identifier")
		}
		for i, rule := range g.Rules {
			if rule == "" {
				return errors.Errorf("grammars: %s: rule %d: empty name", id, i)
			}
		}
	}
	return nil
}

// Style returns the render style chosen by the style settings.
func (cfg *Config) Style() renderer.Style {
	return renderer.SelectStyle(cfg.AntlrStyle, cfg.ParenIndentStyle, cfg.IndentStyle, cfg.BlockTreeStyle)
}

// Registry loads the symbol tables named in Grammars.
func (cfg *Config) Registry() (*renderer.Registry, error) {
	reg := renderer.NewRegistry()
	for id, g := range cfg.Grammars {
		if g.Tokens != "" {
			path := g.Tokens
			if !filepath.IsAbs(path) && cfg.dir != "" {
				path = filepath.Join(cfg.dir, path)
			}
			names, err := renderer.LoadTokensFile(path)
			if err != nil {
				return nil, errors.Wrapf(err, "grammars: %s", id)
			}
			reg.AddLexer(id, names)
		}
		if len(g.Rules) != 0 {
			reg.AddParser(id, g.Rules)
		}
	}
	return reg, nil
}
