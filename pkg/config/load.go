package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// Load reads a project file and merges it over Default. YAML is used for
// .yaml and .yml files, TOML otherwise. Relative input paths are resolved
// against the project file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "project file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read project file %s", path)
	}

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(data)
	default:
		cfg, err = ParseTOML(data)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	cfg.Inputs = cfg.Inputs.resolve(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseTOML decodes a TOML project over the defaults. Unknown keys are
// rejected so that typos do not silently fall back to default values.
func ParseTOML(data []byte) (*Config, error) {
	cfg := Default()
	cfg.clearLists()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, err
	}
	cfg.restoreLists(md.IsDefined)
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ParseYAML decodes a YAML project over the defaults.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()
	cfg.clearLists()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	cfg.restoreLists(func(key ...string) bool {
		return cfg.listSet(strings.Join(key, "."))
	})
	return cfg, nil
}

// Lists in a project file replace the defaults instead of being merged
// element by element.
var listKeys = []string{"sheets", "pmag_blocks", "decinc_breaks", "valid_sites", "output.formats", "style.grains"}

func (c *Config) clearLists() {
	c.Sheets = nil
	c.PmagBlocks = nil
	c.DecIncBreaks = nil
	c.ValidSites = nil
	c.Output.Formats = nil
	c.Style.Grains = nil
}

func (c *Config) listSet(key string) bool {
	switch key {
	case "sheets":
		return c.Sheets != nil
	case "pmag_blocks":
		return c.PmagBlocks != nil
	case "decinc_breaks":
		return c.DecIncBreaks != nil
	case "valid_sites":
		return c.ValidSites != nil
	case "output.formats":
		return c.Output.Formats != nil
	case "style.grains":
		return c.Style.Grains != nil
	}
	return false
}

func (c *Config) restoreLists(defined func(key ...string) bool) {
	def := Default()
	for _, key := range listKeys {
		if defined(strings.Split(key, ".")...) {
			continue
		}
		switch key {
		case "sheets":
			c.Sheets = def.Sheets
		case "pmag_blocks":
			c.PmagBlocks = def.PmagBlocks
		case "decinc_breaks":
			c.DecIncBreaks = def.DecIncBreaks
		case "valid_sites":
			c.ValidSites = def.ValidSites
		case "output.formats":
			c.Output.Formats = def.Output.Formats
		case "style.grains":
			c.Style.Grains = def.Style.Grains
		}
	}
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func (in Inputs) resolve(dir string) Inputs {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	return Inputs{
		Beds:   abs(in.Beds),
		MagSus: abs(in.MagSus),
		Sites:  abs(in.Sites),
	}
}
