package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Formatting carries the formatter options threaded through the policy
// chain. The suppression engine treats it as opaque; only the companion
// brace policy consults it.
type Formatting struct {
	IndentWidth               int  `toml:"indent_width"`
	UseTabs                   bool `toml:"use_tabs"`
	KeepBlocksOnSingleLine    bool `toml:"keep_blocks_on_single_line"`
	KeepAccessorsOnSingleLine bool `toml:"keep_accessors_on_single_line"`
}

// Default returns the options used when no config file is present.
func Default() Formatting {
	return Formatting{
		IndentWidth:               4,
		UseTabs:                   false,
		KeepBlocksOnSingleLine:    true,
		KeepAccessorsOnSingleLine: true,
	}
}

// Load reads a TOML options file over the defaults. A missing file is not an
// error: defaults are returned.
func Load(path string) (Formatting, error) {
	f := Default()
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Formatting{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Formatting{}, fmt.Errorf("config: unknown key %q in %s", undecoded[0].String(), path)
	}
	if f.IndentWidth <= 0 {
		f.IndentWidth = 4
	}
	return f, nil
}
