package config

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const tuiConfigFile = "reversi/tui.yml"

var ErrInvalidSymbol = errors.New("symbol must be a single printable character")

// TUI configures the terminal client. It is read from $XDG_CONFIG_HOME/reversi/tui.yml when present.
type TUI struct {
	BoardSize   int     `yaml:"board-size" env:"REVERSI_BOARD_SIZE" env-default:"8"`
	Layout      string  `yaml:"layout" env:"REVERSI_LAYOUT" env-default:"standard"`
	AdvisorSeed int64   `yaml:"advisor-seed" env:"REVERSI_ADVISOR_SEED" env-default:"0"`
	Symbols     Symbols `yaml:"symbols"`
}

type Symbols struct {
	Dark  string `yaml:"dark" env-default:"●"`
	Light string `yaml:"light" env-default:"○"`
	Hint  string `yaml:"hint" env-default:"+"`
	Empty string `yaml:"empty" env-default:"·"`
}

func LoadTUI() (*TUI, error) {
	config := &TUI{}

	path, err := xdg.SearchConfigFile(tuiConfigFile)
	if err != nil {
		// no config file, defaults and environment only
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, config.Symbols.Validate()
	}

	if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
	}

	return config, config.Symbols.Validate()
}

func (that Symbols) Validate() error {
	for name, symbol := range map[string]string{
		"dark":  that.Dark,
		"light": that.Light,
		"hint":  that.Hint,
		"empty": that.Empty,
	} {
		r, size := utf8.DecodeRuneInString(symbol)
		if size == 0 || size != len(symbol) || !unicode.IsPrint(r) {
			return fmt.Errorf("%w: %s %q", ErrInvalidSymbol, name, symbol)
		}
	}

	return nil
}

// Rune - the symbol as drawn on the board, Validate guarantees it is a single rune.
func Rune(symbol string) rune {
	r, _ := utf8.DecodeRuneInString(symbol)
	return r
}
