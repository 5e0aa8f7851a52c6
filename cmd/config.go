package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/unleft/grammar"
)

const defaultConfigFile = "unleft.toml"

// Config is the content of an unleft.toml file.
type Config struct {
	// Style is the helper nonterminal naming style, "prime" or "tail".
	Style string `toml:"style"`

	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`

	// Strict makes the check command fail when left recursion is found.
	Strict bool `toml:"strict"`
}

// loadConfig reads path, or defaultConfigFile when path is empty. A missing
// default file is not an error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logrus.WithField("key", key.String()).Warn("unknown config key")
	}
	if _, err := grammar.ParseNameStyle(cfg.Style); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveStyle picks the naming style from the flag, falling back to the
// config file.
func resolveStyle(flag string) (grammar.NameStyle, error) {
	return grammar.ParseNameStyle(firstNonEmpty(flag, settings.Style))
}

func readSource(path string) (text, filename string, err error) {
	var buf []byte
	switch path {
	case "", "-":
		buf, err = io.ReadAll(os.Stdin)
	default:
		buf, err = os.ReadFile(path)
		filename = path
	}
	if err != nil {
		return "", "", fmt.Errorf("read grammar: %w", err)
	}
	return string(buf), filename, nil
}

func writeOutput(path, text string) error {
	switch path {
	case "", "-":
		_, err := os.Stdout.WriteString(text)
		return err
	default:
		return os.WriteFile(path, []byte(text), 0644)
	}
}
