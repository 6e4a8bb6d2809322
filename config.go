package glerror

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	OutputStderr  = "stderr"
	OutputStdout  = "stdout"
	OutputDiscard = "discard"

	FormatText = "text"
	FormatJSON = "json"
)

var targetNames = map[string]FramebufferTarget{
	"framebuffer":      FRAMEBUFFER,
	"read_framebuffer": READ_FRAMEBUFFER,
	"draw_framebuffer": DRAW_FRAMEBUFFER,
}

type Config struct {
	Output   string `yaml:"output"`
	Format   string `yaml:"format"`
	Target   string `yaml:"target"`
	MaxDrain int    `yaml:"max_drain"`
}

func DefaultConfig() Config {
	return Config{
		Output:   OutputStderr,
		Format:   FormatText,
		Target:   "framebuffer",
		MaxDrain: defaultMaxDrain,
	}
}

// LoadConfig reads YAML config. Omitted fields keep the default values.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if _, err := c.writer(); err != nil {
		return err
	}
	if _, err := c.target(); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.MaxDrain < 0 {
		return fmt.Errorf("max_drain must not be negative: %d", c.MaxDrain)
	}
	return nil
}

func (c Config) writer() (io.Writer, error) {
	switch c.Output {
	case OutputStderr:
		return os.Stderr, nil
	case OutputStdout:
		return os.Stdout, nil
	case OutputDiscard:
		return io.Discard, nil
	default:
		return nil, fmt.Errorf("unknown output %q", c.Output)
	}
}

func (c Config) target() (FramebufferTarget, error) {
	t, ok := targetNames[c.Target]
	if !ok {
		return 0, fmt.Errorf("unknown framebuffer target %q", c.Target)
	}
	return t, nil
}

func NewWithConfig(ctx Context, c Config) (*Reporter, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	w, _ := c.writer()
	t, _ := c.target()
	l, err := newLogger(w, c.Format)
	if err != nil {
		return nil, err
	}
	r := New(ctx)
	r.Logger = l
	r.Target = t
	if c.MaxDrain > 0 {
		r.MaxDrain = c.MaxDrain
	}
	return r, nil
}
