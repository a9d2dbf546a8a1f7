package config

import (
	"errors"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.1.0"

type Config struct {
	Notes       []string
	File        string
	Width       int
	Height      int
	Shapes      int
	Seed        int64 // 0 picks one from the clock
	Mute        bool
	Duration    time.Duration
	SampleRate  int
	Out         string
	SVG         string
	WAV         string
	Interactive bool
	Sharp       bool
	Debug       bool
}

func newApp(c *Config) *kingpin.Application {
	app := kingpin.New("notecanvas", "Paint musical notes as abstract shapes and play their pitch.")
	app.Version(Version)
	app.Arg("notes", "Notes to draw, such as C D# e").StringsVar(&c.Notes)
	app.Flag("file", "Read notes from a file").Short('f').ExistingFileVar(&c.File)
	app.Flag("width", "Canvas width in pixels").Default("800").Short('W').IntVar(&c.Width)
	app.Flag("height", "Canvas height in pixels").Default("600").Short('H').IntVar(&c.Height)
	app.Flag("shapes", "Shapes drawn per note").Default("3").Short('n').IntVar(&c.Shapes)
	app.Flag("seed", "Random seed, 0 for a random one").Default("0").Short('s').Int64Var(&c.Seed)
	app.Flag("mute", "Do not play notes").Short('m').BoolVar(&c.Mute)
	app.Flag("duration", "Tone length").Default("500ms").Short('d').DurationVar(&c.Duration)
	app.Flag("sample-rate", "Audio sample rate").Default("44100").IntVar(&c.SampleRate)
	app.Flag("out", "Write the canvas as png").Default("arte-musical.png").Short('o').StringVar(&c.Out)
	app.Flag("svg", "Also write the canvas as svg").StringVar(&c.SVG)
	app.Flag("wav", "Also write the tones as wav").StringVar(&c.WAV)
	app.Flag("interactive", "Play notes from the keyboard").Short('i').BoolVar(&c.Interactive)
	app.Flag("sharp", "Start with sharp turned on").BoolVar(&c.Sharp)
	app.Flag("debug", "Verbose logging").BoolVar(&c.Debug)
	return app
}

// Parse reads the command line, without the program name.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	if _, err := newApp(c).Parse(args); nil != err {
		return nil, err
	}
	if err := c.validate(); nil != err {
		return nil, err
	}
	if len(c.Notes) == 0 && c.File == "" {
		c.Interactive = true
	}
	return c, nil
}

func (c *Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.New("canvas size must be positive")
	case c.Shapes < 1:
		return errors.New("at least one shape per note is required")
	case c.SampleRate <= 0:
		return errors.New("sample rate must be positive")
	case c.Duration <= 0:
		return errors.New("tone duration must be positive")
	}
	return nil
}
