package options

import (
	"errors"
	"flag"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/richinsley/gltutorials/tutorial"
)

type TutorialOptions struct {
	ConfigFile     *string
	Help           *bool
	Tutorial       *int
	Width          *int
	Height         *int
	Samples        *int    // MSAA samples requested from the window system
	Title          *string // Overrides the tutorial's window title when set
	ShaderDir      *string
	VertexShader   *string // Overrides the tutorial's vertex stage file
	FragmentShader *string // Overrides the tutorial's fragment stage file
	Record         *string // Output file; empty means interactive mode
	Frames         *int
	FPS            *int
	FFmpegPath     *string
	Headless       *bool // Render through an EGL pbuffer instead of a window (Linux only)
	LogJSON        *bool
}

// FileConfig is the TOML form of TutorialOptions. Absent keys stay nil and
// leave the flag defaults alone.
type FileConfig struct {
	Tutorial       *int    `toml:"tutorial"`
	Width          *int    `toml:"width"`
	Height         *int    `toml:"height"`
	Samples        *int    `toml:"samples"`
	Title          *string `toml:"title"`
	ShaderDir      *string `toml:"shader_dir"`
	VertexShader   *string `toml:"vertex_shader"`
	FragmentShader *string `toml:"fragment_shader"`
	Record         *string `toml:"record"`
	Frames         *int    `toml:"frames"`
	FPS            *int    `toml:"fps"`
	FFmpegPath     *string `toml:"ffmpeg"`
	Headless       *bool   `toml:"headless"`
	LogJSON        *bool   `toml:"log_json"`
}

// Register defines the command line flags on fs.
func Register(fs *flag.FlagSet) *TutorialOptions {
	return &TutorialOptions{
		ConfigFile:     fs.String("config", "", "TOML file with default options"),
		Help:           fs.Bool("help", false, "Show help message"),
		Tutorial:       fs.Int("tutorial", 4, "Tutorial to run (1-4)"),
		Width:          fs.Int("width", 1024, "Window width"),
		Height:         fs.Int("height", 768, "Window height"),
		Samples:        fs.Int("samples", 4, "Multisample anti-aliasing samples"),
		Title:          fs.String("title", "", "Window title (defaults to the tutorial's title)"),
		ShaderDir:      fs.String("shaders", "assets/shaders", "Directory holding the GLSL sources"),
		VertexShader:   fs.String("vertex", "", "Vertex shader file, overrides the tutorial's"),
		FragmentShader: fs.String("fragment", "", "Fragment shader file, overrides the tutorial's"),
		Record:         fs.String("record", "", "Record frames to this video file instead of running interactively"),
		Frames:         fs.Int("frames", 300, "Number of frames to record"),
		FPS:            fs.Int("fps", 60, "Frames per second of the recording"),
		FFmpegPath:     fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		Headless:       fs.Bool("headless", false, "Render without a window (requires -record, Linux only)"),
		LogJSON:        fs.Bool("log-json", false, "Log as JSON instead of console text"),
	}
}

// Parse parses args into a new TutorialOptions. Values from -config are
// applied first; flags given explicitly on the command line win.
func Parse(fs *flag.FlagSet, args []string) (*TutorialOptions, error) {
	opts := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *opts.ConfigFile == "" {
		return opts, nil
	}

	cfg, err := LoadFile(*opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	opts.apply(cfg, set)
	return opts, nil
}

// LoadFile decodes a TOML config file. Unknown keys are an error.
func LoadFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg FileConfig
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("config file %s: %s", path, strict.String())
		}
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return &cfg, nil
}

func (o *TutorialOptions) apply(cfg *FileConfig, set map[string]bool) {
	setInt := func(name string, dst *int, src *int) {
		if src != nil && !set[name] {
			*dst = *src
		}
	}
	setString := func(name string, dst *string, src *string) {
		if src != nil && !set[name] {
			*dst = *src
		}
	}
	setBool := func(name string, dst *bool, src *bool) {
		if src != nil && !set[name] {
			*dst = *src
		}
	}

	setInt("tutorial", o.Tutorial, cfg.Tutorial)
	setInt("width", o.Width, cfg.Width)
	setInt("height", o.Height, cfg.Height)
	setInt("samples", o.Samples, cfg.Samples)
	setString("title", o.Title, cfg.Title)
	setString("shaders", o.ShaderDir, cfg.ShaderDir)
	setString("vertex", o.VertexShader, cfg.VertexShader)
	setString("fragment", o.FragmentShader, cfg.FragmentShader)
	setString("record", o.Record, cfg.Record)
	setInt("frames", o.Frames, cfg.Frames)
	setInt("fps", o.FPS, cfg.FPS)
	setString("ffmpeg", o.FFmpegPath, cfg.FFmpegPath)
	setBool("headless", o.Headless, cfg.Headless)
	setBool("log-json", o.LogJSON, cfg.LogJSON)
}

// Validate checks the options for values no tutorial can run with.
func (o *TutorialOptions) Validate() error {
	if _, err := tutorial.Lookup(*o.Tutorial); err != nil {
		return err
	}
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if *o.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", *o.Samples)
	}
	if *o.Record != "" {
		if *o.Frames <= 0 {
			return fmt.Errorf("frames must be positive when recording, got %d", *o.Frames)
		}
		if *o.FPS <= 0 {
			return fmt.Errorf("fps must be positive when recording, got %d", *o.FPS)
		}
	}
	if *o.Headless && *o.Record == "" {
		return fmt.Errorf("headless rendering needs -record, there is no window to show")
	}
	return nil
}
