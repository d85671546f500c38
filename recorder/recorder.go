// Package recorder encodes rendered frames to a video file by piping raw
// RGBA pixels into ffmpeg.
package recorder

import (
	"fmt"
	"io"
	"os"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

type Config struct {
	Output     string
	Width      int
	Height     int
	FPS        int
	FFmpegPath string
}

func (c Config) validate() error {
	if c.Output == "" {
		return fmt.Errorf("no output file")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %d", c.FPS)
	}
	return nil
}

// FrameSize is the byte length of one RGBA frame.
func (c Config) FrameSize() int { return c.Width * c.Height * 4 }

// command builds the ffmpeg invocation. Frames arrive bottom-up as read back
// from OpenGL, so they are flipped before encoding.
func command(cfg Config) *ffmpeg.Stream {
	inputArgs := ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"framerate": cfg.FPS,
	}
	outputArgs := ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}
	stream := ffmpeg.Input("pipe:", inputArgs).
		Output(cfg.Output, outputArgs).
		OverWriteOutput().
		WithErrorOutput(os.Stderr)
	if cfg.FFmpegPath != "" {
		stream = stream.SetFfmpegPath(cfg.FFmpegPath)
	}
	return stream
}

// Recorder accepts frames from the render thread while the encoder runs in
// its own goroutine.
type Recorder struct {
	cfg    Config
	logger *zap.Logger
	pw     *io.PipeWriter
	errc   chan error
	frames int
	closed bool
	err    error
}

// New starts ffmpeg and returns a Recorder ready for WriteFrame.
func New(cfg Config, logger *zap.Logger) (*Recorder, error) {
	return start(cfg, logger, func(in io.Reader) error {
		return command(cfg).WithInput(in).Run()
	})
}

func start(cfg Config, logger *zap.Logger, run func(io.Reader) error) (*Recorder, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid recorder config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	pr, pw := io.Pipe()
	r := &Recorder{
		cfg:    cfg,
		logger: logger,
		pw:     pw,
		errc:   make(chan error, 1),
	}
	go func() {
		err := run(pr)
		if err == nil {
			err = io.ErrClosedPipe
		}
		// unblock the writer if the encoder exits early
		pr.CloseWithError(err)
		if err == io.ErrClosedPipe {
			err = nil
		}
		r.errc <- err
	}()

	logger.Info("Recording started",
		zap.String("output", cfg.Output),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("fps", cfg.FPS))
	return r, nil
}

// WriteFrame sends one bottom-up RGBA frame to the encoder.
func (r *Recorder) WriteFrame(pixels []byte) error {
	if len(pixels) != r.cfg.FrameSize() {
		return fmt.Errorf("frame is %d bytes, want %d", len(pixels), r.cfg.FrameSize())
	}
	if _, err := r.pw.Write(pixels); err != nil {
		return fmt.Errorf("failed to write frame %d to encoder: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames is the number of frames written so far.
func (r *Recorder) Frames() int { return r.frames }

// Close ends the input stream and waits for the encoder to finish.
// Calling it again returns the first result.
func (r *Recorder) Close() error {
	if r.closed {
		return r.err
	}
	r.closed = true
	r.pw.Close()
	if err := <-r.errc; err != nil {
		r.err = fmt.Errorf("encoder failed: %w", err)
		return r.err
	}
	r.logger.Info("Recording finished", zap.String("output", r.cfg.Output), zap.Int("frames", r.frames))
	return nil
}
