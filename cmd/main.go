package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/richinsley/gltutorials/glfwcontext"
	"github.com/richinsley/gltutorials/graphics"
	"github.com/richinsley/gltutorials/headless"
	"github.com/richinsley/gltutorials/options"
	"github.com/richinsley/gltutorials/recorder"
	"github.com/richinsley/gltutorials/renderer"
	"github.com/richinsley/gltutorials/tutorial"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func runTutorial(opts *options.TutorialOptions, logger *zap.Logger) error {
	tut, err := tutorial.Lookup(*opts.Tutorial)
	if err != nil {
		return err
	}
	title := tut.Title
	if *opts.Title != "" {
		title = *opts.Title
	}

	var ctx graphics.Context
	if *opts.Headless {
		ctx, err = headless.NewHeadless(*opts.Width, *opts.Height, logger)
		if err != nil {
			return fmt.Errorf("failed to create headless context: %w", err)
		}
	} else {
		if err := glfwcontext.InitGraphics(logger); err != nil {
			return err
		}
		defer glfwcontext.TerminateGraphics(logger)

		ctx, err = glfwcontext.New(glfwcontext.WindowConfig{
			Width:   *opts.Width,
			Height:  *opts.Height,
			Title:   title,
			Samples: *opts.Samples,
		}, logger)
		if err != nil {
			return err
		}
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderer(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Shutdown()

	if err := r.InitScene(tut, *opts.ShaderDir, *opts.VertexShader, *opts.FragmentShader); err != nil {
		return err
	}
	logger.Info("Initialized.", zap.Int("tutorial", tut.Number), zap.String("title", title))

	if *opts.Record == "" {
		logger.Info("Starting interactive render loop, press Escape to quit")
		r.Run()
		return nil
	}

	width, height := ctx.GetFramebufferSize()
	rec, err := recorder.New(recorder.Config{
		Output:     *opts.Record,
		Width:      width,
		Height:     height,
		FPS:        *opts.FPS,
		FFmpegPath: *opts.FFmpegPath,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to start recorder: %w", err)
	}
	if err := r.RunRecording(rec, *opts.Frames); err != nil {
		return fmt.Errorf("recording failed: %w", err)
	}
	logger.Info("Successfully recorded", zap.String("output", *opts.Record), zap.Int("frames", rec.Frames()))
	return nil
}

func main() {
	opts, err := options.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *opts.Help {
		fmt.Println("OpenGL tutorials")
		flag.PrintDefaults()
		return
	}

	logger, err := newLogger(*opts.LogJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := opts.Validate(); err != nil {
		logger.Fatal("Invalid options", zap.Error(err))
	}

	if err := runTutorial(opts, logger); err != nil {
		logger.Fatal("Tutorial failed", zap.Error(err))
	}
}
