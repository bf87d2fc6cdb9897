package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goshapes/gldriver"
	"github.com/richinsley/goshapes/glfwcontext"
	"github.com/richinsley/goshapes/logging"
	"github.com/richinsley/goshapes/options"
	"github.com/richinsley/goshapes/renderer"
	"github.com/richinsley/goshapes/scene"
	"github.com/richinsley/goshapes/shader"
	"github.com/richinsley/goshapes/translator"
	"go.uber.org/zap"
)

func runShapes(ctx context.Context, opts *options.ShapeOptions, sc *scene.Scene) error {
	log := logging.From(ctx)
	if err := glfwcontext.InitGraphics(log); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfwcontext.TerminateGraphics(log)

	// If recording, the window will be hidden
	win, err := glfwcontext.New(opts, !opts.Recording())
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Shutdown()

	rlog, _ := logging.SubFrom(ctx, "renderer")
	r, err := renderer.NewRenderer(win, gldriver.New(), sc, rlog)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	var shaderOpts []shader.Option
	if *opts.Translate {
		shaderOpts = append(shaderOpts, shader.WithTranslator(translator.Translate))
	}
	if err := r.InitScene(*opts.Strict, shaderOpts...); err != nil {
		return err
	}

	if opts.Recording() {
		if err := r.RunOffscreen(opts); err != nil {
			return fmt.Errorf("offscreen rendering failed: %w", err)
		}
		log.Info("Recording finished", zap.String("output", *opts.Record))
		return nil
	}

	// Space is the keyboard equivalent of a left click.
	win.RegisterKeyCallback(glfw.KeySpace, r.Click)

	log.Debug("Starting interactive render loop")
	r.Run()
	return nil
}

func init() {
	runtime.LockOSThread()
}

func main() {
	cmd := newRootCmd(runShapes)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
