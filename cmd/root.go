package main

import (
	"context"

	"github.com/richinsley/goshapes/logging"
	"github.com/richinsley/goshapes/options"
	"github.com/richinsley/goshapes/scene"
	"github.com/richinsley/goshapes/shader"
	"github.com/spf13/cobra"
)

type runFunc func(ctx context.Context, opts *options.ShapeOptions, sc *scene.Scene) error

func newRootCmd(run runFunc) *cobra.Command {
	opts := &options.ShapeOptions{}

	cmd := &cobra.Command{
		Use:   "goshapes",
		Short: "Draw a polygon that gains a vertex on every left click",
		Long: "goshapes compiles a vertex/fragment shader pair, links them and draws a polygon.\n" +
			"Left click adds a vertex (3 to 6, then wraps), right click or Escape quits.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.New(*opts.Verbose)
			defer log.Sync() //nolint:errcheck
			logging.SetRoot(log)

			sc, err := buildScene(cmd, opts)
			if err != nil {
				return err
			}
			ctx := logging.Context(cmd.Context(), log)
			return run(ctx, opts, sc)
		},
	}

	f := cmd.Flags()
	opts.VertexShader = f.String("vertex", "shaders/vertexshader.glsl", "Vertex shader source file")
	opts.FragmentShader = f.String("fragment", "shaders/fragmentshader.glsl", "Fragment shader source file")
	opts.Scene = f.String("scene", "", "YAML scene file with shaders, vertices and colors")
	opts.Width = f.Int("width", 800, "Window width")
	opts.Height = f.Int("height", 800, "Window height")
	opts.Title = f.String("title", "Shapes", "Window title")
	opts.Translate = f.Bool("translate", false, "Translate WebGL2 (GLSL ES 3.00) sources to desktop GLSL before compiling")
	opts.Strict = f.Bool("strict", false, "Exit on shader compile or link failure instead of continuing")
	opts.Verbose = f.BoolP("verbose", "v", false, "Enable debug logging")

	opts.Record = f.String("record", "", "Render offscreen and encode to this video file")
	opts.Duration = f.Float64("duration", 8.0, "Duration to record in seconds")
	opts.FPS = f.Int("fps", 30, "Frames per second for recording")
	opts.ClickEvery = f.Float64("click-every", 1.0, "Seconds between simulated clicks while recording (0 disables)")
	opts.Codec = f.String("codec", "h264", "Recording codec: h264 or hevc")
	opts.FFMPEGPath = f.String("ffmpeg", "", "Path to ffmpeg executable")

	return cmd
}

// buildScene picks the scene file if given, otherwise the default polygon.
// Explicit --vertex/--fragment flags replace the scene's shader table.
func buildScene(cmd *cobra.Command, opts *options.ShapeOptions) (*scene.Scene, error) {
	var sc *scene.Scene
	if *opts.Scene != "" {
		var err error
		if sc, err = scene.Load(*opts.Scene); err != nil {
			return nil, err
		}
	} else {
		sc = scene.Default()
	}

	flags := cmd.Flags()
	if *opts.Scene == "" || flags.Changed("vertex") || flags.Changed("fragment") {
		sc.Shaders = []shader.Info{
			{Type: shader.Vertex, Filename: *opts.VertexShader},
			{Type: shader.Fragment, Filename: *opts.FragmentShader},
		}
	}
	return sc, nil
}
