package renderer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	options "github.com/richinsley/goshapes/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// Frame represents a single rendered frame's data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

type OffscreenRenderer struct {
	fbo         uint32
	colorBuffer uint32
	width       int
	height      int
}

const numBuffers = 3

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid offscreen size %dx%d", width, height)
	}
	or := &OffscreenRenderer{
		width:  width,
		height: height,
	}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenRenderbuffers(1, &or.colorBuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, or.colorBuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, or.colorBuffer)
	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete")
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return or, nil
}

// ReadPixels copies the current FBO contents as tightly packed RGBA rows,
// bottom row first.
func (or *OffscreenRenderer) ReadPixels() []byte {
	pixels := make([]byte, or.width*or.height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return pixels
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteRenderbuffers(1, &or.colorBuffer)
	gl.DeleteFramebuffers(1, &or.fbo)
}

// getArgs builds the ffmpeg arguments for raw RGBA frames read back by
// glReadPixels. The rows arrive bottom-up, hence the vflip.
func getArgs(options *options.ShapeOptions) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", *options.Width, *options.Height),
		"framerate": *options.FPS,
	}

	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}
	codec := ""
	if options.Codec != nil {
		codec = *options.Codec
	}
	switch codec {
	case "hevc":
		outputArgs["c:v"] = "libx265"
		if strings.EqualFold(filepath.Ext(*options.Record), ".mp4") {
			outputArgs["tag:v"] = "hvc1"
		}
	default:
		outputArgs["c:v"] = "libx264"
	}
	return
}

// clicksAt is the simulated click count after t seconds of recording.
func clicksAt(t, every float64) int {
	if every <= 0 {
		return 0
	}
	return int(t / every)
}

// runEncoder is the Consumer. It starts ffmpeg and feeds it frames from frameChan.
func (r *Renderer) runEncoder(options *options.ShapeOptions, frameChan <-chan *Frame, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := getArgs(options)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*options.Record, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if options.FFMPEGPath != nil && *options.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*options.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Unblock the writer if ffmpeg exits early.
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	var writeErr error
	for frame := range frameChan {
		if writeErr != nil {
			continue
		}
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			r.log.Error("Error writing frame to ffmpeg", zap.Int64("pts", frame.PTS), zap.Error(err))
			writeErr = err
		}
	}
	pipeWriter.Close()

	if err := <-errc; err != nil {
		doneChan <- fmt.Errorf("ffmpeg failed: %w", err)
		return
	}
	doneChan <- writeErr
}

// RunOffscreen is the Producer. It renders duration*fps frames into an
// offscreen target, simulating a left click every ClickEvery seconds, and
// streams them to ffmpeg.
func (r *Renderer) RunOffscreen(options *options.ShapeOptions) error {
	width, height := *options.Width, *options.Height
	or, err := NewOffscreenRenderer(width, height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	defer or.Destroy()

	fps := *options.FPS
	if fps <= 0 {
		return fmt.Errorf("invalid frame rate %d", fps)
	}
	totalFrames := int64(*options.Duration * float64(fps))

	frameChan := make(chan *Frame, numBuffers)
	doneChan := make(chan error, 1)
	go r.runEncoder(options, frameChan, doneChan)

	r.log.Info("Recording",
		zap.String("output", *options.Record),
		zap.Int64("frames", totalFrames),
		zap.Int("fps", fps))

	baseClicks := r.scene.Clicks
	for pts := int64(0); pts < totalFrames; pts++ {
		t := float64(pts) / float64(fps)
		r.scene.Clicks = baseClicks + clicksAt(t, *options.ClickEvery)

		gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
		gl.Viewport(0, 0, int32(width), int32(height))
		r.draw()
		gl.Finish()
		frameChan <- &Frame{Pixels: or.ReadPixels(), PTS: pts}
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	close(frameChan)

	return <-doneChan
}
