package options

type ShapeOptions struct {
	VertexShader   *string
	FragmentShader *string
	Scene          *string
	Width          *int
	Height         *int
	Title          *string
	Translate      *bool
	Strict         *bool
	Verbose        *bool
	// Recording options
	Record     *string // Output file; empty runs the interactive window.
	Duration   *float64
	FPS        *int
	ClickEvery *float64 // Seconds between simulated clicks while recording.
	Codec      *string
	FFMPEGPath *string
}

// Recording reports whether the offscreen recorder was requested.
func (o *ShapeOptions) Recording() bool {
	return o.Record != nil && *o.Record != ""
}
