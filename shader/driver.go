package shader

// Driver is the subset of the graphics API needed to build a program.
// Handles are the raw GL object names.
//
//go:generate mockgen -source=driver.go -destination=mocks/mock_driver.go -package=mocks
type Driver interface {
	CreateShader(typ Type) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindAttribLocation(program, index uint32, name string)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
}
