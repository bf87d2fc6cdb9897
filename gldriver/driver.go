// Package gldriver implements shader.Driver on top of the go-gl bindings.
// All methods must be called from the thread owning the current GL context.
package gldriver

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goshapes/shader"
)

type Driver struct{}

func New() *Driver {
	return &Driver{}
}

func glShaderType(typ shader.Type) uint32 {
	switch typ {
	case shader.Geometry:
		return gl.GEOMETRY_SHADER
	case shader.Fragment:
		return gl.FRAGMENT_SHADER
	default:
		return gl.VERTEX_SHADER
	}
}

func (d *Driver) CreateShader(typ shader.Type) uint32 {
	return gl.CreateShader(glShaderType(typ))
}

func (d *Driver) ShaderSource(s uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(s, 1, csources, nil)
	free()
}

func (d *Driver) CompileShader(s uint32) {
	gl.CompileShader(s)
}

func (d *Driver) CompileStatus(s uint32) bool {
	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Driver) ShaderInfoLog(s uint32) string {
	var logLength int32
	gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(s, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (d *Driver) DeleteShader(s uint32) {
	gl.DeleteShader(s)
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) AttachShader(program, s uint32) {
	gl.AttachShader(program, s)
}

func (d *Driver) BindAttribLocation(program, index uint32, name string) {
	gl.BindAttribLocation(program, index, gl.Str(name+"\x00"))
}

func (d *Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Driver) LinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// Versions reports the GL and GLSL version strings of the current context.
func Versions() (glVersion, glslVersion string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
}

var _ shader.Driver = (*Driver)(nil)
