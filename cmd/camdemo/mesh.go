package main

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/crydev/quatcam/internal/openglhelper"
)

const vertexShaderSource = `#version 460 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 viewProj;
uniform mat4 model;

out vec3 normal;

void main() {
	normal = aNormal;
	gl_Position = viewProj * model * vec4(aPos, 1.0);
}
`

const fragmentShaderSource = `#version 460 core
in vec3 normal;

uniform vec3 lightDir;
uniform vec3 baseColor;

out vec4 fragColor;

void main() {
	float diffuse = max(dot(normalize(normal), lightDir), 0.0);
	vec3 color = baseColor * (0.25 + 0.75 * diffuse);
	fragColor = vec4(color, 1.0);
}
`

// Unit cube centered on the origin, position + normal per vertex.
var cubeVertices = []float32{
	// front (+z)
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,
	// back (-z)
	-0.5, -0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	// left (-x)
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	// right (+x)
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	// bottom (-y)
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
	// top (+y)
	-0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
}

// Ground plane quad, position + normal per vertex.
var groundVertices = []float32{
	-200, 0, -200, 0, 1, 0,
	200, 0, -200, 0, 1, 0,
	200, 0, 200, 0, 1, 0,
	200, 0, 200, 0, 1, 0,
	-200, 0, 200, 0, 1, 0,
	-200, 0, -200, 0, 1, 0,
}

// cubeMesh holds the static demo geometry: one cube VAO drawn at many
// positions, plus a ground plane.
type cubeMesh struct {
	cubeVAO   uint32
	cubeVBO   uint32
	groundVAO uint32
	groundVBO uint32
	positions []mgl32.Vec3
}

func newCubeMesh() *cubeMesh {
	m := &cubeMesh{positions: cubePositions()}
	m.cubeVAO, m.cubeVBO = uploadVertices(cubeVertices)
	m.groundVAO, m.groundVBO = uploadVertices(groundVertices)
	return m
}

// uploadVertices creates a VAO/VBO pair for interleaved position+normal data.
func uploadVertices(vertices []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return vao, vbo
}

func (m *cubeMesh) draw(shader *openglhelper.Shader) {
	gl.BindVertexArray(m.groundVAO)
	shader.SetMat4("model", mgl32.Ident4())
	shader.SetVec3("baseColor", mgl32.Vec3{0.2, 0.35, 0.2})
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(groundVertices)/6))

	gl.BindVertexArray(m.cubeVAO)
	for i, pos := range m.positions {
		shader.SetMat4("model", mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))
		if i == 0 {
			// The orbit target stands out.
			shader.SetVec3("baseColor", mgl32.Vec3{0.9, 0.55, 0.2})
		} else {
			shader.SetVec3("baseColor", mgl32.Vec3{0.45, 0.5, 0.75})
		}
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(cubeVertices)/6))
	}
	gl.BindVertexArray(0)
}

func (m *cubeMesh) delete() {
	gl.DeleteVertexArrays(1, &m.cubeVAO)
	gl.DeleteBuffers(1, &m.cubeVBO)
	gl.DeleteVertexArrays(1, &m.groundVAO)
	gl.DeleteBuffers(1, &m.groundVBO)
}
