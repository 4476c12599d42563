// Package openglhelper wraps the GLFW/OpenGL plumbing the demo needs: window
// and context creation, shader compilation and per-frame input state.
package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window owns the GLFW window and the OpenGL context. It tracks mouse motion
// between polls so callers can consume per-frame deltas.
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int

	mouseCaptured bool
	firstMouse    bool
	lastX, lastY  float64
	mouseDX       float64
	mouseDY       float64
	scrollDY      float64
}

// NewWindow creates a GLFW window with an OpenGL 4.6 core context.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	w := &Window{
		glfwWindow: glfwWindow,
		width:      width,
		height:     height,
		firstMouse: true,
	}

	glfwWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	glfwWindow.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if w.firstMouse {
			w.lastX, w.lastY = xpos, ypos
			w.firstMouse = false
			return
		}
		w.mouseDX += xpos - w.lastX
		w.mouseDY += ypos - w.lastY
		w.lastX, w.lastY = xpos, ypos
	})
	glfwWindow.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.scrollDY += yoff
	})

	return w, nil
}

// Clear clears the color and depth buffers.
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers.
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose reports whether the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// RequestClose asks the window to close after the current frame.
func (w *Window) RequestClose() {
	w.glfwWindow.SetShouldClose(true)
}

// Close releases all window resources.
func (w *Window) Close() {
	glfw.Terminate()
}

// Size returns the current framebuffer dimensions.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// KeyPressed reports whether key is currently held down.
func (w *Window) KeyPressed(key glfw.Key) bool {
	return w.glfwWindow.GetKey(key) == glfw.Press
}

// MouseDelta returns the cursor movement since the last call and resets it.
func (w *Window) MouseDelta() (dx, dy float64) {
	dx, dy = w.mouseDX, w.mouseDY
	w.mouseDX, w.mouseDY = 0, 0
	return dx, dy
}

// ScrollDelta returns the scroll movement since the last call and resets it.
func (w *Window) ScrollDelta() float64 {
	dy := w.scrollDY
	w.scrollDY = 0
	return dy
}

// SetMouseCaptured captures or releases the cursor.
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured
	w.firstMouse = true

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// IsMouseCaptured reports whether the cursor is currently captured.
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}
