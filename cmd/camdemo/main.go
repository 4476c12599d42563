// camdemo is an interactive tour of the camera library: a field of cubes
// rendered with OpenGL, driven by WASD + mouse through the deferred
// move/rotate/resolve cycle. Number keys switch the camera mode at runtime.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/crydev/quatcam/internal/openglhelper"
	"github.com/crydev/quatcam/pkg/camera"
	"github.com/crydev/quatcam/pkg/camera/mglmath"
)

func init() {
	// OpenGL functions must be called from the same thread.
	runtime.LockOSThread()
}

func main() {
	settingsPath := flag.String("settings", "", "Path to a YAML settings file")
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	flag.Parse()

	settings := DefaultSettings()
	if *settingsPath != "" {
		var err error
		settings, err = LoadSettings(*settingsPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	window, err := openglhelper.NewWindow(*width, *height, "quatcam demo")
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Close()

	if err := run(window, settings); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

func run(window *openglhelper.Window, settings Settings) error {
	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("failed to build shader: %w", err)
	}
	defer shader.Delete()

	cubes := newCubeMesh()
	defer cubes.delete()

	cam := camera.New()
	// All camera arithmetic through mgl32, same library as the renderer.
	cam.Math = mglmath.Backend{}

	mode, distance, err := settings.CameraMode()
	if err != nil {
		return err
	}
	cam.Mode = mode
	cam.TargetDistance = distance
	limit := mgl32.DegToRad(settings.PitchLimitDeg)
	cam.MinPitch = -limit
	cam.MaxPitch = limit
	cam.TargetPosition = camera.Vec3{Y: 2}
	cam.LookAt(camera.Vec3{Z: 1}, camera.Vec3{Y: 1})

	window.SetMouseCaptured(true)
	fmt.Println("Controls: WASD move, space/ctrl up/down, mouse look, scroll zoom")
	fmt.Println("          1 free  2 first-person  3 third-person  4 orbital  tab release mouse  esc quit")

	lastFrame := glfw.GetTime()
	tabWasDown := false

	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - lastFrame)
		lastFrame = now

		window.PollEvents()
		handleInput(window, cam, settings, dt, &tabWasDown)

		// The one resolve per frame: pending commands become state here.
		view := mgl32.Mat4(cam.ViewMatrix())

		w, h := window.Size()
		proj := mgl32.Perspective(mgl32.DegToRad(60), float32(w)/float32(h), 0.1, 500)
		// The camera looks down +Z; flip into OpenGL's -Z clip
		// convention.
		viewProj := proj.Mul4(mgl32.Scale3D(1, 1, -1)).Mul4(view)

		window.Clear(mgl32.Vec4{0.08, 0.09, 0.12, 1})
		shader.Use()
		shader.SetMat4("viewProj", viewProj)
		shader.SetVec3("lightDir", mgl32.Vec3{0.4, 0.8, 0.45}.Normalize())
		cubes.draw(shader)

		window.SwapBuffers()
	}
	return nil
}

// handleInput turns raw key/mouse state into camera commands. Commands are
// only queued; nothing moves until the frame resolves.
func handleInput(window *openglhelper.Window, cam *camera.Camera, settings Settings, dt float32, tabWasDown *bool) {
	if window.KeyPressed(glfw.KeyEscape) {
		window.RequestClose()
	}

	tabDown := window.KeyPressed(glfw.KeyTab)
	if tabDown && !*tabWasDown {
		window.SetMouseCaptured(!window.IsMouseCaptured())
	}
	*tabWasDown = tabDown

	// Mode presets on the number keys. Flags may change at any time; the
	// transition is seamless.
	switch {
	case window.KeyPressed(glfw.Key1):
		cam.Mode = camera.ModeFree
		cam.TargetDistance = 0
	case window.KeyPressed(glfw.Key2):
		cam.Mode = camera.ModeFirstPerson
		cam.TargetDistance = 0
	case window.KeyPressed(glfw.Key3):
		cam.Mode = camera.ModeThirdPerson
		cam.TargetDistance = settings.TargetDistance
	case window.KeyPressed(glfw.Key4):
		cam.Mode = camera.ModeOrbital
		cam.TargetDistance = settings.TargetDistance
	}

	step := settings.MoveSpeed * dt
	var move camera.Vec3
	if window.KeyPressed(glfw.KeyW) {
		move.X += step
	}
	if window.KeyPressed(glfw.KeyS) {
		move.X -= step
	}
	if window.KeyPressed(glfw.KeyD) {
		move.Z += step
	}
	if window.KeyPressed(glfw.KeyA) {
		move.Z -= step
	}
	if window.KeyPressed(glfw.KeySpace) {
		move.Y += step
	}
	if window.KeyPressed(glfw.KeyLeftControl) {
		move.Y -= step
	}
	if move != (camera.Vec3{}) {
		cam.Move(move)
	}

	if window.IsMouseCaptured() {
		dx, dy := window.MouseDelta()
		if dx != 0 || dy != 0 {
			cam.Rotate(camera.Vec3{
				X: float32(dy) * settings.MouseSensitivity,
				Y: float32(dx) * settings.MouseSensitivity,
			})
		}
		// Roll on Q/E, ignored while the mode disables roll.
		if window.KeyPressed(glfw.KeyQ) {
			cam.Rotate(camera.Vec3{Z: -dt})
		}
		if window.KeyPressed(glfw.KeyE) {
			cam.Rotate(camera.Vec3{Z: dt})
		}
	}

	if scroll := window.ScrollDelta(); scroll != 0 {
		cam.TargetDistance -= float32(scroll)
		if cam.TargetDistance < 0 {
			cam.TargetDistance = 0
		}
	}
}

// cubePositions returns the world positions of the demo cubes: a ring around
// the origin plus a marker cube at the orbit target.
func cubePositions() []mgl32.Vec3 {
	positions := []mgl32.Vec3{{0, 0.5, 0}}
	const ringRadius = 12.0
	for i := 0; i < 16; i++ {
		angle := float64(i) / 16 * 2 * math.Pi
		positions = append(positions, mgl32.Vec3{
			float32(math.Cos(angle) * ringRadius),
			0.5,
			float32(math.Sin(angle) * ringRadius),
		})
	}
	// A sparse outer grid to give free flight some landmarks.
	for x := -3; x <= 3; x++ {
		for z := -3; z <= 3; z++ {
			if x == 0 && z == 0 {
				continue
			}
			positions = append(positions, mgl32.Vec3{float32(x) * 25, 0.5, float32(z) * 25})
		}
	}
	return positions
}
