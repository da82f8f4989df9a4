package renderer

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"hardsphere/internal/gpu"
	"hardsphere/internal/physics"
	"hardsphere/internal/simulation"
)

// RunLive opens a raylib window and drives sim forward one collision event
// per frame (unless paused), drawing every sphere with a speed-heatmap
// color and a heads-up display of the running physical observables. It
// blocks until the window is closed.
//
// Controls: WASD/QE fly the camera, the mouse (drag with the right button
// held) looks around, P pauses the event loop, G toggles the batch
// pair-time kernel's backend between GPU and Auto mode (GPU mode falls back
// to CPU automatically when no compute context is available).
func RunLive(sim *simulation.Simulation) error {
	cfg := sim.GetConfig()

	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "Hard-Sphere Gas Simulation")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	halfBox := boxRadius(sim)
	camera := rl.Camera3D{
		Position:   rl.NewVector3(0, float32(halfBox)*0.6, float32(halfBox)*2.5),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	yaw := float64(cfg.InitialYaw) * 180 / math.Pi
	pitch := float64(cfg.InitialPitch) * 180 / math.Pi

	particleRenderer := NewParticleRenderer()
	particleRenderer.EnableCulling(true)
	particleRenderer.SetVisibleRange(halfBox * 8)

	paused := cfg.StartPaused
	useGPU := cfg.UseGPU
	backend, _ := sim.System.Series.Backend.(*gpu.KernelBackend)

	for !rl.WindowShouldClose() {
		yaw, pitch = stepCamera(&camera, yaw, pitch, float64(cfg.MoveSpeed), float64(cfg.MouseSensitivity))
		particleRenderer.SetViewpoint(physics.Vec3FromRaylib(camera.Position))

		if rl.IsKeyPressed(rl.KeyP) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyG) {
			useGPU = !useGPU
		}
		if backend != nil {
			if useGPU {
				backend.SetMode(gpu.ModeGPU)
			} else {
				backend.SetMode(gpu.ModeAuto)
			}
		}

		if !paused {
			sim.Step()
		}
		particleRenderer.SetParticles(sim.GetParticles())

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.BeginMode3D(camera)
		rl.DrawGrid(10, float32(halfBox)/5)
		maxSpeed := maxParticleSpeed(sim)
		for _, p := range particleRenderer.GetVisibleParticles() {
			center := vec3ToRaylib(p.Position)
			color := particleRenderer.GetParticleColor(p, maxSpeed)
			rl.DrawSphere(center, float32(p.Radius)*particleRenderer.GetParticleSize(), rl.NewColor(
				uint8(color.R*255), uint8(color.G*255), uint8(color.B*255), uint8(color.A*255)))
		}
		rl.EndMode3D()

		drawOverlay(sim, particleRenderer, backend, paused, int(rl.GetFPS()))

		rl.EndDrawing()
	}

	return nil
}

// stepCamera applies WASD/QE flight and right-button-drag mouse look to
// camera, returning the updated yaw/pitch so the caller can thread them
// across frames.
func stepCamera(camera *rl.Camera3D, yaw, pitch, moveSpeed, sensitivity float64) (float64, float64) {
	dt := float64(rl.GetFrameTime())

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		yaw += float64(delta.X) * sensitivity
		pitch -= float64(delta.Y) * sensitivity
		if pitch > 89 {
			pitch = 89
		}
		if pitch < -89 {
			pitch = -89
		}
	}

	yawRad, pitchRad := yaw*math.Pi/180, pitch*math.Pi/180
	forward := physics.NewVec3(
		math.Cos(pitchRad)*math.Cos(yawRad),
		math.Sin(pitchRad),
		math.Cos(pitchRad)*math.Sin(yawRad),
	).Normalize()
	worldUp := physics.NewVec3(0, 1, 0)
	right := forward.Cross(worldUp).Normalize()

	pos := physics.Vec3FromRaylib(camera.Position)
	step := moveSpeed * dt
	if rl.IsKeyDown(rl.KeyW) {
		pos = pos.Add(forward.Scale(step))
	}
	if rl.IsKeyDown(rl.KeyS) {
		pos = pos.Sub(forward.Scale(step))
	}
	if rl.IsKeyDown(rl.KeyD) {
		pos = pos.Add(right.Scale(step))
	}
	if rl.IsKeyDown(rl.KeyA) {
		pos = pos.Sub(right.Scale(step))
	}
	if rl.IsKeyDown(rl.KeyE) {
		pos = pos.Add(worldUp.Scale(step))
	}
	if rl.IsKeyDown(rl.KeyQ) {
		pos = pos.Sub(worldUp.Scale(step))
	}

	camera.Position = pos.ToRaylib()
	camera.Target = pos.Add(forward).ToRaylib()
	return yaw, pitch
}

// drawOverlay renders the running physical state over the 3D view: title,
// particle counts, the active compute backend, frame rate and a pause
// banner.
func drawOverlay(sim *simulation.Simulation, pr *ParticleRenderer, backend *gpu.KernelBackend, paused bool, fps int) {
	const textSize = 20
	textColor := rl.NewColor(20, 20, 20, 255)

	rl.DrawText("Hard-Sphere Gas Simulation", 10, 10, 24, textColor)

	mode := "CPU"
	if backend != nil && backend.ActiveProcessor() == gpu.ProcessorTypeGPU {
		mode = "GPU"
	}
	rl.DrawText(fmt.Sprintf("particles: %d/%d   backend: %s   fps: %d",
		pr.GetVisibleParticleCount(), pr.GetParticleCount(), mode, fps), 10, 40, textSize, textColor)

	summary := sim.Snapshot()
	rl.DrawText(fmt.Sprintf("t=%.4g  collisions=%d  T=%.4g  P=%.4g",
		summary.Time, summary.Collisions, summary.Temperature, summary.Pressure), 10, 64, textSize, textColor)

	rl.DrawText("WASD/QE move, right-drag to look, P pause, G toggle GPU backend", 10, 88, textSize, textColor)

	if paused {
		rl.DrawText("PAUSED", 10, 112, textSize, rl.NewColor(200, 30, 30, 255))
	}
}

func boxRadius(sim *simulation.Simulation) float64 {
	cfg := sim.GetConfig()
	max := 0.0
	for _, l := range cfg.BoxLengths {
		if l > max {
			max = l
		}
	}
	if max == 0 {
		return 1
	}
	return max
}

func maxParticleSpeed(sim *simulation.Simulation) float64 {
	max := 0.0
	for _, p := range sim.GetParticles() {
		if s := p.Velocity.Length(); s > max {
			max = s
		}
	}
	return max
}

func vec3ToRaylib(v []float64) rl.Vector3 {
	var x, y, z float32
	if len(v) > 0 {
		x = float32(v[0])
	}
	if len(v) > 1 {
		y = float32(v[1])
	}
	if len(v) > 2 {
		z = float32(v[2])
	}
	return rl.NewVector3(x, y, z)
}
