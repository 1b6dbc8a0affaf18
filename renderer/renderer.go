// Package renderer runs samples: it owns the window, the graphics context
// and the frame loop, and calls into a sample once per frame.
package renderer

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cogentcore/webgpu/wgpuglfw"

	"gfx-samples/core"
	"gfx-samples/internal/opengl"
	"gfx-samples/internal/webgpu"
)

// minimisedWait is how long the loop sleeps on events while the framebuffer
// has no area.
const minimisedWait = 0.1

// GLSample is an OpenGL sample. Init runs once with the context current;
// Frame draws into the back buffer, which the runner then swaps.
type GLSample interface {
	Init(r *opengl.Renderer, cfg core.Config) error
	Frame(r *opengl.Renderer, clock *core.Clock, vp core.Viewport)
}

// WGPUSample is a WebGPU sample. Frame records into the frame's encoder; the
// runner submits and presents it. Resize is called after the surface was
// reconfigured so size-dependent targets can follow.
type WGPUSample interface {
	Init(ctx *webgpu.Context, cfg core.Config) error
	Resize(ctx *webgpu.Context, width, height int) error
	Frame(ctx *webgpu.Context, frame *webgpu.Frame, clock *core.Clock) error
	Release()
}

// FrameTitle is the window title shown once the FPS counter has a value.
func FrameTitle(title string, fps float64) string {
	return fmt.Sprintf("%s | FPS: %.0f", title, fps)
}

// quitRequested reports whether the user asked to close the window.
func quitRequested(w *core.Window) bool {
	return w.IsKeyPressed(core.KeyEscape) || w.IsKeyPressed(core.KeyQ)
}

// RunGL opens an OpenGL window for s and drives it until the window closes.
func RunGL(cfg core.Config, s GLSample) error {
	log := core.Logger()

	cfg.Window.API = core.APIOpenGL
	window, err := core.NewWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	r, err := opengl.NewRenderer()
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer r.Destroy()

	r.SetViewport(window.Width, window.Height)
	window.OnResize(func(width, height int) {
		r.SetViewport(width, height)
		log.Debug("viewport resized", "width", width, "height", height)
	})

	if err := s.Init(r, cfg); err != nil {
		return fmt.Errorf("init %s: %w", cfg.Window.Title, err)
	}
	log.Info("sample started", "name", cfg.Window.Title, "api", "opengl")

	clock := core.NewClock(cfg.TimeStep)
	for !window.ShouldClose() {
		window.PollEvents()
		if quitRequested(window) {
			window.Close()
			continue
		}

		vp := r.Viewport()
		if vp.Empty() {
			window.WaitEvents(minimisedWait)
			continue
		}

		if clock.Tick() {
			window.SetTitle(FrameTitle(cfg.Window.Title, clock.FPS()))
		}
		s.Frame(r, clock, vp)
		window.SwapBuffers()
	}

	log.Info("sample finished", "name", cfg.Window.Title, "frames", clock.Frames)
	return nil
}

// RunWebGPU opens a window without a client API, creates a WebGPU surface on
// it and drives s until the window closes. A lost device ends the loop
// without an error.
func RunWebGPU(cfg core.Config, s WGPUSample) error {
	log := core.Logger()

	cfg.Window.API = core.APINone
	window, err := core.NewWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	opts := webgpu.DefaultOptions(cfg.Window.Title)
	opts.VSync = cfg.Window.VSync
	ctx, err := webgpu.NewContext(wgpuglfw.GetSurfaceDescriptor(window.Handle), window.Width, window.Height, opts)
	if err != nil {
		return fmt.Errorf("create webgpu context: %w", err)
	}
	defer ctx.Release()

	if err := s.Init(ctx, cfg); err != nil {
		return fmt.Errorf("init %s: %w", cfg.Window.Title, err)
	}
	defer s.Release()
	log.Info("sample started", "name", cfg.Window.Title, "api", "webgpu")

	resized := false
	window.OnResize(func(int, int) { resized = true })

	clock := core.NewClock(cfg.TimeStep)
	for !window.ShouldClose() {
		window.PollEvents()
		if quitRequested(window) {
			window.Close()
			continue
		}
		if ctx.Lost() {
			// Already logged by the device-lost callback.
			break
		}

		if resized {
			resized = false
			width, height := window.FramebufferSize()
			if ctx.Resize(width, height) {
				if err := s.Resize(ctx, width, height); err != nil {
					return fmt.Errorf("resize %s: %w", cfg.Window.Title, err)
				}
			}
		}
		if window.Width == 0 || window.Height == 0 {
			window.WaitEvents(minimisedWait)
			continue
		}

		if clock.Tick() {
			window.SetTitle(FrameTitle(cfg.Window.Title, clock.FPS()))
		}

		frame, err := ctx.BeginFrame()
		if err != nil {
			// Outdated surfaces are common right after a resize.
			log.Warn("skipping frame", "err", err)
			ctx.Reconfigure()
			continue
		}
		if err := s.Frame(ctx, frame, clock); err != nil {
			_ = frame.Submit()
			return fmt.Errorf("frame %d: %w", clock.Frames, err)
		}
		if err := frame.Submit(); err != nil {
			return err
		}
	}

	log.Info("sample finished", "name", cfg.Window.Title, "frames", clock.Frames)
	return nil
}

// Main is the body of every sample binary: it reads the command line and
// config file, installs the logger, runs the sample and exits non-zero on
// failure.
func Main(defaults core.Config, run func(cfg core.Config) error) {
	cfg, err := core.ConfigFromFlags(os.Args[1:], defaults)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	core.SetLogger(core.NewTextLogger(os.Stderr, cfg.LogLevel))

	if err := run(cfg); err != nil {
		core.Logger().Error("sample failed", "name", cfg.Window.Title, "err", err)
		os.Exit(1)
	}
}

// MainGL runs an OpenGL sample titled title.
func MainGL(title string, s GLSample) {
	Main(core.DefaultConfig(title, core.APIOpenGL), func(cfg core.Config) error {
		return RunGL(cfg, s)
	})
}

// MainWebGPU runs a WebGPU sample titled title.
func MainWebGPU(title string, s WGPUSample) {
	Main(core.DefaultConfig(title, core.APINone), func(cfg core.Config) error {
		return RunWebGPU(cfg, s)
	})
}
