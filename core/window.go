package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// ClientAPI selects what kind of context the window is created with.
type ClientAPI int

const (
	// APIOpenGL creates an OpenGL 4.1 core context and makes it current.
	APIOpenGL ClientAPI = iota
	// APINone creates a bare window for a WebGPU surface.
	APINone
)

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	onResize func(width, height int)
}

type WindowConfig struct {
	Width     int       `toml:"width"`
	Height    int       `toml:"height"`
	Title     string    `toml:"title"`
	Resizable bool      `toml:"resizable"`
	VSync     bool      `toml:"vsync"`
	API       ClientAPI `toml:"-"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     800,
		Height:    600,
		Title:     "gfx-samples",
		Resizable: true,
		VSync:     true,
		API:       APIOpenGL,
	}
}

func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	switch config.API {
	case APIOpenGL:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	case APINone:
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if config.API == APIOpenGL {
		handle.MakeContextCurrent()
		glfw.SwapInterval(boolToInt(config.VSync))
	}

	window := &Window{
		Handle: handle,
		Title:  config.Title,
	}
	window.Width, window.Height = handle.GetFramebufferSize()

	// Framebuffer size rather than window size: they differ on HiDPI displays
	// and the GPU surface is sized in pixels.
	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		if window.onResize != nil {
			window.onResize(width, height)
		}
	})

	return window, nil
}

// OnResize registers a hook invoked with the new framebuffer size.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// WaitEvents blocks until an event arrives or timeout seconds pass. Used
// instead of PollEvents while minimised.
func (w *Window) WaitEvents(timeout float64) {
	glfw.WaitEventsTimeout(timeout)
}

// SwapBuffers presents the GL back buffer. WebGPU windows present through
// their surface instead.
func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// Aspect is the framebuffer width over height, 1 while minimised.
func (w *Window) Aspect() float32 {
	if w.Height == 0 {
		return 1
	}
	return float32(w.Width) / float32(w.Height)
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
}

func (w *Window) Close() {
	w.Handle.SetShouldClose(true)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	KeyEscape = int(glfw.KeyEscape)
	KeyQ      = int(glfw.KeyQ)
)
