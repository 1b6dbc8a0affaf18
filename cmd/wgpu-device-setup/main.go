// wgpu-device-setup opens a WebGPU device on the window surface and clears it
// every frame. The adapter and surface details are logged at startup.
package main

import (
	"gfx-samples/core"
	"gfx-samples/internal/webgpu"
	"gfx-samples/renderer"
)

type deviceSetup struct {
	clear core.Color
}

func (s *deviceSetup) Init(ctx *webgpu.Context, cfg core.Config) error {
	s.clear = cfg.ClearOr(core.RGB(0.1, 0.1, 0.2))
	w, h := ctx.Size()
	core.Logger().Info("device ready", "format", ctx.Format, "width", w, "height", h)
	return nil
}

func (s *deviceSetup) Resize(*webgpu.Context, int, int) error { return nil }

func (s *deviceSetup) Frame(_ *webgpu.Context, frame *webgpu.Frame, _ *core.Clock) error {
	return webgpu.EndPass(frame.SurfacePass(s.clear, nil))
}

func (s *deviceSetup) Release() {}

func main() {
	renderer.MainWebGPU("wgpu-device-setup", &deviceSetup{})
}
