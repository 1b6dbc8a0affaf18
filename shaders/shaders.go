// Package shaders embeds the GLSL and WGSL sources used by the samples.
package shaders

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed glsl/*.vert glsl/*.frag wgsl/*.wgsl
var files embed.FS

// GLSL returns the named GLSL source (e.g. "lit.vert") terminated with a NUL
// byte, ready for gl.Strs.
func GLSL(name string) (string, error) {
	src, err := read("glsl", name)
	if err != nil {
		return "", err
	}
	return src + "\x00", nil
}

// WGSL returns the named WGSL module (e.g. "texture.wgsl").
func WGSL(name string) (string, error) {
	return read("wgsl", name)
}

func MustGLSL(name string) string {
	src, err := GLSL(name)
	if err != nil {
		panic(err)
	}
	return src
}

func MustWGSL(name string) string {
	src, err := WGSL(name)
	if err != nil {
		panic(err)
	}
	return src
}

// List returns the file names embedded under dir ("glsl" or "wgsl"), sorted.
func List(dir string) []string {
	entries, err := fs.ReadDir(files, dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func read(dir, name string) (string, error) {
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("shader %q: name must not contain a path", name)
	}
	data, err := files.ReadFile(path.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("shader %q: %w", name, err)
	}
	return string(data), nil
}
