package core

import "errors"

var (
	ErrNoAdapter     = errors.New("no suitable GPU adapter")
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrProgramLink   = errors.New("program link failed")
	ErrInvalidConfig = errors.New("invalid config")
)
