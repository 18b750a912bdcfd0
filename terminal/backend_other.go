//go:build !unix

package terminal

import (
	"errors"
	"time"
)

var errUnsupported = errors.New("ansi backend requires a unix terminal")

// unsupportedBackend refuses every operation; use the tcell backend instead
type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error { return errUnsupported }

func (unsupportedBackend) Fini() {}

func (unsupportedBackend) Size() (int, int, error) { return 0, 0, errUnsupported }

func (unsupportedBackend) Write(p []byte) (int, error) { return 0, errUnsupported }

func (unsupportedBackend) Read(time.Duration) ([]byte, error) { return nil, errUnsupported }
