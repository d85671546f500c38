//go:build !linux

package headless

import (
	"fmt"

	"github.com/richinsley/gltutorials/graphics"
	"go.uber.org/zap"
)

func NewHeadless(width, height int, logger *zap.Logger) (graphics.Context, error) {
	return nil, fmt.Errorf("egl headless rendering is not supported on this platform")
}
