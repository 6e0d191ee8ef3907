package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// White is the color new layer entries start with.
var White = mgl32.Vec4{1, 1, 1, 1}

// ColorLayer is a named per-loop RGBA attribute.
type ColorLayer struct {
	Name string
	data []mgl32.Vec4
}

func newColorLayer(name string, loops int) *ColorLayer {
	layer := &ColorLayer{Name: name}
	layer.grow(loops)
	return layer
}

func (l *ColorLayer) grow(loops int) {
	for len(l.data) < loops {
		l.data = append(l.data, White)
	}
}

func (l *ColorLayer) Len() int {
	return len(l.data)
}

func (l *ColorLayer) Color(loop int) (mgl32.Vec4, error) {
	if loop < 0 || loop >= len(l.data) {
		return mgl32.Vec4{}, fmt.Errorf("layer %q loop %d: %w", l.Name, loop, ErrLoopOutOfRange)
	}
	return l.data[loop], nil
}

func (l *ColorLayer) SetColor(loop int, c mgl32.Vec4) error {
	if loop < 0 || loop >= len(l.data) {
		return fmt.Errorf("layer %q loop %d: %w", l.Name, loop, ErrLoopOutOfRange)
	}
	l.data[loop] = c
	return nil
}

// Colors returns a copy of all per-loop colors in loop order.
func (l *ColorLayer) Colors() []mgl32.Vec4 {
	return append([]mgl32.Vec4(nil), l.data...)
}
