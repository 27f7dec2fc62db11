package fruitninja

import "github.com/vovakirdan/fruit-arcade/internal/core"

// Kind names a fruit variety. Renderers map kinds to sprites.
type Kind string

// Fruit is a transient entity travelling from the bottom edge toward the top.
// Its hit-box is a square of the configured size anchored at (X, Y).
type Fruit struct {
	Kind Kind
	X    float64
	Y    float64
}

// NewFruit creates a fruit at the given anchor.
func NewFruit(kind Kind, x, y float64) Fruit {
	return Fruit{Kind: kind, X: x, Y: y}
}

// Box returns the fruit's hit-box.
func (f Fruit) Box(size float64) core.Box {
	return core.NewBox(f.X, f.Y, size, size)
}

// Advance moves the fruit by one frame of the given signed speed.
func (f *Fruit) Advance(speed float64) {
	f.Y += speed
}

// Exited reports whether the fruit has fully left through the top edge.
func (f Fruit) Exited(size float64) bool {
	return f.Y < -size
}
