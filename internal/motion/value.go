package motion

import (
	"fmt"
	"math"
)

// Value is the arithmetic an animated quantity must support so that
// Motion can interpolate it (tween) or integrate it (spring).
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float64) T
	// Norm is the largest absolute component, used for rest detection.
	Norm() float64
}

// Lerp performs linear interpolation between a and b.
func Lerp[T Value[T]](a, b T, t float64) T {
	return a.Add(b.Sub(a).Mul(t))
}

// Scalar is a single animated number such as a layer opacity.
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar  { return s + o }
func (s Scalar) Sub(o Scalar) Scalar  { return s - o }
func (s Scalar) Mul(f float64) Scalar { return Scalar(float64(s) * f) }
func (s Scalar) Norm() float64        { return math.Abs(float64(s)) }
func (s Scalar) Float() float64       { return float64(s) }
func (s Scalar) String() string       { return fmt.Sprintf("%.4f", float64(s)) }

// Transform is a renderable offset/scale state of a layer.
// X and Y are percentages of the viewport, Rotation is in degrees.
type Transform struct {
	X        float64 `yaml:"x" json:"x" mapstructure:"x"`
	Y        float64 `yaml:"y" json:"y" mapstructure:"y"`
	Scale    float64 `yaml:"scale" json:"scale" mapstructure:"scale"`
	Rotation float64 `yaml:"rotation" json:"rotation" mapstructure:"rotation"`
}

// NewTransform creates a Transform from its components.
func NewTransform(x, y, scale, rotation float64) Transform {
	return Transform{X: x, Y: y, Scale: scale, Rotation: rotation}
}

// Identity returns the transform of a layer at rest: no offset, scale 1.
func Identity() Transform {
	return Transform{Scale: 1}
}

func (t Transform) Add(o Transform) Transform {
	return Transform{X: t.X + o.X, Y: t.Y + o.Y, Scale: t.Scale + o.Scale, Rotation: t.Rotation + o.Rotation}
}

func (t Transform) Sub(o Transform) Transform {
	return Transform{X: t.X - o.X, Y: t.Y - o.Y, Scale: t.Scale - o.Scale, Rotation: t.Rotation - o.Rotation}
}

func (t Transform) Mul(f float64) Transform {
	return Transform{X: t.X * f, Y: t.Y * f, Scale: t.Scale * f, Rotation: t.Rotation * f}
}

func (t Transform) Norm() float64 {
	return math.Max(math.Max(math.Abs(t.X), math.Abs(t.Y)), math.Max(math.Abs(t.Scale), math.Abs(t.Rotation)))
}

// Mirror flips the translation and rotation of t, keeping its scale.
// It is the entry point of an arriving layer whose departing
// counterpart leaves towards t.
func (t Transform) Mirror() Transform {
	return Transform{X: -t.X, Y: -t.Y, Scale: t.Scale, Rotation: -t.Rotation}
}

func (t Transform) String() string {
	return fmt.Sprintf("{x:%.2f y:%.2f scale:%.3f rot:%.2f}", t.X, t.Y, t.Scale, t.Rotation)
}
