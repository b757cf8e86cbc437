// Package activation provides the scalar functions applied to each channel's
// convolution sum, plus a compiler that turns user-supplied expression source
// into such a function.
package activation

import "math"

// Func maps a convolution sum to a new channel value. Implementations must be
// pure and safe to call from concurrent step workers.
type Func func(float64) float64

// Identity returns its input unchanged.
func Identity(x float64) float64 { return x }

// Abs returns the absolute value of its input.
func Abs(x float64) float64 { return math.Abs(x) }

// InverseGaussian implements 1 - 2^(-0.6x^2), an inverted bell curve that is
// 0 at the origin and approaches 1 for large |x|.
func InverseGaussian(x float64) float64 { return 1 - math.Exp2(-0.6*x*x) }

// AbsScaled returns a Func computing |k*x|.
func AbsScaled(k float64) Func {
	return func(x float64) float64 { return math.Abs(k * x) }
}

// Defaults returns the per-channel activations used when no override is
// supplied.
func Defaults() [3]Func {
	return [3]Func{InverseGaussian, Abs, AbsScaled(1.2)}
}

// builtins names the closed set of predefined activations available without
// compiling source.
var builtins = map[string]Func{
	"identity":         Identity,
	"abs":              Abs,
	"inverse-gaussian": InverseGaussian,
	"abs-1.2":          AbsScaled(1.2),
}

// Builtin looks up a predefined activation by name.
func Builtin(name string) (Func, bool) {
	fn, ok := builtins[name]
	return fn, ok
}
