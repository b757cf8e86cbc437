package activation

import (
	"fmt"
	"math"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// newEnv builds the evaluation environment for a compiled activation. The
// variable x is the convolution sum; the rest is a small math vocabulary.
// expr's own builtins (abs, min, max, floor, ceil, round, ...) remain
// available on top of these.
func newEnv(x float64) map[string]any {
	return map[string]any{
		"x":    x,
		"pi":   math.Pi,
		"e":    math.E,
		"exp":  math.Exp,
		"exp2": math.Exp2,
		"log":  math.Log,
		"pow":  math.Pow,
		"sqrt": math.Sqrt,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"tanh": math.Tanh,
		"sign": func(v float64) float64 {
			switch {
			case v > 0:
				return 1
			case v < 0:
				return -1
			}
			return 0
		},
		"clamp": func(v, lo, hi float64) float64 {
			return math.Min(math.Max(v, lo), hi)
		},
	}
}

// Compile turns expression source such as "1 - exp2(-0.6 * x * x)" into an
// activation Func. The expression sees the scalar input as x and must produce
// a number. Compilation includes a probe evaluation at x = 0 so obviously
// broken expressions are rejected here rather than mid-step.
func Compile(src string) (Func, error) {
	program, err := expr.Compile(src, expr.Env(newEnv(0)))
	if err != nil {
		return nil, fmt.Errorf("compile activation %q: %w", src, err)
	}

	probe, err := vm.Run(program, newEnv(0))
	if err != nil {
		return nil, fmt.Errorf("evaluate activation %q: %w", src, err)
	}
	if _, ok := toFloat(probe); !ok {
		return nil, fmt.Errorf("activation %q returned %T, want a number", src, probe)
	}

	// Environments are pooled because one compiled activation is invoked once
	// per cell per step, from multiple workers at once.
	pool := sync.Pool{New: func() any { return newEnv(0) }}
	fn := func(x float64) float64 {
		env := pool.Get().(map[string]any)
		env["x"] = x
		out, err := vm.Run(program, env)
		pool.Put(env)
		if err != nil {
			// The engine does not guard activations; surface the failure as
			// NaN so the output clamp resolves it deterministically.
			return math.NaN()
		}
		if v, ok := toFloat(out); ok {
			return v
		}
		return math.NaN()
	}
	return fn, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
