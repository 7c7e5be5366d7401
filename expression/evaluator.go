package expression

import (
	"github.com/dop251/goja"
	"github.com/pkg/errors"
)

// Evaluator runs filter expressions against single records, the way the rendering runtime would.
// It's not safe for concurrent use; create one per goroutine.
type Evaluator struct {
	runtime  *goja.Runtime
	compiled map[string]goja.Callable
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		runtime:  goja.New(),
		compiled: make(map[string]goja.Callable),
	}
}

func (e *Evaluator) compile(expr string) (goja.Callable, error) {
	if fn, ok := e.compiled[expr]; ok {
		return fn, nil
	}
	value, err := e.runtime.RunString("(function(datum) { return (" + expr + "); })")
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't compile expression %s", expr)
	}
	fn, ok := goja.AssertFunction(value)
	if !ok {
		return nil, errors.Errorf("expression %s didn't compile to a function", expr)
	}
	e.compiled[expr] = fn
	return fn, nil
}

// Evaluate reports whether the datum satisfies the expression, using JavaScript truthiness.
func (e *Evaluator) Evaluate(expr string, datum map[string]interface{}) (bool, error) {
	fn, err := e.compile(expr)
	if err != nil {
		return false, err
	}

	result, err := fn(goja.Undefined(), e.runtime.ToValue(datum))
	if err != nil {
		return false, errors.Wrapf(err, "couldn't evaluate expression %s", expr)
	}

	return result.ToBoolean(), nil
}

// EvaluateAll reports whether the datum satisfies every expression.
func (e *Evaluator) EvaluateAll(exprs []string, datum map[string]interface{}) (bool, error) {
	for _, expr := range exprs {
		ok, err := e.Evaluate(expr, datum)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
