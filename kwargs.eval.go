package kwargs

import (
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/itsatony/go-kwargs/internal"
	"go.uber.org/zap"
)

// Eval binds a capture list by evaluating it against env. A bare entry such
// as `x` takes env["x"]; an entry with an initializer such as `y=x * 2`
// takes the result of the expr-lang expression. Initializers see only env,
// never sibling entries. The '&' marker is accepted and has no effect.
func (e *Engine) Eval(capture string, env map[string]any) (*Args, error) {
	bindings, err := e.ParseCapture(capture)
	if err != nil {
		return nil, err
	}
	if env == nil {
		env = map[string]any{}
	}

	names := make([]string, len(bindings))
	values := make([]any, len(bindings))
	for i, b := range bindings {
		names[i] = b.Name

		if b.Expr == "" {
			v, ok := env[b.Name]
			if !ok {
				return nil, NewNameNotFoundError(b.Name, e.suggestEnv(b.Name, env))
			}
			values[i] = v
			continue
		}

		v, err := e.evalExpr(b, env)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	e.logger.Debug(LogMsgEval,
		zap.Int(LogFieldNames, len(names)),
	)
	return newArgs(names, values, e.config.maxSuggestions), nil
}

func (e *Engine) evalExpr(b Binding, env map[string]any) (any, error) {
	program, err := expr.Compile(b.Expr, expr.Env(env))
	if err != nil {
		return nil, NewExpressionError(b.Name, b.Expr, err)
	}
	v, err := vm.Run(program, env)
	if err != nil {
		return nil, NewExpressionError(b.Name, b.Expr, err)
	}
	return v, nil
}

func (e *Engine) suggestEnv(name string, env map[string]any) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return internal.FindSimilarNames(name, keys, e.config.maxSuggestions)
}

// EvalCapture evaluates a capture list against env with the default engine
func EvalCapture(capture string, env map[string]any) (*Args, error) {
	return Default().Eval(capture, env)
}
