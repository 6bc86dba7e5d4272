// file: bintree/recover/recover.go
package recover

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/rskv-p/bintree/pkg/x_log"
)

// ErrPanic wraps every panic turned into an error here.
var ErrPanic = errors.New("panic recovered")

// ----------------------------------------------------
// Panic recovery functions
// ----------------------------------------------------

// report logs a recovered panic with its stack on the logger carried by ctx.
func report(ctx context.Context, component, function string, recovered any) {
	x_log.From(ctx).Error().
		Str("component", component).
		Str("function", function).
		Str("stack", string(debug.Stack())).
		Msgf("panic: %v", recovered)
}

// ----------------------------------------------------
// Universal wrapper
// ----------------------------------------------------

// RecoverableFunc is a context-aware function that may panic.
type RecoverableFunc func(ctx context.Context) error

// WrapRecover turns a panic inside f into an error wrapping ErrPanic.
func WrapRecover(component, function string, f RecoverableFunc) RecoverableFunc {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				report(ctx, component, function, r)
				err = fmt.Errorf("%w in %s.%s: %v", ErrPanic, component, function, r)
			}
		}()
		return f(ctx)
	}
}
