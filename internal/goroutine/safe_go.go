package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/ignatzorin/hr-directory/internal/logger"
)

// SafeGo запускает горутину с обработкой panic.
// Паника логируется со стектрейсом и не роняет процесс.
func SafeGo(fn func()) {
	go func() {
		defer recoverPanic()
		fn()
	}()
}

// SafeGoWithContext запускает горутину с контекстом и обработкой panic.
func SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	go func() {
		defer recoverPanic()
		fn(ctx)
	}()
}

func recoverPanic() {
	if r := recover(); r != nil {
		if logger.Log != nil {
			logger.Log.Errorf("goroutine: panic: %v\n%s", r, debug.Stack())
		}
	}
}
