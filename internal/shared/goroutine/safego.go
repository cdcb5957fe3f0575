package goroutine

import (
	"runtime/debug"

	"billu/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and converts panics into error logs so a
// background worker can never take the process down.
func SafeGo(name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in background goroutine",
					"goroutine", name,
					"panic", r,
					"stack", string(debug.Stack()))
			}
		}()
		fn()
	}()
}
