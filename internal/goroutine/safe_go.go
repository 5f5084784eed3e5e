package goroutine

import (
	"runtime/debug"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
)

// SafeGo запускает горутину с обработкой panic.
// Упавшая фоновая горутина не должна ронять весь процесс.
func SafeGo(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Errorf("panic в горутине: %v\nstack:\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}
