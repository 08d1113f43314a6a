package logger

import "go.uber.org/zap"

// Safe ejecuta fn con el logger dado y descarta cualquier panic que ocurra adentro.
// Pensado para logs de diagnóstico que nunca deben cambiar el resultado de un request.
func Safe(l *zap.Logger, fn func(l *zap.Logger)) {
	if l == nil || fn == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			// best effort: si ni esto funciona, se pierde
			func() {
				defer func() { _ = recover() }()
				l.Warn("diagnostic logging failed", zap.Any("panic", rec))
			}()
		}
	}()
	fn(l)
}
