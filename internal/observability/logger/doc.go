// Package logger expone un logger Zap singleton con scoping por contexto.
//
// # Decisiones
//
//   - Singleton: una sola instancia global, inicializada con Init() desde el comando serve.
//   - Scoping: cada request recibe un logger con request_id, method y path
//     (ver middlewares.WithLogging) que los controllers recuperan con From(ctx).
//   - Entornos: APP_ENV=dev usa consola con colores, APP_ENV=prod usa JSON.
//   - Fire-and-forget: Safe() ejecuta logs de diagnóstico sin que un fallo
//     (panic de un encoder, payload raro) corte el request.
//
// # Uso
//
//	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
//	defer logger.Sync()
//
//	log := logger.From(ctx)
//	log.Info("review email sent", logger.MessageID(id))
package logger
