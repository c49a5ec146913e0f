// Package effects delegates side effects to handlers scoped by a context.
//
// Code that needs to log or read configuration performs an effect on its
// context instead of touching a global. The handler registered higher up the
// call chain decides what happens, so the same code runs unchanged under a
// production logger, a test recorder, or no handler at all.
//
// Handlers are registered with WithXxxEffectHandler and return a function that
// closes the scope. Closing waits for queued effects to be handled.
//
// Example:
//
//	ctx, endLog := log.WithZapEffectHandler(ctx, 16, logger)
//	defer endLog()
//
//	log.LogEff(ctx, log.LogInfo, "solving", map[string]any{"length": 8})
package effects
