package logging

import "go.uber.org/zap"

// New returns a JSON production logger tagged with the service name.
// It falls back to a no-op logger if the config cannot be built.
func New(service string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{"service": service}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
