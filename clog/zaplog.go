package clog

import "go.uber.org/zap"

// zapLogger adapts a *zap.SugaredLogger to the clog.Logger interface, so the
// core can emit structured, leveled logs (bulk-load diagnostics, proof-search
// rejections) through the same production logging library the rest of the
// ecosystem pack uses, instead of the bare stdlib logger clog falls back to.
type zapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger builds a clog.Logger backed by zap's production configuration.
// It does not install it; pass the result to SetLogger to make it active.
func NewZapLogger() (Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return zapLogger{s: z.Sugar()}, nil
}

func (l zapLogger) Infof(format string, args ...interface{})    { l.s.Infof(format, args...) }
func (l zapLogger) Warningf(format string, args ...interface{}) { l.s.Warnf(format, args...) }
func (l zapLogger) Errorf(format string, args ...interface{})   { l.s.Errorf(format, args...) }
func (l zapLogger) Fatalf(format string, args ...interface{})   { l.s.Fatalf(format, args...) }
