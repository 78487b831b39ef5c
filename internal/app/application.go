package app

import (
	"log/slog"

	"simdshare.ubdc.ac.uk/internal/appconf"
	"simdshare.ubdc.ac.uk/internal/simd"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config      appconf.Config
	SimdConfig  simd.Config
	Logger      *slog.Logger
	SimdManager *simd.Manager
}
