// Package obs contains observability utilities such as logging and
// metrics.
package obs

import "go.uber.org/zap"

// Logger is the global structured logger used by the service.
//
// Logger is exported to allow other packages to use it for logging.
var Logger *zap.SugaredLogger

// InitLogger initializes the global Logger with zap's production JSON
// configuration.
//
// InitLogger is exported to allow other packages to initialize the Logger.
func InitLogger() {
	Logger = zap.Must(zap.NewProduction()).Sugar()
}
