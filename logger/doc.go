// Package logger provides structured logging over zerolog.
//
// Loggers are scoped by component; the provider registry and its
// middleware log through logger.Get("provider").
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("provider")
//	log.Debug("data provider registered", logger.Fields("key", key.Name()))
package logger
