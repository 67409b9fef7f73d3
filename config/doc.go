// Package config loads and validates configuration.
//
// It uses Viper to read a YAML file and environment variables, and
// godotenv to pre-load a .env file. Environment variables override file
// values: with the default prefix DATAPROVIDER, the key provider.log_calls
// is read from DATAPROVIDER_PROVIDER_LOG_CALLS.
//
// # Usage
//
//	var cfg bootstrap.Config
//	err := config.LoadConfig("dataprovider", &cfg)
//
// Struct tags of the form `validate:"required,oneof=a b"` are checked by
// ValidateStruct using go-playground/validator.
package config
