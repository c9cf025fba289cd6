// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - Load parses the environment into any struct using `env` field tags,
//     optionally under a variable prefix (WithPrefix).
//   - The default .env file in the working directory is read once, if present.
//     LoadEnv reads more files; later files win.
//   - Each configuration type and prefix is parsed once per process and
//     served from a cache afterwards. ResetCache clears it in tests.
//
// # Usage
//
//	var cfg mongosession.Config
//	if err := config.Load(&cfg, config.WithPrefix("MONGO_SESSION_")); err != nil {
//	    return fmt.Errorf("load configuration: %w", err)
//	}
//
// # Errors
//
// Check the sentinel errors with errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer.
package config
