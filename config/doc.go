// Package config loads the service configuration with Viper.
//
// Values come from three layers, later ones winning:
//   - built-in defaults
//   - an optional YAML file (--conf, or config.yaml next to the binary)
//   - environment variables (DB_USER, DB_HOST, CORS_ORIGINS, DEBUG, ...)
//
// Example YAML:
//
//	app_name: Microservicio API
//	server:
//	  port: 8000
//	  cors_origins: ["https://app.example.com"]
//	data:
//	  database:
//	    master:
//	      driver: postgres
//	  redis:
//	    addr: localhost:6379
//
// Watch reloads the file on change; the serve command uses it to
// re-apply the log level.
package config
