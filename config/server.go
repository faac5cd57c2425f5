package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/viper"
)

// Server http server config struct
type Server struct {
	Host                string
	Port                int
	CORSOrigins         []string
	MaxPageLimit        int
	HealthCheckDatabase bool
	// Metrics exposes GET /metrics in the Prometheus text format.
	Metrics bool
}

// Addr returns host:port
func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// AllowsAnyOrigin reports whether the wildcard origin is configured
func (s *Server) AllowsAnyOrigin() bool {
	for _, o := range s.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func (s *Server) String() string {
	return fmt.Sprintf("%s (cors=%v, max_page_limit=%d)", s.Addr(), s.CORSOrigins, s.MaxPageLimit)
}

func getServerConfig(v *viper.Viper) *Server {
	return &Server{
		Host:                v.GetString("server.host"),
		Port:                v.GetInt("server.port"),
		CORSOrigins:         getCSV(v, "server.cors_origins"),
		MaxPageLimit:        getIntOrDefault(v, "server.max_page_limit", 0),
		HealthCheckDatabase: v.GetBool("server.health_check_database"),
		Metrics:             v.GetBool("server.metrics"),
	}
}
