package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Database database config struct
type Database struct {
	Master  *DBNode `json:"master" yaml:"master"`
	Migrate bool    `json:"migrate" yaml:"migrate"`
}

// DBNode represents a single database node configuration
type DBNode struct {
	Driver          string        `json:"driver" yaml:"driver"`
	Source          string        `json:"source" yaml:"source"`
	Logging         bool          `json:"logging" yaml:"logging"`
	MaxIdleConn     int           `json:"max_idle_conn" yaml:"max_idle_conn"`
	MaxOpenConn     int           `json:"max_open_conn" yaml:"max_open_conn"`
	ConnMaxLifeTime time.Duration `json:"conn_max_life_time" yaml:"conn_max_life_time"`
}

// Credentials are the discrete connection parts used when no source is
// given explicitly.
type Credentials struct {
	User     string
	Password string
	Host     string
	Port     int
	Name     string
}

func getDatabaseConfig(v *viper.Viper) *Database {
	migrate := true
	if v.IsSet("data.database.migrate") {
		migrate = v.GetBool("data.database.migrate")
	}
	return &Database{
		Master:  getMasterConfig(v),
		Migrate: migrate,
	}
}

func getMasterConfig(v *viper.Viper) *DBNode {
	driver := v.GetString("data.database.master.driver")
	if driver == "" {
		driver = "postgres"
	}

	source := v.GetString("data.database.master.source")
	if source == "" {
		source = BuildSource(driver, Credentials{
			User:     v.GetString("data.database.user"),
			Password: v.GetString("data.database.password"),
			Host:     v.GetString("data.database.host"),
			Port:     v.GetInt("data.database.port"),
			Name:     v.GetString("data.database.name"),
		})
	}

	return &DBNode{
		Driver:          driver,
		Source:          source,
		Logging:         v.GetBool("data.database.master.logging"),
		MaxIdleConn:     v.GetInt("data.database.master.max_idle_conn"),
		MaxOpenConn:     v.GetInt("data.database.master.max_open_conn"),
		ConnMaxLifeTime: v.GetDuration("data.database.master.max_life_time"),
	}
}

// BuildSource assembles a DSN for driver from discrete parts
func BuildSource(driver string, c Credentials) string {
	hostPort := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	switch driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", c.User, c.Password, hostPort, c.Name)
	case "sqlite", "sqlite3":
		return fmt.Sprintf("file:%s.db?cache=shared&_fk=1", c.Name)
	default:
		u := url.URL{
			Scheme: "postgresql",
			User:   url.UserPassword(c.User, c.Password),
			Host:   hostPort,
			Path:   "/" + c.Name,
		}
		return u.String()
	}
}
