package openshift

import (
	"errors"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables read by OptionsFromEnv.
const (
	EnvServer    = "OPENSHIFT_SERVER"
	EnvToken     = "OPENSHIFT_TOKEN"
	EnvNamespace = "OPENSHIFT_NAMESPACE"
)

// ErrMissingEnv is returned when a required variable is unset.
var ErrMissingEnv = errors.New("missing environment variables")

// Options configures a Manager.
type Options struct {
	Server    string
	Token     string
	Namespace string

	// App is the deployment name and the value of the app label.
	App string
	// DBSelector selects the database pod.
	DBSelector string
	// DBUser is passed to pg_isready.
	DBUser string
	// Binary is the client executable.
	Binary string
}

// OptionsFromEnv reads the connection settings and applies defaults.
func OptionsFromEnv() (Options, error) {
	v := viper.New()
	v.AutomaticEnv()
	o := Options{
		Server:    v.GetString(EnvServer),
		Token:     v.GetString(EnvToken),
		Namespace: v.GetString(EnvNamespace),
	}

	var missing []string
	for name, val := range map[string]string{EnvServer: o.Server, EnvToken: o.Token, EnvNamespace: o.Namespace} {
		if val == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return o, &MissingEnvError{Names: missing}
	}
	return o.withDefaults(), nil
}

// MissingEnvError lists the unset variables.
type MissingEnvError struct {
	Names []string
}

func (e *MissingEnvError) Error() string {
	return ErrMissingEnv.Error() + ": " + strings.Join(e.Names, ", ")
}

func (e *MissingEnvError) Unwrap() error { return ErrMissingEnv }

func (o Options) withDefaults() Options {
	if o.App == "" {
		o.App = "microservicio"
	}
	if o.DBSelector == "" {
		o.DBSelector = "app=postgres"
	}
	if o.DBUser == "" {
		o.DBUser = "usuario"
	}
	if o.Binary == "" {
		o.Binary = "oc"
	}
	return o
}
