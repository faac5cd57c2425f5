// Package version exposes build metadata injected with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/microservicio/version.Version=1.0.0 \
//	  -X github.com/ncobase/microservicio/version.Revision=$(git rev-parse --short HEAD) \
//	  -X 'github.com/ncobase/microservicio/version.BuiltAt=$(date)'" ./cmd/microservicio
//
// Unset Revision and BuiltAt come from the VCS stamp of the toolchain,
// else "unknown". Version defaults to the API version
// the service has always reported.
package version
