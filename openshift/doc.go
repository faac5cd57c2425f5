// Package openshift drives the oc client to inspect and operate the
// microservicio deployment: status, logs, restarts and health probes.
package openshift
