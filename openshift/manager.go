package openshift

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"
)

// ErrNoPod is returned when a label selector matches no pod.
var ErrNoPod = errors.New("no pod found")

const healthTimeout = 10 * time.Second

// Manager runs the deployment operations against one namespace.
type Manager struct {
	opts   Options
	runner Runner
	out    io.Writer
	client *http.Client
}

// Option configures a Manager.
type Option func(*Manager)

// WithOutput sets the writer for progress messages.
func WithOutput(w io.Writer) Option {
	return func(m *Manager) { m.out = w }
}

// WithHTTPClient sets the client used by Health.
func WithHTTPClient(c *http.Client) Option {
	return func(m *Manager) { m.client = c }
}

// NewManager creates a manager. A nil runner uses the process terminal.
func NewManager(opts Options, runner Runner, options ...Option) *Manager {
	if runner == nil {
		runner = NewExecRunner()
	}
	m := &Manager{
		opts:   opts.withDefaults(),
		runner: runner,
		out:    os.Stdout,
		client: &http.Client{Timeout: healthTimeout},
	}
	for _, o := range options {
		o(m)
	}
	return m
}

// Options returns the effective options.
func (m *Manager) Options() Options { return m.opts }

func (m *Manager) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(m.out, format, a...)
}

func (m *Manager) ns() string { return "-n" + m.opts.Namespace }

func (m *Manager) appLabel() string { return "app=" + m.opts.App }

func (m *Manager) deployment() string { return "deployment/" + m.opts.App }

func (m *Manager) output(ctx context.Context, args ...string) (string, error) {
	return m.runner.Output(ctx, m.opts.Binary, args...)
}

func (m *Manager) run(ctx context.Context, args ...string) error {
	return m.runner.Run(ctx, m.opts.Binary, args...)
}

// Login authenticates the client against the cluster.
func (m *Manager) Login(ctx context.Context) error {
	m.printf("Autenticando...\n")
	err := m.run(ctx, "login",
		"--server="+m.opts.Server,
		"--token="+m.opts.Token,
		"--insecure-skip-tls-verify=true",
	)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	m.printf("Autenticación completada\n")
	return nil
}

// Status runs every fetch and joins the failures. The returned status is
// never nil.
func (m *Manager) Status(ctx context.Context) (*Status, error) {
	s := &Status{Pods: []Pod{}, Services: []Service{}, Routes: []Route{}}
	var errs []error

	if d, err := m.DeploymentStatus(ctx); err != nil {
		errs = append(errs, fmt.Errorf("deployment: %w", err))
	} else {
		s.Deployment = d
	}
	if p, err := m.Pods(ctx); err != nil {
		errs = append(errs, fmt.Errorf("pods: %w", err))
	} else {
		s.Pods = p
	}
	if svc, err := m.Services(ctx); err != nil {
		errs = append(errs, fmt.Errorf("services: %w", err))
	} else {
		s.Services = svc
	}
	if r, err := m.Routes(ctx); err != nil {
		errs = append(errs, fmt.Errorf("routes: %w", err))
	} else {
		s.Routes = r
	}
	if h, err := m.HPA(ctx); err != nil {
		errs = append(errs, fmt.Errorf("hpa: %w", err))
	} else {
		s.HPA = h
	}

	return s, errors.Join(errs...)
}

// DeploymentStatus fetches replica counts of the app deployment.
func (m *Manager) DeploymentStatus(ctx context.Context) (*DeploymentStatus, error) {
	raw, err := m.output(ctx, "get", m.deployment(), m.ns(), "-o", "json")
	if err != nil {
		return nil, err
	}
	o, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	return &DeploymentStatus{
		Name:            m.opts.App,
		Replicas:        o.Spec.Replicas,
		ReadyReplicas:   o.Status.ReadyReplicas,
		UpdatedReplicas: o.Status.UpdatedReplicas,
	}, nil
}

// Pods lists the app pods.
func (m *Manager) Pods(ctx context.Context) ([]Pod, error) {
	items, err := m.list(ctx, "pods", true)
	if err != nil {
		return nil, err
	}
	pods := make([]Pod, 0, len(items))
	for _, it := range items {
		pods = append(pods, Pod{Name: it.Metadata.Name, Phase: it.Status.Phase})
	}
	return pods, nil
}

// Services lists the app services.
func (m *Manager) Services(ctx context.Context) ([]Service, error) {
	items, err := m.list(ctx, "svc", true)
	if err != nil {
		return nil, err
	}
	svcs := make([]Service, 0, len(items))
	for _, it := range items {
		svcs = append(svcs, Service{Name: it.Metadata.Name, Type: it.Spec.Type})
	}
	return svcs, nil
}

// Routes lists every route in the namespace.
func (m *Manager) Routes(ctx context.Context) ([]Route, error) {
	items, err := m.list(ctx, "routes", false)
	if err != nil {
		return nil, err
	}
	routes := make([]Route, 0, len(items))
	for _, it := range items {
		routes = append(routes, Route{Name: it.Metadata.Name, Host: it.Spec.Host})
	}
	return routes, nil
}

// HPA returns the first autoscaler of the namespace, or nil if there is none.
func (m *Manager) HPA(ctx context.Context) (*HPAStatus, error) {
	items, err := m.list(ctx, "hpa", false)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	it := items[0]
	return &HPAStatus{
		Name:            it.Metadata.Name,
		MinReplicas:     it.Spec.MinReplicas,
		MaxReplicas:     it.Spec.MaxReplicas,
		CurrentReplicas: it.Status.CurrentReplicas,
		CPUPercent:      it.Status.CurrentCPUUtilizationPercentage,
	}, nil
}

func (m *Manager) list(ctx context.Context, kind string, labeled bool) ([]object, error) {
	args := []string{"get", kind, m.ns()}
	if labeled {
		args = append(args, "-l", m.appLabel())
	}
	raw, err := m.output(ctx, append(args, "-o", "json")...)
	if err != nil {
		return nil, err
	}
	return decodeList(raw)
}

// Logs streams the app logs.
func (m *Manager) Logs(ctx context.Context, follow bool, tail int) error {
	m.printf("Logs (últimas %d líneas):\n", tail)
	args := []string{"logs"}
	if follow {
		args = append(args, "-f")
	}
	args = append(args, m.ns(), "-l", m.appLabel(), "--tail="+strconv.Itoa(tail))
	return m.run(ctx, args...)
}

// Describe prints the description of a pod. An empty name selects the
// first app pod.
func (m *Manager) Describe(ctx context.Context, pod string) error {
	if pod == "" {
		name, err := m.firstPod(ctx, m.appLabel())
		if err != nil {
			return err
		}
		pod = name
	}
	m.printf("Describiendo pod: %s\n", pod)
	return m.run(ctx, "describe", "pod", pod, m.ns())
}

// Restart triggers a rollout and waits for it to finish.
func (m *Manager) Restart(ctx context.Context) error {
	m.printf("Reiniciando deployment...\n")
	if err := m.run(ctx, "rollout", "restart", m.ns(), m.deployment()); err != nil {
		return err
	}
	m.printf("Deployment reiniciado\nEsperando a que esté listo...\n")
	return m.run(ctx, "rollout", "status", m.ns(), m.deployment(), "--timeout=5m")
}

// DBCheck runs pg_isready inside the database pod.
func (m *Manager) DBCheck(ctx context.Context) error {
	m.printf("Verificando base de datos...\n")
	pod, err := m.firstPod(ctx, m.opts.DBSelector)
	if err != nil {
		return err
	}
	return m.run(ctx, "exec", "-it", pod, m.ns(), "--", "pg_isready", "-U", m.opts.DBUser)
}

func (m *Manager) firstPod(ctx context.Context, selector string) (string, error) {
	name, err := m.output(ctx, "get", "pods", m.ns(), "-l", selector, "-o", "jsonpath={.items[0].metadata.name}")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrNoPod, selector)
	}
	return name, nil
}

// Health resolves the app route and requests its health endpoint. It
// returns the HTTP status code.
func (m *Manager) Health(ctx context.Context) (int, error) {
	m.printf("Probando health check...\n")
	host, err := m.output(ctx, "get", "route", m.opts.App, m.ns(), "-o", "jsonpath={.spec.host}")
	if err != nil {
		return 0, err
	}
	if host == "" {
		return 0, fmt.Errorf("route %s has no host", m.opts.App)
	}

	url := "https://" + host + "/health"
	m.printf("URL: %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	res, err := m.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("health request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= http.StatusBadRequest {
		return res.StatusCode, fmt.Errorf("health check returned status %d", res.StatusCode)
	}
	m.printf("Health check: OK (status %d)\n", res.StatusCode)
	return res.StatusCode, nil
}
