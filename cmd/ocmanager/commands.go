package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ncobase/microservicio/openshift"
	"github.com/spf13/cobra"
)

type globals struct {
	runner  openshift.Runner
	opts    openshift.Options
	manager *openshift.Manager
}

// newRootCmd builds the CLI. A nil runner executes the real client.
func newRootCmd(runner openshift.Runner) *cobra.Command {
	g := &globals{runner: runner}
	var flags openshift.Options

	root := &cobra.Command{
		Use:           "ocmanager",
		Short:         "Manage the microservicio deployment on OpenShift",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts, err := openshift.OptionsFromEnv()
			if err != nil {
				return fmt.Errorf("%w (required: %s, %s, %s)", err,
					openshift.EnvServer, openshift.EnvToken, openshift.EnvNamespace)
			}
			opts.App = flags.App
			opts.DBSelector = flags.DBSelector
			opts.DBUser = flags.DBUser
			opts.Binary = flags.Binary
			g.opts = opts
			g.manager = openshift.NewManager(opts, g.runner, openshift.WithOutput(cmd.ErrOrStderr()))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.App, "app", "microservicio", "deployment name and app label")
	pf.StringVar(&flags.DBSelector, "db-selector", "app=postgres", "label selector of the database pod")
	pf.StringVar(&flags.DBUser, "db-user", "usuario", "database user for pg_isready")
	pf.StringVar(&flags.Binary, "oc", "oc", "path to the oc client")

	root.AddCommand(
		newLoginCommand(g),
		newStatusCommand(g),
		newLogsCommand(g),
		newDescribeCommand(g),
		newRestartCommand(g),
		newDBCheckCommand(g),
		newHealthCommand(g),
	)
	return root
}

// loggedIn wraps a step so that it runs after a successful login.
func loggedIn(g *globals, step func(ctx context.Context, cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := g.manager.Login(ctx); err != nil {
			return err
		}
		return step(ctx, cmd)
	}
}

func newLoginCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Args:  cobra.NoArgs,
		Short: "Authenticate against the cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.manager.Login(cmd.Context())
		},
	}
}

func newStatusCommand(g *globals) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "status",
		Args:  cobra.NoArgs,
		Short: "Show deployment, pods, services, routes and autoscaler",
		RunE: loggedIn(g, func(ctx context.Context, cmd *cobra.Command) error {
			s, err := g.manager.Status(ctx)
			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(s); encErr != nil {
					return encErr
				}
			default:
				s.Render(cmd.OutOrStdout())
			}
			return err
		}),
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table|json)")
	return cmd
}

func newLogsCommand(g *globals) *cobra.Command {
	var (
		follow bool
		tail   int
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Args:  cobra.NoArgs,
		Short: "Print application logs",
		RunE: loggedIn(g, func(ctx context.Context, cmd *cobra.Command) error {
			return g.manager.Logs(ctx, follow, tail)
		}),
	}
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "stream logs")
	cmd.Flags().IntVar(&tail, "tail", 50, "number of lines to show")
	return cmd
}

func newDescribeCommand(g *globals) *cobra.Command {
	var pod string

	cmd := &cobra.Command{
		Use:   "describe",
		Args:  cobra.NoArgs,
		Short: "Describe a pod (the first application pod by default)",
		RunE: loggedIn(g, func(ctx context.Context, cmd *cobra.Command) error {
			return g.manager.Describe(ctx, pod)
		}),
	}
	cmd.Flags().StringVar(&pod, "pod", "", "pod name")
	return cmd
}

func newRestartCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Args:  cobra.NoArgs,
		Short: "Restart the deployment and wait for the rollout",
		RunE: loggedIn(g, func(ctx context.Context, cmd *cobra.Command) error {
			return g.manager.Restart(ctx)
		}),
	}
}

func newDBCheckCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "db-check",
		Args:  cobra.NoArgs,
		Short: "Run pg_isready in the database pod",
		RunE: loggedIn(g, func(ctx context.Context, cmd *cobra.Command) error {
			return g.manager.DBCheck(ctx)
		}),
	}
}

func newHealthCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Args:  cobra.NoArgs,
		Short: "Request the health endpoint through the public route",
		RunE: loggedIn(g, func(ctx context.Context, cmd *cobra.Command) error {
			_, err := g.manager.Health(ctx)
			return err
		}),
	}
}
