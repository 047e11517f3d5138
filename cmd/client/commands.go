package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-employee-keeper/internal/adapter"
	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/spf13/cobra"
)

const (
	envServer = "EMPLOYEE_KEEPER_SERVER"
	envToken  = "EMPLOYEE_KEEPER_TOKEN"

	defaultServer  = "localhost:8080"
	defaultTimeout = 15 * time.Second
)

// clientOptions holds the persistent flags shared by every command.
type clientOptions struct {
	server  string
	token   string
	timeout time.Duration

	logger *logger.Logger
}

func (o *clientOptions) adapter() (adapter.ServerAdapter, error) {
	a, err := adapter.NewHTTPServerAdapter(o.server, o.timeout, o.logger)
	if err != nil {
		return nil, err
	}
	a.SetToken(o.token)
	return a, nil
}

// run builds an adapter and calls fn with a context bounded by the timeout.
func (o *clientOptions) run(cmd *cobra.Command, fn func(ctx context.Context, a adapter.ServerAdapter) (any, error)) error {
	a, err := o.adapter()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	result, err := fn(ctx, a)
	if err != nil {
		o.logger.Error().Err(err).Str("command", cmd.CommandPath()).Send()
		return err
	}

	return printJSON(cmd.OutOrStdout(), result)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRootCmd(buildInfo models.AppBuildInfo, log *logger.Logger) *cobra.Command {
	opts := &clientOptions{logger: log}

	rootCmd := &cobra.Command{
		Use:          "go-employee-client",
		Short:        "Command-line client for the employee keeper API",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.server, "server", "s", envOr(envServer, defaultServer), "Server address (or set "+envServer+")")
	rootCmd.PersistentFlags().StringVarP(&opts.token, "token", "t", os.Getenv(envToken), "Bearer token (or set "+envToken+")")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "Request timeout")

	rootCmd.AddCommand(
		newVersionCmd(buildInfo),
		newSignupCmd(opts),
		newLoginCmd(opts),
		newEmployeeCmd(opts),
		newAvgSalaryCmd(opts),
	)

	return rootCmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newVersionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), buildInfo)
		},
	}
}

func newSignupCmd(opts *clientOptions) *cobra.Command {
	var user models.User

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a adapter.ServerAdapter) (any, error) {
				if err := a.Signup(ctx, user); err != nil {
					return nil, err
				}
				return models.MessageResponse{Message: "User created successfully"}, nil
			})
		},
	}

	cmd.Flags().StringVarP(&user.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&user.Email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&user.Password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(opts *clientOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain an access token",
		Long: `Obtain an access token.

Export it for the employee commands:
  export ` + envToken + `=<access_token>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a adapter.ServerAdapter) (any, error) {
				return a.Login(ctx, username, password)
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAvgSalaryCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "avg-salary <department>",
		Short: "Average salary of a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a adapter.ServerAdapter) (any, error) {
				return a.AverageSalary(ctx, args[0])
			})
		},
	}
}

// parseAssignments turns key=value pairs into an update document. Values
// are decoded as JSON when possible, so salary=90000 is a number and
// skills=["Go"] an array; anything else is kept as a string.
func parseAssignments(assignments []string) (models.EmployeeUpdate, error) {
	update := models.EmployeeUpdate{}
	for _, assignment := range assignments {
		key, raw, ok := strings.Cut(assignment, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid assignment %q, want key=value", assignment)
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		update[strings.TrimSpace(key)] = value
	}
	return update, nil
}
