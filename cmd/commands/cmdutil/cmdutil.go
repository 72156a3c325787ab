// Package cmdutil holds helpers shared by the hirectl subcommands.
package cmdutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/hirectl/internal/auditlog"
	"nathanbeddoewebdev/hirectl/internal/backend"
	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/logger"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// AuditAnnotation marks a command whose runs are written to the audit log.
const AuditAnnotation = "hirectl/audit"

// Audited marks cmd for auditing and returns it.
func Audited(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[AuditAnnotation] = "true"
	return cmd
}

// IsAudited reports whether cmd was marked with Audited.
func IsAudited(cmd *cobra.Command) bool {
	return cmd != nil && cmd.Annotations[AuditAnnotation] == "true"
}

// SetAuditResource attaches the resource a command acted on.
func SetAuditResource(cmd *cobra.Command, kind, id, name string) {
	cmd.SetContext(auditlog.WithMetadata(ctx(cmd), auditlog.Metadata{
		ResourceType: kind,
		ResourceID:   id,
		ResourceName: name,
	}))
}

// SetAuditUser attaches the acting account and its role.
func SetAuditUser(cmd *cobra.Command, user domain.User) {
	cmd.SetContext(auditlog.WithMetadata(ctx(cmd), auditlog.Metadata{
		UserID: user.ID,
		Role:   string(user.Role),
	}))
}

// Open builds the API session for cmd.
func Open(cmd *cobra.Command) (*backend.Session, error) {
	return backend.Open(logger.FromContext(ctx(cmd)))
}

// OpenAuthenticated is Open plus a check that a session token exists.
func OpenAuthenticated(cmd *cobra.Command) (*backend.Session, error) {
	s, err := Open(cmd)
	if err != nil {
		return nil, err
	}
	if err := s.RequireSession(); err != nil {
		return nil, err
	}
	return s, nil
}

// Context returns cmd's context, never nil.
func Context(cmd *cobra.Command) context.Context { return ctx(cmd) }

func ctx(cmd *cobra.Command) context.Context {
	if c := cmd.Context(); c != nil {
		return c
	}
	return context.Background()
}

// AddOutputFlag registers -o/--output.
func AddOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")
}

// Output returns the validated --output value.
func Output(cmd *cobra.Command) (string, error) {
	out, _ := cmd.Flags().GetString("output")
	switch out {
	case "", "table":
		return "table", nil
	case "json":
		return "json", nil
	}
	return "", fmt.Errorf("unsupported output format %q", out)
}

// PrintJSON encodes v as indented JSON to the command's stdout.
func PrintJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Explain rewrites backend errors into actionable messages.
func Explain(action string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrUnauthorized):
		return fmt.Errorf("%s: session expired or missing, run `hirectl auth login`: %w", action, err)
	case errors.Is(err, domain.ErrInsufficientCredits):
		return fmt.Errorf("%s: not enough credits, see `hirectl credits purchase`: %w", action, err)
	case errors.Is(err, domain.ErrRateLimited):
		return fmt.Errorf("%s: too many requests, try again shortly: %w", action, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// Interactive reports whether stdin and stdout are both terminals.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Spin runs action behind a spinner on stderr when attached to a
// terminal, and directly otherwise.
func Spin(cmd *cobra.Command, title string, action func() error) error {
	if !Interactive() {
		return action()
	}
	var actionErr error
	spinErr := spinner.New().
		Title(title).
		Accessible(os.Getenv("ACCESSIBLE") != "").
		Output(cmd.ErrOrStderr()).
		Action(func() { actionErr = action() }).
		Run()
	if spinErr != nil {
		return spinErr
	}
	return actionErr
}
