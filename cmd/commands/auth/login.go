package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/util"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Long: `Sign in with email and password and store the session in the keychain.

The password is read from the terminal without echo unless --password-stdin
is given.

Examples:
  hirectl auth login --email ada@example.com
  echo "$PASSWORD" | hirectl auth login --email ada@example.com --password-stdin`,
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().Bool("password-stdin", false, "Read the password from stdin")

	return cmdutil.Audited(cmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	email = strings.TrimSpace(email)
	if err := util.ValidateEmail(email); err != nil {
		return err
	}

	password, err := readPassword(cmd)
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	s, err := cmdutil.Open(cmd)
	if err != nil {
		return err
	}

	sess, err := s.API.Login(cmdutil.Context(cmd), domain.Credentials{Email: email, Password: password})
	if err != nil {
		return cmdutil.Explain("sign in failed", err)
	}
	if err := s.Tokens.SaveTokens(sess.Token, sess.RefreshToken); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	cmdutil.SetAuditUser(cmd, sess.User)
	cmdutil.SetAuditResource(cmd, "user", sess.User.ID, sess.User.Email)
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", sess.User.DisplayName(), sess.User.Role)
	return nil
}

func readPassword(cmd *cobra.Command) (string, error) {
	fromStdin, _ := cmd.Flags().GetBool("password-stdin")
	if fromStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no terminal to prompt on, use --password-stdin")
	}
	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
