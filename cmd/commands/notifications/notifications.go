package notifications

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
)

// NewCommand returns the "notifications" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif", "inbox"},
		Short:   "Read and manage notifications",
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ReadCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Aliases:      []string{"ls"},
		Short:        "List notifications",
		RunE:         runList,
		SilenceUsage: true,
	}
	cmd.Flags().Bool("unread", false, "Only show unread notifications")
	cmdutil.AddOutputFlag(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}
	unread, _ := cmd.Flags().GetBool("unread")

	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	items, err := s.API.Notifications(cmdutil.Context(cmd), unread)
	if err != nil {
		return cmdutil.Explain("failed to fetch notifications", err)
	}
	if output == "json" {
		return cmdutil.PrintJSON(cmd, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No notifications.")
		return nil
	}
	printTable(cmd, items)
	return nil
}

func printTable(cmd *cobra.Command, items []domain.Notification) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "\tID\tWHEN\tTITLE\tMESSAGE")
	for _, n := range items {
		dot := "●"
		if n.Read {
			dot = " "
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", dot, n.ID, humanize.Time(n.CreatedAt), n.Title, n.Body)
	}
}

func ReadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "read <id>...",
		Short:        "Mark notifications as read",
		Args:         cobra.MinimumNArgs(1),
		RunE:         runRead,
		SilenceUsage: true,
	}
	return cmd
}

func runRead(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	ctx := cmdutil.Context(cmd)
	for _, id := range args {
		if err := s.API.MarkNotificationRead(ctx, id); err != nil {
			return cmdutil.Explain(fmt.Sprintf("failed to mark %s read", id), err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Marked %d as read.\n", len(args))
	return nil
}

func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete <id>...",
		Aliases:      []string{"rm"},
		Short:        "Delete notifications",
		Args:         cobra.MinimumNArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}
	return cmdutil.Audited(cmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	ctx := cmdutil.Context(cmd)
	cmdutil.SetAuditResource(cmd, "notification", args[0], "")
	for _, id := range args {
		if err := s.API.DeleteNotification(ctx, id); err != nil {
			return cmdutil.Explain(fmt.Sprintf("failed to delete %s", id), err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", english.Plural(len(args), "notification", ""))
	return nil
}
