package credits

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// packages maps purchasable package IDs to the credits they grant.
var packages = map[string]int{
	"starter":  10,
	"standard": 50,
	"pro":      200,
}

// NewCommand returns the "credits" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Check and top up your credit balance",
		Long: `Check and top up your credit balance.

Credits are spent on applications (talent) and job postings (team).`,
	}

	cmd.AddCommand(BalanceCommand())
	cmd.AddCommand(TransactionsCommand())
	cmd.AddCommand(PurchaseCommand())

	return cmd
}

func BalanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "balance",
		Short:        "Show your credit balance",
		RunE:         runBalance,
		SilenceUsage: true,
	}
	cmdutil.AddOutputFlag(cmd)
	return cmd
}

func runBalance(cmd *cobra.Command, args []string) error {
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	b, err := s.API.Balance(cmdutil.Context(cmd))
	if err != nil {
		return cmdutil.Explain("failed to fetch balance", err)
	}
	if output == "json" {
		return cmdutil.PrintJSON(cmd, b)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s credits\n", humanize.Comma(int64(b.Balance)))
	if !b.UpdatedAt.IsZero() {
		fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s\n", humanize.Time(b.UpdatedAt))
	}
	return nil
}

func TransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "transactions",
		Aliases:      []string{"tx", "history"},
		Short:        "List recent credit transactions",
		RunE:         runTransactions,
		SilenceUsage: true,
	}
	cmd.Flags().Int("limit", 20, "Maximum number of transactions")
	cmdutil.AddOutputFlag(cmd)
	return cmd
}

func runTransactions(cmd *cobra.Command, args []string) error {
	output, err := cmdutil.Output(cmd)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 1 {
		return fmt.Errorf("--limit must be at least 1")
	}
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	txs, err := s.API.Transactions(cmdutil.Context(cmd), limit)
	if err != nil {
		return cmdutil.Explain("failed to fetch transactions", err)
	}
	if output == "json" {
		return cmdutil.PrintJSON(cmd, txs)
	}
	if len(txs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tAMOUNT\tTYPE\tDESCRIPTION")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", humanize.Time(tx.CreatedAt), signed(tx.Amount), tx.Kind, tx.Description)
	}
	return w.Flush()
}

func signed(n int) string {
	if n > 0 {
		return "+" + humanize.Comma(int64(n))
	}
	return humanize.Comma(int64(n))
}

func PurchaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchase <package>",
		Short: "Buy a credit package",
		Long: `Buy a credit package.

Packages: starter (10), standard (50), pro (200).

Example:
  hirectl credits purchase standard`,
		Args:         cobra.ExactArgs(1),
		ValidArgs:    []string{"starter", "standard", "pro"},
		RunE:         runPurchase,
		SilenceUsage: true,
	}
	return cmdutil.Audited(cmd)
}

func runPurchase(cmd *cobra.Command, args []string) error {
	id := args[0]
	credits, ok := packages[id]
	if !ok {
		return fmt.Errorf("unknown package %q (starter, standard or pro)", id)
	}
	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	cmdutil.SetAuditResource(cmd, "credits", id, strconv.Itoa(credits))

	b, err := s.API.Purchase(cmdutil.Context(cmd), domain.Purchase{PackageID: id, Credits: credits})
	if err != nil {
		return cmdutil.Explain("purchase failed", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Purchased %d credits. Balance: %s\n", credits, humanize.Comma(int64(b.Balance)))
	return nil
}
