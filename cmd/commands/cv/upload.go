package cv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"
	"nathanbeddoewebdev/hirectl/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// maxCVBytes caps CV uploads.
const maxCVBytes = 10 << 20

var cvExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

func UploadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a CV and show the parsed result",
		Long: `Upload a CV (PDF or Word, up to 10 MB) and wait for the parser.

Without --confirm the parsed result is only shown; apply it later with
"hirectl cv confirm <upload-id>".

Examples:
  hirectl cv upload ~/Documents/cv.pdf
  hirectl cv upload cv.docx --confirm`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUpload,
		SilenceUsage: true,
	}
	cmd.Flags().Bool("confirm", false, "Apply the parsed CV to your profile immediately")
	return cmdutil.Audited(cmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]
	name := filepath.Base(path)
	if ext := strings.ToLower(filepath.Ext(path)); !cvExts[ext] {
		return fmt.Errorf("unsupported CV type %q (use pdf, doc or docx)", ext)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if info.Size() > maxCVBytes {
		return fmt.Errorf("%s is %s, the limit is %s", name, humanize.Bytes(uint64(info.Size())), humanize.Bytes(maxCVBytes))
	}

	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}
	ctx := cmdutil.Context(cmd)
	cmdutil.SetAuditResource(cmd, "cv", "", name)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	up, err := s.API.UploadCV(ctx, name, file)
	if err != nil {
		return cmdutil.Explain("upload failed", err)
	}
	cmdutil.SetAuditResource(cmd, "cv", up.UploadID, name)
	fmt.Fprintf(cmd.ErrOrStderr(), "Uploaded %s (%s)\n", name, humanize.Bytes(uint64(info.Size())))

	var parsed *domain.ParsedCV
	err = cmdutil.Spin(cmd, "Parsing CV...", func() error {
		var perr error
		parsed, perr = waitForParse(ctx, s.API, up.UploadID)
		return perr
	})
	if err != nil {
		return cmdutil.Explain("parse failed", err)
	}
	printParsed(cmd.OutOrStdout(), parsed)

	if confirm, _ := cmd.Flags().GetBool("confirm"); !confirm {
		fmt.Fprintf(cmd.OutOrStdout(), "\nRun `hirectl cv confirm %s` to apply it to your profile.\n", up.UploadID)
		return nil
	}
	if _, err := s.API.ConfirmCV(ctx, *parsed); err != nil {
		return cmdutil.Explain("confirm failed", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nProfile updated from CV.")
	return nil
}
