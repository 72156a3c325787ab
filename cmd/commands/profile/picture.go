package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nathanbeddoewebdev/hirectl/cmd/commands/cmdutil"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// maxPictureBytes caps profile picture uploads.
const maxPictureBytes = 5 << 20

var pictureExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true}

func PictureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picture <file>",
		Short: "Upload a profile picture or company logo",
		Long: `Upload a profile picture (talent) or company logo (team).

Accepted formats: PNG, JPEG, WebP up to 5 MB.

Example:
  hirectl profile picture ~/Pictures/me.png`,
		Args:         cobra.ExactArgs(1),
		RunE:         runPicture,
		SilenceUsage: true,
	}
	return cmdutil.Audited(cmd)
}

func runPicture(cmd *cobra.Command, args []string) error {
	path := args[0]
	if ext := strings.ToLower(filepath.Ext(path)); !pictureExts[ext] {
		return fmt.Errorf("unsupported image type %q (use png, jpg or webp)", ext)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if info.Size() > maxPictureBytes {
		return fmt.Errorf("%s is %s, the limit is %s", filepath.Base(path),
			humanize.Bytes(uint64(info.Size())), humanize.Bytes(maxPictureBytes))
	}

	s, err := cmdutil.OpenAuthenticated(cmd)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	cmdutil.SetAuditResource(cmd, "picture", "", filepath.Base(path))
	url, err := s.API.UploadPicture(cmdutil.Context(cmd), filepath.Base(path), file)
	if err != nil {
		return cmdutil.Explain("upload failed", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%s)\n", filepath.Base(path), humanize.Bytes(uint64(info.Size())))
	if url != "" {
		fmt.Fprintln(cmd.OutOrStdout(), url)
	}
	return nil
}
