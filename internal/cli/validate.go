package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rubber_duck/explorer/internal/explorer"
	"github.com/rubber_duck/explorer/internal/tree"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [tree-file]",
		Short: "Check a tree file and print it fully expanded",
		Long: `Load a tree document, report every problem found in it, and print the
tree with all folders open.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := treePath(GetConfig(cmd.Context()), args)
			if err != nil {
				return err
			}
			root, err := tree.Load(path)
			if err != nil {
				return err
			}
			writeOutline(cmd.OutOrStdout(), root)
			return nil
		},
	}
}

// writeOutline prints root with every folder expanded
func writeOutline(w io.Writer, root tree.Node) {
	expansion := explorer.NewExpansion()
	for _, key := range tree.Folders(root) {
		expansion.Toggle(key)
	}

	files, folders := 0, 0
	for _, row := range explorer.Render(root, expansion) {
		name := row.Name
		if row.IsFolder() {
			name += "/"
			folders++
		} else {
			files++
		}
		if row.Meta != "" {
			name += "  (" + row.Meta + ")"
		}
		_, _ = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", row.Depth), name)
	}
	_, _ = fmt.Fprintf(w, "\n%d folders, %d files\n", folders, files)
}
