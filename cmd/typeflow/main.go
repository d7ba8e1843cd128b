// Command typeflow lays an HTML document out into paginated frames and
// prints the resulting frame tree. It exists to exercise and inspect
// the engine; it is not part of the library surface.
//
// Usage:
//
//	typeflow layout document.html --setup page.toml --verbose
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tsawler/typeflow"
	"github.com/tsawler/typeflow/markup"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "typeflow",
		Short:         "Paginated layout for HTML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newLayoutCmd())
	return root
}

func newLayoutCmd() *cobra.Command {
	var setupPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "layout <document.html>",
		Short: "Lay a document out into pages and print the frame tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: false,
			})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			logger = logger.With("run", uuid.NewString()[:8])

			setup := DefaultSetup()
			if setupPath != "" {
				loaded, err := LoadSetup(setupPath)
				if err != nil {
					return err
				}
				setup = loaded
			}

			children, err := markup.Open(args[0])
			if err != nil {
				return err
			}
			logger.Info("document parsed", "children", len(children))

			composer := typeflow.Compose(children...).
				PageSize(setup.Page.Width, setup.Page.Height).
				Expand(setup.Page.ExpandX, setup.Page.ExpandY).
				Styles(setup.StyleProperties())
			if verbose {
				composer = composer.WithLogger(logger)
			}

			fragment, err := composer.Fragment()
			if err != nil {
				return err
			}
			logger.Info("layout finished", "pages", len(fragment))

			fmt.Fprint(cmd.OutOrStdout(), fragment.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&setupPath, "setup", "", "TOML page setup file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable the engine's debug trace")
	return cmd
}
