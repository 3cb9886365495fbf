package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"headgate/internal/config"
	"headgate/internal/http/message"
)

type app struct {
	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "headgate",
		Short:         "Inspect HTTP message heads and check them against auth passes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.MustLoad()
			if err != nil {
				return err
			}
			if !cfg.Color() {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			a.cfg = cfg
			return nil
		},
	}

	root.AddCommand(
		a.namesCmd(),
		a.valuesCmd(),
		a.singleCmd(),
		a.gateCmd(),
		versionCmd(),
	)
	return root
}

func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		_, _ = io.WriteString(root.ErrOrStderr(), errorStyle.Render("error: "+err.Error())+"\n")
	}
	return err
}

// readMessage reads a head from path, or from in when path is "" or "-".
// The head must be terminated by a blank line, or end with the input.
func readMessage(in io.Reader, path string) (message.Message, error) {
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	br := bufio.NewReader(io.MultiReader(in, strings.NewReader("\n\n")))
	return message.Read(br)
}

func optionalArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
