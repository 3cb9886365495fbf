package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"headgate/internal/http/header"
)

func (a *app) namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names [file]",
		Short: "List the header names of a message head",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd.InOrStdin(), optionalArg(args, 0))
			if err != nil {
				return err
			}
			names, err := header.New(msg).Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				printName(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (a *app) valuesCmd() *cobra.Command {
	var verbose bool
	c := &cobra.Command{
		Use:   "values name [file]",
		Short: "Print every value of a header, in order",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd.InOrStdin(), optionalArg(args, 1))
			if err != nil {
				return err
			}
			vals, err := header.New(msg).Values(args[0])
			if err != nil {
				return err
			}
			for _, v := range vals.All() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			if verbose {
				printNote(cmd.ErrOrStderr(), vals.Note())
			}
			return nil
		},
	}
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "describe the lookup on stderr")
	return c
}

func (a *app) singleCmd() *cobra.Command {
	var def string
	c := &cobra.Command{
		Use:   "single name [file]",
		Short: "Print the first value of a header, failing when it is absent",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd.InOrStdin(), optionalArg(args, 1))
			if err != nil {
				return err
			}
			s := header.NewSmart(msg)

			var val string
			if cmd.Flags().Changed("default") {
				val, err = s.SingleOr(args[0], def)
			} else {
				val, err = s.Single(args[0])
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), val)
			return nil
		},
	}
	c.Flags().StringVarP(&def, "default", "d", "", "value to print when the header is absent")
	return c
}
