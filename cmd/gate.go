package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"headgate/internal/auth"
	"headgate/internal/http/header"
	"headgate/internal/middleware"
)

func (a *app) gateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gate [file]",
		Short: "Check a request head against the configured passes",
		Long: "Runs the header pass, and the basic pass when AUTH_USERS is set. " +
			"The request is let in only when every pass accepts it; IDENTITY_PASS " +
			"selects whose identity is reported.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readMessage(cmd.InOrStdin(), optionalArg(args, 0))
			if err != nil {
				return err
			}

			passes := []auth.Pass{auth.HeaderPass(a.cfg.AuthHeader())}
			if users := a.cfg.AuthUsers(); len(users) > 0 {
				passes = append(passes, auth.BasicPass(users))
			}
			pass, err := auth.All(passes, a.cfg.IdentityPass())
			if err != nil {
				return err
			}

			out, err := middleware.Chain(cmd.Context(), req, middleware.NewGate(pass))
			if err != nil {
				return err
			}

			urn, err := header.NewSmart(out).Single(middleware.IdentityHeader)
			if err != nil {
				return err
			}
			log.Printf("Request let in as %s", urn)
			printName(cmd.OutOrStdout(), urn)
			return nil
		},
	}
}
