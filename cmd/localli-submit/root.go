package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathaaaaaaaaaar/localli-landing/pkg/form"
)

// NewRootCommand builds the CLI. Each call returns a fresh command tree.
func NewRootCommand() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	rootCmd := &cobra.Command{
		Use:   "localli-submit",
		Short: "Submit Localli signup forms from the command line",
		Long: `Submit business leads and early access signups to a running Localli server.

Input is validated with the same rules as the landing page forms before
anything is sent.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8080", "Localli server URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")

	submitter := func() form.Submitter {
		s := form.NewHTTPSubmitter(baseURL)
		s.Client.Timeout = timeout
		return s
	}

	rootCmd.AddCommand(newLeadCommand(submitter), newEarlyUserCommand(submitter))
	return rootCmd
}

func newLeadCommand(submitter func() form.Submitter) *cobra.Command {
	var data form.LeadForm

	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Register a business lead",
		Example: `  localli-submit lead --business-name "Joe's Plumbing" --email joe@example.com \
    --category "Home Services"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), form.NewLeadForm(submitter()), data)
		},
	}

	cmd.Flags().StringVar(&data.BusinessName, "business-name", "", "business name")
	cmd.Flags().StringVar(&data.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&data.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&data.ServiceCategory, "category", "", "service category")
	cmd.Flags().StringVar(&data.Source, "source", "", "how the business heard about Localli")
	return cmd
}

func newEarlyUserCommand(submitter func() form.Submitter) *cobra.Command {
	var data form.EarlyAccessForm

	cmd := &cobra.Command{
		Use:     "early-user",
		Aliases: []string{"early-access"},
		Short:   "Join the early access list",
		Example: `  localli-submit early-user --email ada@example.com --first-name Ada`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), form.NewEarlyAccessForm(submitter()), data)
		},
	}

	cmd.Flags().StringVar(&data.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&data.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&data.Email, "email", "", "email address")
	return cmd
}

func run[T any](ctx context.Context, out io.Writer, f *form.Form[T], data T) error {
	if ctx == nil {
		ctx = context.Background()
	}

	err := f.Submit(ctx, data)

	var verr *form.ValidationError
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr.Fields))
		for field := range verr.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(out, "  %s: %s\n", field, verr.Fields[field])
		}
		return errors.New("invalid input")
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Submitted.")
	return nil
}
