package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cseboard/internal/customer"
)

var errNotFound = errors.New("not found")

// session carries the opened use case between PersistentPreRunE and the
// command bodies.
type session struct {
	open       openFunc
	configPath string
	uc         customer.UseCase
	close      func() error
}

func (s *session) connect(cmd *cobra.Command, _ []string) error {
	uc, closeFn, err := s.open(cmd.Context(), s.configPath)
	if err != nil {
		return err
	}
	s.uc, s.close = uc, closeFn
	return nil
}

func (s *session) disconnect(*cobra.Command, []string) error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func newRootCmd(open openFunc) *cobra.Command {
	s := &session{open: open}

	rootCmd := &cobra.Command{
		Use:   "cseboardctl",
		Short: "Inspect and update customer success records",
		Long: `cseboardctl reads and writes the customer success table directly,
using the same rules as the web form: a record is created on first save and
afterwards only the attributes you pass are changed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&s.configPath, "config", "", "Path to config.yaml (default: search ./config, ., /etc/app/)")

	rootCmd.AddCommand(newVersionCmd())
	for _, cmd := range []*cobra.Command{newOrgsCmd(s), newGetCmd(s), newSetCmd(s)} {
		cmd.PersistentPreRunE = s.connect
		cmd.PersistentPostRunE = s.disconnect
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cseboardctl %s\n", Version)
			fmt.Fprintf(out, "  Commit:     %s\n", Commit)
			fmt.Fprintf(out, "  Built:      %s\n", BuildDate)
			fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
		},
	}
}

func newOrgsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "orgs",
		Short: "List every Org, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := s.uc.ListOrgs(cmd.Context())
			if err != nil {
				return err
			}
			for _, org := range out.Orgs {
				fmt.Fprintln(cmd.OutOrStdout(), org)
			}
			return nil
		},
	}
}

func newGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <org>",
		Short: "Print one record as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := s.uc.Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !out.Found {
				fmt.Fprintln(cmd.OutOrStdout(), "not found")
				return errNotFound
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(recordNode(out.Record)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newSetCmd(s *session) *cobra.Command {
	values := make(map[string]*string)

	cmd := &cobra.Command{
		Use:   "set <org>",
		Short: "Create or update a record",
		Long: `Create the record for <org> if it does not exist, otherwise update it.
Only attributes given a value other than "-" are written.`,
		Example: `  cseboardctl set Acme --health Green --cse-owner Anil`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := s.uc.Apply(cmd.Context(), customer.ApplyInput{
				Org:    args[0],
				Fields: fieldsFromFlags(values),
			})
			if err != nil {
				return err
			}
			if out.Created {
				fmt.Fprintln(cmd.OutOrStdout(), "created")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "updated")
			}
			return nil
		},
	}

	for _, col := range customer.AttributeColumns() {
		v := new(string)
		values[col] = v
		cmd.Flags().StringVar(v, flagName(col), customer.Unselected, fmt.Sprintf("%s value (%q leaves it unchanged)", col, customer.Unselected))
	}

	return cmd
}

// flagName turns a column name into its flag, e.g. CSE_Owner -> cse-owner.
func flagName(column string) string {
	return strings.ReplaceAll(strings.ToLower(column), "_", "-")
}

func fieldsFromFlags(values map[string]*string) customer.Fields {
	var f customer.Fields
	for col, v := range values {
		f.Set(col, v)
	}
	return customer.FromForm(f)
}

// recordNode renders a record with columns in table order; absent
// attributes are shown as null.
func recordNode(r customer.Record) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *string) {
		v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if value != nil {
			v = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: *value}
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, v)
	}

	org := r.Org
	add(customer.ColumnOrg, &org)
	for _, col := range customer.AttributeColumns() {
		add(col, r.Get(col))
	}
	return node
}
