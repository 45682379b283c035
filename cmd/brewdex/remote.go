package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/grainbill/brewdex/internal/config"
	"github.com/spf13/cobra"
)

var remoteCmd = &cobra.Command{
	Use:     "remote",
	Short:   "Manage named server remotes",
	GroupID: "system",
}

var remoteAddCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Add or update a named remote",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, url := args[0], args[1]
		token, _ := cmd.Flags().GetString("token")

		path, err := config.DefaultRemotesPath()
		if err != nil {
			return err
		}
		rc, err := config.LoadRemotes(path)
		if err != nil {
			return err
		}
		rc.Remotes[name] = config.Remote{URL: url, Token: token}
		// The first remote becomes active so data commands start using
		// it right away.
		if rc.Active == "" {
			rc.Active = name
		}
		if err := config.SaveRemotes(path, rc); err != nil {
			return err
		}
		fmt.Printf("remote %q added (%s)\n", name, url)
		return nil
	},
}

var remoteRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a named remote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		path, err := config.DefaultRemotesPath()
		if err != nil {
			return err
		}
		rc, err := config.LoadRemotes(path)
		if err != nil {
			return err
		}
		if _, ok := rc.Remotes[name]; !ok {
			return fmt.Errorf("remote %q not found", name)
		}
		delete(rc.Remotes, name)
		if rc.Active == name {
			rc.Active = ""
		}
		if err := config.SaveRemotes(path, rc); err != nil {
			return err
		}
		fmt.Printf("remote %q removed\n", name)
		return nil
	},
}

var remoteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all remotes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultRemotesPath()
		if err != nil {
			return err
		}
		rc, err := config.LoadRemotes(path)
		if err != nil {
			return err
		}
		if len(rc.Remotes) == 0 {
			fmt.Println("no remotes configured")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  NAME\tURL\tTOKEN")
		for name, r := range rc.Remotes {
			marker := "  "
			if name == rc.Active {
				marker = "* "
			}
			token := r.Token
			if len(token) > 8 {
				token = token[:8] + "..."
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\n", marker, name, r.URL, token)
		}
		return w.Flush()
	},
}

var remoteUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active remote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		path, err := config.DefaultRemotesPath()
		if err != nil {
			return err
		}
		rc, err := config.LoadRemotes(path)
		if err != nil {
			return err
		}
		if _, ok := rc.Remotes[name]; !ok {
			return fmt.Errorf("remote %q not found", name)
		}
		rc.Active = name
		if err := config.SaveRemotes(path, rc); err != nil {
			return err
		}
		fmt.Printf("active remote set to %q\n", name)
		return nil
	},
}

var remoteShowCmd = &cobra.Command{
	Use:   "show [<name>]",
	Short: "Show details for a remote (defaults to active)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultRemotesPath()
		if err != nil {
			return err
		}
		rc, err := config.LoadRemotes(path)
		if err != nil {
			return err
		}

		name := rc.Active
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" {
			return fmt.Errorf("no active remote; specify a name or run 'brewdex remote use <name>'")
		}

		r, ok := rc.Remotes[name]
		if !ok {
			return fmt.Errorf("remote %q not found", name)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		active := ""
		if name == rc.Active {
			active = " (active)"
		}
		fmt.Fprintf(w, "name:\t%s%s\n", name, active)
		fmt.Fprintf(w, "url:\t%s\n", r.URL)
		if r.Token != "" {
			masked := r.Token
			if len(masked) > 8 {
				masked = masked[:8] + strings.Repeat("*", len(masked)-8)
			}
			fmt.Fprintf(w, "token:\t%s\n", masked)
		}
		return w.Flush()
	},
}

func init() {
	remoteAddCmd.Flags().String("token", "", "bearer token for authentication")

	remoteCmd.AddCommand(remoteAddCmd)
	remoteCmd.AddCommand(remoteRemoveCmd)
	remoteCmd.AddCommand(remoteListCmd)
	remoteCmd.AddCommand(remoteUseCmd)
	remoteCmd.AddCommand(remoteShowCmd)
}
