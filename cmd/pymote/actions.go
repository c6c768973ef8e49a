package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pymote "github.com/ManfredAabye/OpenSim-Pymote"
)

var execCmd = &cobra.Command{
	Use:   "exec <command>...",
	Short: "Send a raw console command to the simulator",
	Example: `  pymote exec show version
  pymote exec save oar backups/island.oar --noassets`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(c *pymote.Client) error {
			res, err := c.Execute(strings.Join(args, " "), nil)
			if err != nil {
				return err
			}
			if !res.OK() {
				return res.Err()
			}
			if res.Output() != "" {
				fmt.Println(res.Output())
			}
			return nil
		})
	},
}

var alertCmd = &cobra.Command{
	Use:   "alert <message>...",
	Short: "Send an alert message to every connected user",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(c *pymote.Client) error {
			res, err := c.Alert(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return res.Err()
		})
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Persist the current region immediately",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(c *pymote.Client) error {
			res, err := c.Backup()
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}
			if res.Output() != "" {
				fmt.Println(res.Output())
			}
			return nil
		})
	},
}
