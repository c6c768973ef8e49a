package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	pymote "github.com/ManfredAabye/OpenSim-Pymote"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions hosted by the simulator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(c *pymote.Client) error {
			regions, err := c.GetRegions()
			if err != nil {
				return err
			}
			tbl := table.New("Name", "UUID", "Location", "Size", "Port").WithWriter(os.Stdout)
			for _, r := range regions {
				port := "-"
				if r.Port != nil {
					port = strconv.Itoa(*r.Port)
				}
				tbl.AddRow(r.Name, r.UUID,
					fmt.Sprintf("%d,%d", r.LocationX, r.LocationY),
					fmt.Sprintf("%dx%d", r.SizeX, r.SizeY),
					port)
			}
			tbl.Print()
			return nil
		})
	},
}

var usersFull bool

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the users connected to the simulator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(c *pymote.Client) error {
			users, err := c.GetUsers(usersFull)
			if err != nil {
				return err
			}
			tbl := table.New("Name", "Region", "Position").WithWriter(os.Stdout)
			for _, u := range users {
				region, position := "-", "-"
				if u.Region != nil {
					region = *u.Region
				}
				if u.Position != nil {
					position = fmt.Sprintf("<%g, %g, %g>", u.Position.X, u.Position.Y, u.Position.Z)
				}
				tbl.AddRow(u.FullName(), region, position)
			}
			tbl.Print()
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [category]",
	Short: "Show simulator statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := ""
		if len(args) == 1 {
			category = args[0]
		}
		return withClient(cmd, func(c *pymote.Client) error {
			stats, err := c.GetStats(category)
			if err != nil {
				return err
			}
			printStats(stats)
			return nil
		})
	},
}

var terrainCmd = &cobra.Command{
	Use:   "terrain",
	Short: "Show the terrain height summary for the current region",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(c *pymote.Client) error {
			info, err := c.GetTerrainStats()
			if err != nil {
				return err
			}
			fmt.Printf("Min: %.2f  Max: %.2f  Avg: %.2f\n",
				info.MinHeight, info.MaxHeight, info.AvgHeight)
			return nil
		})
	},
}

var (
	watchInterval time.Duration
	watchCount    int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll simulator statistics at a fixed interval",
	Long: `Polls "show stats" and prints one summary line per sample until
interrupted, or until --count samples have been taken.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withClient(cmd, func(c *pymote.Client) error {
			ticker := time.NewTicker(watchInterval)
			defer ticker.Stop()

			for taken := 0; watchCount == 0 || taken < watchCount; taken++ {
				stats, err := c.GetStats("")
				if err != nil {
					return err
				}
				fmt.Printf("%s  %s\n", time.Now().Format("15:04:05"), statsLine(stats))

				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
			return nil
		})
	},
}

func init() {
	usersCmd.Flags().BoolVar(&usersFull, "full", false, "request the extended user listing")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 5*time.Second, "time between samples")
	watchCmd.Flags().IntVar(&watchCount, "count", 0, "number of samples to take (0 = until interrupted)")
}

func printStats(s pymote.Stats) {
	if s.FPS != nil {
		fmt.Printf("FPS:         %.1f\n", *s.FPS)
	}
	if s.PhysicsFPS != nil {
		fmt.Printf("Physics FPS: %.1f\n", *s.PhysicsFPS)
	}
	if s.Agents != nil {
		fmt.Printf("Agents:      %d\n", *s.Agents)
	}
	if s.Objects != nil {
		fmt.Printf("Objects:     %d\n", *s.Objects)
	}
	if s.Scripts != nil {
		fmt.Printf("Scripts:     %d\n", *s.Scripts)
	}
	if s.MemoryMB != nil {
		fmt.Printf("Memory:      %.1f MB\n", *s.MemoryMB)
	}
	if s.Uptime != nil {
		fmt.Printf("Uptime:      %s\n", *s.Uptime)
	}
}

// statsLine condenses a Stats record into one line for watch output.
// Absent fields are printed as "-".
func statsLine(s pymote.Stats) string {
	fps, agents, memory := "-", "-", "-"
	if s.FPS != nil {
		fps = fmt.Sprintf("%.1f", *s.FPS)
	}
	if s.Agents != nil {
		agents = strconv.Itoa(*s.Agents)
	}
	if s.MemoryMB != nil {
		memory = fmt.Sprintf("%.1f MB", *s.MemoryMB)
	}
	return fmt.Sprintf("fps=%s agents=%s memory=%s", fps, agents, memory)
}
