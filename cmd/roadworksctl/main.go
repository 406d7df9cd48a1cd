// Command roadworksctl is an operator CLI for the roadworks backend. It
// talks to the running server's REST API and renders tables or JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"roadworks-backend/internal/database/models"
	"roadworks-backend/internal/views"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "roadworksctl",
	Short: "Operator CLI for the roadworks backend",
	Long: `roadworksctl inspects and exports the state of a running roadworks
backend: repair requests, personnel, zone statistics and dashboard
tallies. Point it at a server with --api or the ROADWORKS_API variable.`,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("ROADWORKS")
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("api", "http://localhost:7010", "base URL of the backend")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON instead of tables")
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func registerCommands() {
	rootCmd.AddCommand(requestsCmd())
	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(zonalsCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(exportCmd())
}

func apiClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}

func getJSON(path string, target interface{}) error {
	url := viper.GetString("api") + path
	resp, err := apiClient().Get(url)
	if err != nil {
		return fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request %s: status %d: %s", url, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func requestsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "requests", Short: "Manage repair requests"}
	cmd.AddCommand(requestsListCmd())
	return cmd
}

func requestsListCmd() *cobra.Command {
	var status, zonal string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repair requests, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/requests"
			sep := "?"
			if status != "" {
				path += sep + "status=" + status
				sep = "&"
			}
			if zonal != "" {
				path += sep + "zonal=" + zonal
			}

			var requests []models.RepairRequest
			if err := getJSON(path, &requests); err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(requests)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Protocol", "Status", "Zonal", "Technician", "Created"})
			for _, req := range requests {
				tw.AppendRow(table.Row{
					req.ID,
					req.Protocol,
					req.Status.Label(),
					req.Zonal,
					req.TechnicianID,
					req.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status (open, in_progress, completed, canceled)")
	cmd.Flags().StringVar(&zonal, "zonal", "", "filter by zonal (north, south, east, west)")
	return cmd
}

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Manage personnel"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List personnel records",
		RunE: func(cmd *cobra.Command, args []string) error {
			var users []models.User
			if err := getJSON("/api/v1/users", &users); err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(users)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Role", "Zonal"})
			for _, user := range users {
				tw.AppendRow(table.Row{user.ID, user.Name, user.Role, user.Zonal})
			}
			tw.Render()
			return nil
		},
	})
	return cmd
}

func zonalsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "zonals", Short: "Inspect zones"}
	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show the management bundle for every zone",
		RunE: func(cmd *cobra.Command, args []string) error {
			var stats []views.ZoneStats
			if err := getJSON("/api/v1/zonals/stats", &stats); err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(stats)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Zone", "Name", "Manager", "Assistant", "Team", "Open", "Total"})
			for _, s := range stats {
				tw.AppendRow(table.Row{
					s.Zone, s.Name, s.ManagerName, s.AssistantName,
					s.TeamSize, s.OpenRequests, s.TotalRequests,
				})
			}
			tw.Render()
			return nil
		},
	})
	return cmd
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the per-status and per-zone request tallies",
		RunE: func(cmd *cobra.Command, args []string) error {
			var dashboard struct {
				Status views.StatusCounts `json:"status"`
				ByZone []views.ZoneCount  `json:"by_zone"`
			}
			if err := getJSON("/api/v1/dashboard", &dashboard); err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(dashboard)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Status", "Count"})
			for _, status := range models.AllStatuses() {
				tw.AppendRow(table.Row{status.Label(), dashboard.Status.ByStatus[status]})
			}
			tw.AppendFooter(table.Row{"Total", dashboard.Status.Total})
			tw.Render()

			zw := table.NewWriter()
			zw.SetOutputMirror(os.Stdout)
			zw.AppendHeader(table.Row{"Zone", "Count"})
			for _, zone := range dashboard.ByZone {
				zw.AppendRow(table.Row{zone.Name, zone.Total})
			}
			zw.Render()
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export [csv|pdf]",
		Short: "Download the request collection as CSV or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := args[0]
			if format != "csv" && format != "pdf" {
				return fmt.Errorf("unknown export format %q", format)
			}
			if out == "" {
				out = "solicitacoes." + format
			}

			url := viper.GetString("api") + "/api/v1/exports/requests." + format
			resp, err := apiClient().Get(url)
			if err != nil {
				return fmt.Errorf("request %s: %w", url, err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				return fmt.Errorf("request %s: status %d: %s", url, resp.StatusCode, string(body))
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if _, err := io.Copy(f, resp.Body); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (defaults to solicitacoes.<format>)")
	return cmd
}
