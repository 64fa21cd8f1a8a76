package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/korylprince/mians-chat/chatui"
	"github.com/korylprince/mians-chat/relay"
)

var (
	server string
	brand  string
)

var rootCmd = &cobra.Command{
	Use:   "chatclient",
	Short: "Terminal chat for a Mians relay server",
	Long: `chatclient connects to a relay server and runs an interactive chat.

Enter sends the current message, Alt+Enter inserts a newline and Esc quits.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := chatui.NewClient(server)
		p := tea.NewProgram(chatui.NewModel(client, brand), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("chat failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&server, "server", "s", "http://localhost:8080", "Server URL (http/https)")
	rootCmd.Flags().StringVar(&brand, "brand", relay.DefaultAltBrand, "Brand shown in the header")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
