// Package display holds presentation helpers shared by the CLI: the banner
// and human-readable size formatting. Styling goes through lipgloss, which
// follows the color profile set during logger construction.
package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))

const banner = ` _                 _ _                  _
| | ___   ___ __ _| | |_ _ __ __ _  ___| | __
| |/ _ \ / __/ _` + "`" + ` | | __| '__/ _` + "`" + ` |/ __| |/ /
| | (_) | (_| (_| | | |_| | | (_| | (__|   <
|_|\___/ \___\__,_|_|\__|_|  \__,_|\___|_|\_\`

// PrintBanner prints the ASCII art banner to stdout.
func PrintBanner() {
	fmt.Fprintln(os.Stdout, bannerStyle.Render(banner))
}
