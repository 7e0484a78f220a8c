package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/baksweep/internal/ui"
	"github.com/lakshaymaurya-felt/baksweep/internal/volume"
)

var volumesCmd = &cobra.Command{
	Use:   "volumes",
	Short: "List the volumes a sweep would scan",
	Long:  "Show every writable volume with capacity figures, in scan order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVolumes()
	},
}

func runVolumes() error {
	vols, err := volume.Enumerate()
	if err != nil {
		return err
	}
	if len(vols) == 0 {
		fmt.Println("No writable volumes found.")
		return nil
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	dim := lipgloss.NewStyle().Foreground(ui.ColorTextDim)

	fmt.Println(title.Render("  " + ui.IconDiamond + " Writable volumes"))
	fmt.Println()
	for _, v := range vols {
		line := fmt.Sprintf("  %s %-28s", ui.IconChevron, v.Describe())

		u, usageErr := volume.GetUsage(v.Root)
		if usageErr != nil {
			fmt.Println(line + dim.Render("usage unavailable"))
			continue
		}
		fmt.Printf("%s %s %s\n", line,
			ui.GradientBar(u.UsedPercent, 20),
			dim.Render(fmt.Sprintf("%s free of %s",
				ui.FormatSize(int64(u.Free)), ui.FormatSize(int64(u.Total)))))
	}
	fmt.Println()
	return nil
}
