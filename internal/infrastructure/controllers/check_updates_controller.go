package controllers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/package-assistant/internal/domain/commands"
	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"

	noUpdatesMessage = "no updates available"
)

// updateView is how an update item is serialized for machine-readable output.
type updateView struct {
	Name       string            `json:"name"                  yaml:"name"`
	OldVersion string            `json:"old_version,omitempty" yaml:"old_version,omitempty"`
	NewVersion string            `json:"new_version,omitempty" yaml:"new_version,omitempty"`
	Diff       entities.DiffKind `json:"diff"                  yaml:"diff"`
}

// CheckUpdatesController handles the "check-updates" subcommand.
type CheckUpdatesController struct {
	command commands.CheckUpdates
}

// NewCheckUpdatesController creates a new CheckUpdatesController.
func NewCheckUpdatesController(command commands.CheckUpdates) *CheckUpdatesController {
	return &CheckUpdatesController{command: command}
}

// GetBind returns the Cobra command metadata for the check-updates controller.
func (it *CheckUpdatesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check-updates",
		Short: "List available package updates",
		Long: `Ask the configured package manager for available updates and print them.
With --download the updates are fetched into the cache, so their changelogs
can be read before updating.`,
	}
}

// AddFlags adds the check-updates-specific flags to the given Cobra command.
func (it *CheckUpdatesController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("download", "d", false, "Download the updates when there are any")
	cmd.Flags().StringP("output", "o", outputText,
		fmt.Sprintf("Output format (%s, %s, %s)", outputText, outputJSON, outputYAML),
	)
}

// Execute checks for updates and prints them in the requested format.
func (it *CheckUpdatesController) Execute(cmd *cobra.Command, _ []string) error {
	download, _ := cmd.Flags().GetBool("download")
	output, _ := cmd.Flags().GetString("output")

	format := strings.ToLower(output)
	if !lo.Contains([]string{outputText, outputJSON, outputYAML}, format) {
		return fmt.Errorf("unknown output format %q", output)
	}

	items, err := it.command.Execute(cmd.Context(), commands.CheckUpdatesOptions{Download: download})
	if items != nil {
		rendered, renderErr := renderUpdates(items, format)
		if renderErr != nil {
			return renderErr
		}
		if _, writeErr := fmt.Fprintln(cmd.OutOrStdout(), rendered); writeErr != nil {
			return writeErr
		}
	}
	return err
}

func renderUpdates(items []entities.PackageUpdateItem, format string) (string, error) {
	switch format {
	case outputJSON:
		raw, err := json.MarshalIndent(toViews(items), "", "  ")
		return string(raw), err
	case outputYAML:
		raw, err := yaml.Marshal(toViews(items))
		return strings.TrimSuffix(string(raw), "\n"), err
	default:
		if len(items) == 0 {
			return noUpdatesMessage, nil
		}
		lines := lo.Map(items, func(item entities.PackageUpdateItem, _ int) string {
			if diff := item.Diff(); diff != entities.DiffUnknown {
				return fmt.Sprintf("%s [%s]", item, diff)
			}
			return item.String()
		})
		return strings.Join(lines, "\n"), nil
	}
}

func toViews(items []entities.PackageUpdateItem) []updateView {
	return lo.Map(items, func(item entities.PackageUpdateItem, _ int) updateView {
		return updateView{
			Name:       item.Name,
			OldVersion: item.OldVersion,
			NewVersion: item.NewVersion,
			Diff:       item.Diff(),
		}
	})
}
