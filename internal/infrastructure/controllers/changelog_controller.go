package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/package-assistant/internal/domain/commands"
	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// ChangelogController handles the "changelog" subcommand.
type ChangelogController struct {
	command commands.Changelog
}

// NewChangelogController creates a new ChangelogController.
func NewChangelogController(command commands.Changelog) *ChangelogController {
	return &ChangelogController{command: command}
}

// GetBind returns the Cobra command metadata for the changelog controller.
func (it *ChangelogController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "changelog",
		Short: "Show unseen changelogs of downloaded packages",
		Long: `Read every package in the configured cache directory and print the
changelog entries recorded after the last update.`,
	}
}

// AddFlags adds the changelog-specific flags to the given Cobra command.
func (it *ChangelogController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "Only show packages whose name starts with this prefix")
}

// Execute prints the changelogs.
func (it *ChangelogController) Execute(cmd *cobra.Command, _ []string) error {
	query, _ := cmd.Flags().GetString("query")

	changelogs, err := it.command.Execute(cmd.Context(), commands.ChangelogOptions{Query: query})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), changelogs)
	return err
}
