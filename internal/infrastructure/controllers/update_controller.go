package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/package-assistant/internal/domain/commands"
	"github.com/rios0rios0/package-assistant/internal/domain/entities"
)

// UpdateController handles the "update" subcommand.
type UpdateController struct {
	command commands.Update
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update) *UpdateController {
	return &UpdateController{command: command}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update",
		Short: "Apply the available package updates",
		Long: `Run the configured update command with elevated privileges and remember
when it happened, so the next changelog run only shows newer entries.`,
	}
}

// AddFlags adds the update-specific flags to the given Cobra command.
func (it *UpdateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("noconfirm", false, "Run the non-interactive update command")
}

// Execute applies the updates.
func (it *UpdateController) Execute(cmd *cobra.Command, _ []string) error {
	noconfirm, _ := cmd.Flags().GetBool("noconfirm")

	if err := it.command.Execute(cmd.Context(), commands.UpdateOptions{Interactive: !noconfirm}); err != nil {
		return err
	}

	logger.Info("System updated")
	return nil
}
