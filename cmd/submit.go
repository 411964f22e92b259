package cmd

import (
	"context"
	"fmt"

	"cropai-modelhub/internal/models"
	"cropai-modelhub/internal/services"
	"cropai-modelhub/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func submitCmd(a *app) *cobra.Command {
	var draft models.SubmissionDraft

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a model for review",
		Long: "Validate a model submission and store it in the configured document store.\n" +
			"Exits with 2 when a field is invalid and 1 when the store write fails.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Fail fast on bad input before touching the store.
			if err := services.ValidateSubmission(draft); err != nil {
				return err
			}

			ds, err := openStore(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := ds.Close(context.Background()); err != nil {
					logger.Log.Warn("Failed to close document store", zap.Error(err))
				}
			}()

			form := services.NewSubmissionForm(services.NewSubmissionPipeline(ds, services.NewLogNotifier()))
			id, err := form.SubmitDraft(ctx, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (id %s)\n", services.SubmissionSuccessMessage, id)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&draft.ModelName, "name", "", "Model name (at least 3 characters)")
	f.StringVar(&draft.CropType, "crop", "", "Crop type")
	f.StringVar(&draft.Description, "description", "", "Description (at least 20 characters)")
	f.StringVar(&draft.Accuracy, "accuracy", "", "Validation accuracy, e.g. 92 or 92%")
	f.StringVar(&draft.TrainingDataSize, "training-size", "", "Number of training images")
	f.StringVar(&draft.Email, "email", "", "Contact email")
	f.StringVar(&draft.GithubRepo, "github", "", "GitHub repository URL (optional)")
	return cmd
}
