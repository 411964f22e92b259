package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"cropai-modelhub/internal/catalog"
	"cropai-modelhub/internal/models"
	"cropai-modelhub/internal/services"

	"github.com/spf13/cobra"
)

func modelsCmd() *cobra.Command {
	var (
		query      string
		crop       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List catalog models",
		Long:  "List the models matching a text query and crop type, in catalog order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := services.ResolveCrop(crop)
			if err != nil {
				return err
			}
			engine := services.NewFilterEngine(catalog.Records())
			engine.SetCrop(c)
			snap := engine.SetQuery(query)
			return outputModels(cmd.OutOrStdout(), snap.Visible, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive text to match")
	cmd.Flags().StringVar(&crop, "crop", string(models.CropAll), "Crop type to filter by")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func cropsCmd() *cobra.Command {
	var submission bool

	cmd := &cobra.Command{
		Use:   "crops",
		Short: "List crop types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if submission {
				for _, c := range models.SubmissionCropOptions {
					fmt.Fprintln(w, c)
				}
				return nil
			}
			for _, c := range models.CropTypes {
				fmt.Fprintln(w, c)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&submission, "submission", false, "List the submission form options instead of the filter crops")
	return cmd
}

func statsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := services.ComputeCatalogStats(catalog.Records())
			w := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Available Models\t%d\n", stats.AvailableModels)
			fmt.Fprintf(tw, "Total Downloads\t%s\n", stats.TotalDownloadsDisplay)
			fmt.Fprintf(tw, "Average Accuracy\t%s\n", stats.AverageAccuracyDisplay)
			fmt.Fprintf(tw, "Crop Types\t%s\n", stats.CropTypeCountDisplay)
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func outputModels(w io.Writer, records []models.ModelRecord, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No models match the current filters")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCROP\tACCURACY\tDOWNLOADS\tVERSION\tUPDATED")
	for _, r := range records {
		accuracy := "-"
		if r.AccuracyReported() {
			accuracy = models.FormatTenths(r.Accuracy) + "%"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Title,
			r.Crop,
			accuracy,
			models.FormatDownloads(r.Downloads),
			r.DisplayVersion(),
			r.LastUpdated.Display(),
		)
	}
	return tw.Flush()
}
