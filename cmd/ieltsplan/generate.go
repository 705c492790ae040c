package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sparkskytech/ieltsplan/internal/models"
	"github.com/sparkskytech/ieltsplan/internal/planner"
	"github.com/sparkskytech/ieltsplan/internal/services"
)

var outputFormats = []string{"text", "json", "yaml", "pdf"}

func newGenerateCmd() *cobra.Command {
	var raw planner.RawRequest
	var format, out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a study plan",
		Example: "  ieltsplan generate --current 5.5 --target 7 --hours 2 --type academic --weeks 8\n" +
			"  ieltsplan generate --current 6 --target 7.5 --hours 3 --weeks 12 --format pdf --out plan.pdf",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if !validFormat(format) {
				return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(outputFormats, ", "))
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			svc := services.NewPlanService(planner.NewGenerator(), nil, 0)
			plan, err := svc.GeneratePlan(ctx, raw)
			if err != nil {
				return err
			}

			data, err := encodePlan(ctx, svc, plan, format)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s plan to %s\n", format, out)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&raw.CurrentScore, "current", "", "Current band score, e.g. 5.5")
	flags.StringVar(&raw.TargetScore, "target", "", "Target band score, e.g. 7")
	flags.StringVar(&raw.DailyHours, "hours", "", "Study hours per day")
	flags.StringVar(&raw.TestType, "type", "academic", "Test type: academic or general")
	flags.StringVar(&raw.TotalWeeks, "weeks", "", "Number of weeks to prepare")
	flags.StringVarP(&format, "format", "f", "text", "Output format: "+strings.Join(outputFormats, ", "))
	flags.StringVarP(&out, "out", "o", "", "Write to FILE instead of stdout")
	return cmd
}

func validFormat(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}

func encodePlan(ctx context.Context, svc services.PlanService, plan *models.StudyPlan, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		var buf bytes.Buffer
		if err := writeYAML(&buf, plan); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "pdf":
		return svc.ExportPDF(ctx, plan)
	default:
		text, err := svc.ExportText(ctx, plan)
		return []byte(text), err
	}
}

func writeYAML(w io.Writer, plan *models.StudyPlan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return err
	}
	return enc.Close()
}
