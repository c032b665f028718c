package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/vecop/internal/hwcaps"
	"github.com/samcharles93/vecop/internal/vecop"
)

type tiersReport struct {
	Host     hwcaps.Features      `json:"host"`
	NoSIMD   bool                 `json:"no_simd"`
	Compiled []string             `json:"compiled"`
	Routes   []vecop.RouteSummary `json:"routes"`
}

func tiersCmd(g *globals) *cli.Command {
	var asJSON bool
	return &cli.Command{
		Name:  "tiers",
		Usage: "Show the dispatch table for this binary and host",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the table as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			report := buildTiersReport(g.dispatcher)
			w := cmd.Root().Writer
			if asJSON || g.outputFormat == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return writeTiersTable(w, report)
		},
	}
}

func buildTiersReport(d *vecop.Dispatcher) tiersReport {
	report := tiersReport{
		Host:     hwcaps.Detect(),
		NoSIMD:   hwcaps.NoSIMDEnv(),
		Compiled: []string{},
	}
	for _, t := range vecop.CompiledTiers() {
		report.Compiled = append(report.Compiled, t.String())
	}
	for _, r := range d.Routes() {
		report.Routes = append(report.Routes, r.Summary())
	}
	return report
}

func writeTiersTable(w io.Writer, report tiersReport) error {
	h := report.Host
	if _, err := fmt.Fprintf(w, "host: %s sse2=%t avx=%t avx2=%t avx512f=%t\n",
		h.Arch, h.HasSSE2, h.HasAVX, h.HasAVX2, h.HasAVX512F); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "compiled tiers: %v\n\n", report.Compiled); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "TYPE\tWIDTH\tTIER\tBITS\tPOLICY\tCOMPILED\tSUPPORTED\tDISABLED\tRESOLUTION"); err != nil {
		return err
	}
	for _, r := range report.Routes {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\t%t\t%t\t%t\t%s\n",
			r.Type, r.Width, r.Tier, r.Bits, r.Policy, r.Compiled, r.Supported, r.Disabled, r.Resolution); err != nil {
			return err
		}
	}
	return tw.Flush()
}
