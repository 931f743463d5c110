package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"inclusion"
	"inclusion/render"
	"inclusion/server"
	"inclusion/types"

	"github.com/spf13/cobra"
)

var (
	envFiles      []string
	allowInverted bool
)

// newRootCmd 构建命令树，每次调用重新绑定标志
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "inclusion",
		Short: "Stress, strain and yield around an elliptical inclusion",
		Long: `Evaluate the closed-form plane stress solution around an elliptical
inclusion in a plate under biaxial load P1, P2 and internal pressure P0.

Parameters are read from dotenv files (--env) and the environment using
the INCLUSION_* keys; missing keys keep their default values.`,
		SilenceUsage: true,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the fields and write the outputs",
		Long: `Compute the fields and write the selected outputs into --out.

Outputs:
  plot    - sigma_e.<format> and strain.<format>
  stress  - sigma_e.<format> only
  strain  - strain.<format> only
  charts  - fields.html
  record  - fields.json
  sheet   - fields.xlsx
  report  - report.pdf`,
		RunE: run,
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate and print the parameters",
		RunE:  check,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis over HTTP",
		RunE:  serve,
	}

	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env", nil, "dotenv parameter files")
	rootCmd.PersistentFlags().BoolVar(&allowInverted, "allow-inverted", false, "accept b < a, radial samples run from a down to b")

	runCmd.Flags().String("out", "out", "output directory")
	runCmd.Flags().String("format", "png", "figure format: png, svg, pdf, eps, jpg, tif")
	runCmd.Flags().StringSlice("outputs", []string{"plot"}, "outputs to write")
	runCmd.Flags().Int("stride", render.DefaultOptions().Stride, "sampling stride for charts and sheet")
	runCmd.Flags().Bool("full", false, "include full field arrays in the JSON record")

	serveCmd.Flags().String("addr", ":8080", "listen address")

	rootCmd.AddCommand(runCmd, checkCmd, serveCmd)
	return rootCmd
}

// params 读取参数，命令行标志优先
func params(cmd *cobra.Command) (types.Params, error) {
	pl := inclusion.NewPlate()
	if err := pl.Load(envFiles...); err != nil {
		return pl.Params, err
	}
	if cmd.Flags().Changed("allow-inverted") {
		pl.AllowInverted = allowInverted
	}
	return pl.Params, nil
}

func run(cmd *cobra.Command, _ []string) error {
	p, err := params(cmd)
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	names, _ := cmd.Flags().GetStringSlice("outputs")
	opt := render.DefaultOptions()
	opt.Format, _ = cmd.Flags().GetString("format")
	opt.Stride, _ = cmd.Flags().GetInt("stride")
	opt.Full, _ = cmd.Flags().GetBool("full")

	var renderers []types.Renderer
	for _, name := range expand(names) {
		r, err := render.New(name, opt)
		if err != nil {
			return err
		}
		renderers = append(renderers, r)
	}

	res, err := inclusion.Analyze(p)
	if err != nil {
		return err
	}
	s := res.Summary
	log.Printf("max σe = %.4g MPa at r = %.4g m, θ = %.4g rad", s.MaxSeq.Value, s.MaxSeq.R, s.MaxSeq.Theta)
	log.Printf("plastic points: %d (%.2f%%)", s.PlasticCount, 100*s.PlasticFraction)
	_, err = inclusion.Render(res, out, renderers...)
	return err
}

// expand 展开 plot 为两张图
func expand(names []string) []string {
	out := make([]string, 0, len(names)+1)
	for _, name := range names {
		if name == "plot" {
			out = append(out, "stress", "strain")
			continue
		}
		out = append(out, name)
	}
	return out
}

func check(cmd *cobra.Command, _ []string) error {
	p, err := params(cmd)
	if err != nil {
		return err
	}
	text, err := p.Export()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	if err := p.Validate(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func serve(cmd *cobra.Command, _ []string) error {
	p, err := params(cmd)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	addr, _ := cmd.Flags().GetString("addr")
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return server.New(p).ListenAndServe(ctx, addr)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
