package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/vecop/internal/logger"
	"github.com/samcharles93/vecop/internal/store"
	"github.com/samcharles93/vecop/internal/vecop"
)

const evalCmdName = "eval"

var errUsage = errors.New("at least 3 arguments expected: type op size [list of member a] [list of member b]")

func evalCmd(g *globals) *cli.Command {
	return &cli.Command{
		Name:      evalCmdName,
		Usage:     "Apply op lane by lane to two vectors",
		ArgsUsage: "<float|double> <op> <width> <a_0..a_w-1> <b_0..b_w-1>",
		// Operands such as "-1.5" and the "-" operator are not flags.
		SkipFlagParsing: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runEval(ctx, g, cmd.Root().Writer, cmd.Args().Slice())
		},
	}
}

// evalResult is the --format json document.
type evalResult struct {
	Type           string       `json:"type"`
	Op             string       `json:"op"`
	Width          int          `json:"width"`
	Tier           string       `json:"tier"`
	Fallback       bool         `json:"fallback"`
	ScalarByDesign bool         `json:"scalar_by_design"`
	Result         store.Values `json:"result"`
}

func runEval(ctx context.Context, g *globals, w io.Writer, args []string) error {
	if len(args) < 3 {
		return errUsage
	}
	typ, err := vecop.ParseElementType(args[0])
	if err != nil {
		return err
	}
	op := vecop.ParseOperator(args[1])
	width := vecop.ParseWidth(args[2])

	// Reject the request before looking at operands so that, e.g., a double
	// of width 16 reports the width rather than missing operands.
	if _, err := g.dispatcher.Check(typ, op, width); err != nil {
		return err
	}
	n := int(width)
	operands := args[3:]
	if len(operands) < 2*n {
		return fmt.Errorf("%w: width %d needs %d operands, got %d", errUsage, n, 2*n, len(operands))
	}

	var (
		result []float64
		sel    vecop.Selection
	)
	switch typ {
	case vecop.Float32:
		a, b := parseOperands[float32](operands[:n], 32), parseOperands[float32](operands[n:2*n], 32)
		dst := make([]float32, n)
		if sel, err = g.dispatcher.ApplyFloat32(op, width, dst, a, b); err != nil {
			return err
		}
		result = make([]float64, n)
		for i, v := range dst {
			result[i] = float64(v)
		}
	default:
		a, b := parseOperands[float64](operands[:n], 64), parseOperands[float64](operands[n:2*n], 64)
		result = make([]float64, n)
		if sel, err = g.dispatcher.ApplyFloat64(op, width, result, a, b); err != nil {
			return err
		}
	}
	logger.FromContext(ctx).Debug("evaluated",
		"type", typ, "op", op, "width", n,
		"tier", sel.Tier, "fallback", sel.Fallback, "scalar_by_design", sel.ScalarByDesign())

	if g.outputFormat == "json" {
		return json.NewEncoder(w).Encode(evalResult{
			Type:           typ.String(),
			Op:             op.String(),
			Width:          n,
			Tier:           sel.Tier.String(),
			Fallback:       sel.Fallback,
			ScalarByDesign: sel.ScalarByDesign(),
			Result:         result,
		})
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %c %d\n", typ, byte(op), n)
	for _, v := range result {
		sb.WriteString(formatLane(v))
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(w, sb.String())
	return err
}

func parseOperands[T float32 | float64](tokens []string, bitSize int) []T {
	out := make([]T, len(tokens))
	for i, tok := range tokens {
		out[i] = T(parseLeadingFloat(tok, bitSize))
	}
	return out
}

// parseLeadingFloat converts the longest prefix of s that is a valid number,
// after leading whitespace, rounding directly to bitSize. Text with no
// numeric prefix is 0. Out of range values saturate to ±Inf.
func parseLeadingFloat(s string, bitSize int) float64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	for end := len(s); end > 0; end-- {
		v, err := strconv.ParseFloat(s[:end], bitSize)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return v
		}
	}
	return 0
}

// formatLane prints v with six decimals, spelling non-finite values the way
// C's printf does.
func formatLane(v float64) string {
	switch {
	case math.IsNaN(v):
		if math.Signbit(v) {
			return "-nan"
		}
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
