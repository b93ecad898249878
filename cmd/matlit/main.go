// Command matlit builds a matrix from a literal list and prints it.
//
//	matlit build '{{1, 2}, {3, 4}}'          # 2x2
//	matlit flat --dims 3x1 1 2 3             # fixed 3-vector
//	matlit stack --inner 1xX '{1,2}' '{3,4}' # two row vectors stacked
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/matlit/literal"
	"github.com/katalvlaran/matlit/matrix"
)

// app carries flag values and the logger across subcommands.
type app struct {
	verbose    bool
	configPath string
	dims       string
	inner      string
	format     string
	noValidate bool

	logger *zap.Logger
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the command tree. A nil logger is built from the
// --verbose flag; tests pass zap.NewNop().
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "matlit",
		Short: "Build matrices from literal lists",
		Long: `matlit builds a dense matrix from a brace-enclosed literal and prints it.

Dims are written RxC with X for a dynamic extent: X (or XxX) is a fully
dynamic matrix, Xx1 a column vector, 1xX a row vector, 3x1 a fixed 3-vector.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.configPath, "config", "", "YAML file with default dims, inner, format")
	pf.StringVar(&a.dims, "dims", matrix.MatrixX.String(), "target dims (RxC, X = dynamic)")
	pf.StringVarP(&a.format, "format", "o", formatText, "output format: text, yaml or raw")
	pf.BoolVar(&a.noValidate, "no-validate", false, "accept NaN and Inf values")

	root.AddCommand(a.buildCmd(), a.flatCmd(), a.stackCmd())

	return root
}

// setup builds the logger and merges the config file under explicit flags.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.logger == nil {
		config := zap.NewProductionConfig()
		if a.verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("dims") {
		a.dims = cfg.Dims
	}
	if !flags.Changed("format") {
		a.format = cfg.Format
	}
	if !flags.Changed("inner") {
		a.inner = cfg.Inner
	}
	if !flags.Changed("no-validate") && cfg.ValidateNaNInf != nil {
		a.noValidate = !*cfg.ValidateNaNInf
	}
	a.logger.Debug("configuration resolved",
		zap.String("config", a.configPath),
		zap.String("dims", a.dims),
		zap.String("format", a.format),
		zap.Bool("validate_nan_inf", !a.noValidate))

	return nil
}

func (a *app) options() []matrix.Option {
	if a.noValidate {
		return []matrix.Option{matrix.WithNoValidateNaNInf()}
	}

	return []matrix.Option{matrix.WithValidateNaNInf()}
}

// finish logs the outcome and prints m.
func (a *app) finish(cmd *cobra.Command, kind matrix.Kind, dims matrix.Dims, m *matrix.Dense[float64], err error) error {
	if err != nil {
		a.logger.Warn("matrix build failed",
			zap.Stringer("kind", kind),
			zap.Stringer("dims", dims),
			zap.Error(err))
		return err
	}
	a.logger.Debug("matrix built",
		zap.Stringer("kind", kind),
		zap.Stringer("dims", dims),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()))

	return render(cmd.OutOrStdout(), a.format, m)
}

func (a *app) buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [literal]",
		Short: "Build from a flat or nested literal, e.g. '{{1,2},{3,4}}'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := matrix.ParseDims(a.dims)
			if err != nil {
				return err
			}
			v, err := literal.Parse(args[0])
			if err != nil {
				return err
			}
			lit := v.Literal()
			m, err := matrix.Build(dims, lit, a.options()...)

			return a.finish(cmd, lit.Kind(), dims, m, err)
		},
	}
}

func (a *app) flatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flat [values...]",
		Short: "Build from scalars given as separate arguments",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := matrix.ParseDims(a.dims)
			if err != nil {
				return err
			}
			values := make([]float64, len(args))
			for i, s := range args {
				if values[i], err = strconv.ParseFloat(s, 64); err != nil {
					return fmt.Errorf("value %d: %w", i, err)
				}
			}
			m, err := matrix.FromFlat[float64](dims, values, a.options()...)

			return a.finish(cmd, matrix.KindFlat, dims, m, err)
		},
	}
}

func (a *app) stackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack [vector literals...]",
		Short: "Stack row or column vectors into the rows of a matrix",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := matrix.ParseDims(a.dims)
			if err != nil {
				return err
			}
			inner, err := matrix.ParseDims(a.inner)
			if err != nil {
				return err
			}
			vecs := make([]*matrix.Dense[float64], len(args))
			for i, s := range args {
				if vecs[i], err = a.vector(inner, s); err != nil {
					return fmt.Errorf("vector %d: %w", i, err)
				}
			}
			if len(vecs) > 0 {
				if mode, err := matrix.StackMode[float64](inner, vecs[0]); err == nil {
					a.logger.Debug("stack mode", zap.Stringer("mode", mode))
				}
			}
			m, err := matrix.FromVectors(dims, inner, vecs, a.options()...)

			return a.finish(cmd, matrix.KindVectors, dims, m, err)
		},
	}
	cmd.Flags().StringVar(&a.inner, "inner", matrix.VectorX.String(), "traits of every vector (RxC, X = dynamic)")

	return cmd
}

// vector parses a flat literal into a container with traits inner: a row
// vector for a fixed single row, a column otherwise.
func (a *app) vector(inner matrix.Dims, src string) (*matrix.Dense[float64], error) {
	v, err := literal.Parse(src)
	if err != nil {
		return nil, err
	}
	if v.Depth() != 1 {
		return nil, fmt.Errorf("vector literal %q must be flat: %w", src, literal.ErrMixedDepth)
	}
	if inner.Rows == 1 {
		return matrix.FromNested[float64](inner, [][]float64{v.Flat()}, a.options()...)
	}

	return matrix.FromFlat[float64](inner, v.Flat(), a.options()...)
}
