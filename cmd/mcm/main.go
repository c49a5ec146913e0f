package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/on-the-ground/tableize_go/effects"
	"github.com/on-the-ground/tableize_go/effects/binding"
	"github.com/on-the-ground/tableize_go/effects/configkeys"
	"github.com/on-the-ground/tableize_go/effects/log"
	"github.com/on-the-ground/tableize_go/mcm"
	"github.com/on-the-ground/tableize_go/pure"
)

const (
	storeTrie  = "trie"
	storeRadix = "radix"
)

// exitError carries the process exit code out of run.
type exitError struct {
	code    int
	message string
}

func (e *exitError) Error() string {
	return e.message
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			if exitErr.message != "" {
				fmt.Fprintln(os.Stderr, exitErr.message)
			}
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	length   int
	seed     uint64
	maxDim   uint64
	store    string
	parallel int
	example  bool
	verbose  bool
	logLevel zapcore.Level
}

func parse(args []string, stderr io.Writer) (*options, error) {
	flagSet := flag.NewFlagSet("mcm", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprintln(stderr, "Usage: mcm [options] sequence_length")
		flagSet.PrintDefaults()
	}

	opts := &options{}
	flagSet.Uint64Var(&opts.seed, "seed", mcm.DefaultSeed, "Seed of the problem generator.")
	flagSet.Uint64Var(&opts.maxDim, "max-dim", mcm.DefaultMaxDimension, "Largest generated matrix dimension.")
	flagSet.StringVar(&opts.store, "store", storeTrie, "Memo table backing store: 'trie' or 'radix'.")
	flagSet.IntVar(&opts.parallel, "parallel", 0, "Solve top-level splits on N goroutines. 0 solves sequentially.")
	flagSet.BoolVar(&opts.example, "example", false, "Solve the fixed three-matrix example instead of a generated problem.")
	flagSet.BoolVar(&opts.verbose, "verbose", false, "Print the problem before solving it.")
	logLevel := flagSet.String("log-level", "warn", "Log level: 'debug', 'info', 'warn' or 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil
		}
		// flag already reported the problem
		return nil, &exitError{code: 1}
	}

	level, err := zapcore.ParseLevel(*logLevel)
	if err != nil {
		return nil, &exitError{code: 1, message: fmt.Sprintf("mcm: %v", err)}
	}
	opts.logLevel = level

	if opts.store != storeTrie && opts.store != storeRadix {
		return nil, &exitError{code: 1, message: fmt.Sprintf("mcm: unknown store %q", opts.store)}
	}

	wantArgs := 1
	if opts.example {
		wantArgs = 0
	}
	if flagSet.NArg() != wantArgs {
		return nil, &exitError{code: 1, message: "mcm: sequence_length"}
	}
	if opts.example {
		return opts, nil
	}

	length, err := strconv.Atoi(flagSet.Arg(0))
	if err != nil {
		return nil, &exitError{code: 1, message: fmt.Sprintf("mcm: invalid sequence_length %q", flagSet.Arg(0))}
	}
	if length <= 0 {
		return nil, &exitError{code: 1, message: fmt.Sprintf("mcm: %v: %d", mcm.ErrInvalidLength, length)}
	}
	opts.length = length
	return opts, nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}

func run(stdout, stderr io.Writer, args []string) error {
	opts, err := parse(args, stderr)
	if err != nil || opts == nil {
		return err
	}

	ctx, endBinding := binding.WithEffectHandler(
		context.Background(),
		effects.NewEffectScopeConfig(1, 1),
		map[string]any{
			configkeys.ConfigMCMSeed:                    opts.seed,
			configkeys.ConfigMCMMaxDim:                  opts.maxDim,
			configkeys.ConfigMCMStore:                   opts.store,
			configkeys.ConfigMCMParallel:                opts.parallel,
			configkeys.ConfigEffectLogHandlerBufferSize: 16,
		},
	)
	defer endBinding()

	bufferSize := binding.MustGetFromBindingEffect[int](ctx, configkeys.ConfigEffectLogHandlerBufferSize)
	ctx, endLog := log.WithZapEffectHandler(ctx, bufferSize, newLogger(stderr, opts.logLevel))
	defer endLog()

	seq, err := problem(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Now running a problem with %d matrices...\n", seq.Len())
	if opts.verbose {
		fmt.Fprintln(stdout, seq)
	}

	cost, err := solve(ctx, seq)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "The cost is %d\n", cost)
	return nil
}

func problem(ctx context.Context, opts *options) (mcm.Sequence, error) {
	if opts.example {
		log.LogEff(ctx, log.LogInfo, "using example problem", nil)
		return mcm.ExampleProblem(), nil
	}

	seed, err := binding.GetFromBindingEffect[uint64](ctx, configkeys.ConfigMCMSeed)
	if err != nil {
		return mcm.Sequence{}, err
	}
	maxDim, err := binding.GetFromBindingEffect[uint64](ctx, configkeys.ConfigMCMMaxDim)
	if err != nil {
		return mcm.Sequence{}, err
	}

	log.LogEff(ctx, log.LogInfo, "generating problem", map[string]any{
		"length": opts.length,
		"seed":   seed,
		"maxDim": maxDim,
	})
	return mcm.GenerateProblem(opts.length, mcm.WithSeed(seed), mcm.WithMaxDimension(maxDim))
}

func solve(ctx context.Context, seq mcm.Sequence) (mcm.Cost, error) {
	parallel, err := binding.GetFromBindingEffect[int](ctx, configkeys.ConfigMCMParallel)
	if err != nil {
		return 0, err
	}

	if parallel > 0 {
		cost, span, err := effects.Timed(func() (mcm.Cost, error) {
			return mcm.SolveParallel(ctx, seq, parallel)
		})
		logSolved(ctx, seq, span, err, map[string]any{"workers": parallel})
		return cost, err
	}

	storeName, err := binding.GetFromBindingEffect[string](ctx, configkeys.ConfigMCMStore)
	if err != nil {
		return 0, err
	}
	var store pure.Store[mcm.Cost]
	switch storeName {
	case storeRadix:
		store = pure.NewRadixStore[mcm.Cost]()
	default:
		store = pure.NewTrie[mcm.Cost]()
	}

	solver := mcm.NewSolver(mcm.WithTable(pure.NewTable(store)))
	cost, span, err := effects.Timed(func() (mcm.Cost, error) {
		return solver.Solve(seq)
	})
	stats := solver.Stats()
	logSolved(ctx, seq, span, err, map[string]any{
		"store":   storeName,
		"hits":    stats.Hits,
		"misses":  stats.Misses,
		"entries": stats.Entries,
	})
	return cost, err
}

func logSolved(ctx context.Context, seq mcm.Sequence, span effects.TimeSpan, err error, fields map[string]any) {
	fields["length"] = seq.Len()
	fields["elapsed"] = span.Duration().String()
	if err != nil {
		fields["error"] = err.Error()
		log.LogEff(ctx, log.LogError, "solve failed", fields)
		return
	}
	log.LogEff(ctx, log.LogInfo, "solved", fields)
}
