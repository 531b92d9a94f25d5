// SPDX-License-Identifier: MIT

/*
qmap routes OpenQASM 2 circuits onto a device coupling graph.

	qmap -topology heavyhex:2x3 -variant sabre -in bell.qasm > routed.qasm
	qmap -device dev.json -variant mqsabre -in a.qasm -in b.qasm -stats

Without -in the circuit is read from standard input. With several -in files
the circuits are routed concurrently and each output is preceded by a
"// <file>" comment line. Each routed program is followed by
"// initial mapping" and "// final mapping" lines listing logical→physical
placements.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/coupling"
	"github.com/katalvlaran/qmap/sabre"
	"github.com/katalvlaran/qmap/sim"
)

type inputs []string

func (in *inputs) String() string { return strings.Join(*in, ",") }
func (in *inputs) Set(s string) error { *in = append(*in, s); return nil }

type config struct {
	in         inputs
	device     string
	topology   string
	errorRange string
	variant    string
	lookahead  int
	lambda     float64
	rounds     int
	seed       int64
	maxIter    int
	workers    int
	verify     bool
	stats      bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("qmap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&cfg.in, "in", "OpenQASM input file (repeatable; default: standard input)")
	fs.StringVar(&cfg.device, "device", "", "JSON device description")
	fs.StringVar(&cfg.topology, "topology", "", `built-in device, e.g. "line:5", "grid:3x3", "heavyhex:2x3"`)
	fs.StringVar(&cfg.errorRange, "error", "", `coupler error for -topology: "0.01" or "lo:hi"`)
	fs.StringVar(&cfg.variant, "variant", sabre.VariantSABRE, `"sabre" or "mqsabre"`)
	fs.IntVar(&cfg.lookahead, "lookahead", sabre.DefaultLookAhead, "extended-set size")
	fs.Float64Var(&cfg.lambda, "lambda", sabre.DefaultLambda, "extended-set weight")
	fs.IntVar(&cfg.rounds, "rounds", sabre.DefaultRounds, "forward/backward refinement rounds")
	fs.Int64Var(&cfg.seed, "seed", 0, "random start and calibration seed (0: identity start)")
	fs.IntVar(&cfg.maxIter, "max-iter", 0, "iteration guard per pass (0: automatic)")
	fs.IntVar(&cfg.workers, "workers", 1, "goroutines scoring candidate SWAPs")
	fs.BoolVar(&cfg.verify, "verify", false, "check each result by state-vector simulation")
	fs.BoolVar(&cfg.stats, "stats", false, "print a summary table to standard error")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("qmap: unexpected arguments %v", fs.Args())
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func routerOptions(cfg *config, log *zap.Logger) ([]sabre.Option, error) {
	if cfg.lookahead < 0 || cfg.lambda < 0 || cfg.rounds < 0 || cfg.maxIter < 0 || cfg.workers < 1 {
		return nil, errors.New("qmap: tuning flags must be non-negative and -workers ≥ 1")
	}
	opts := []sabre.Option{
		sabre.WithLogger(log),
		sabre.WithLookAhead(cfg.lookahead),
		sabre.WithLambda(cfg.lambda),
		sabre.WithRounds(cfg.rounds),
		sabre.WithMaxIterations(cfg.maxIter),
		sabre.WithWorkers(cfg.workers),
	}
	if cfg.seed != 0 {
		opts = append(opts, sabre.WithSeed(cfg.seed))
	}
	return opts, nil
}

func newRouter(cfg *config, dev *coupling.Device, log *zap.Logger) (*sabre.Router, *coupling.Graph, error) {
	opts, err := routerOptions(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	switch cfg.variant {
	case sabre.VariantSABRE:
		g, err := dev.Graph()
		if err != nil {
			return nil, nil, err
		}
		r, err := sabre.New(g, opts...)
		return r, g, err
	case sabre.VariantMQSABRE:
		if !dev.HasCalibration() {
			log.Warn("device has no calibration data; mqsabre degenerates to hop costs", zap.String("device", dev.Name))
		}
		g, err := dev.Graph(coupling.WithCalibration())
		if err != nil {
			return nil, nil, err
		}
		r, err := sabre.NewMQ(g, opts...)
		return r, g, err
	}
	return nil, nil, fmt.Errorf("qmap: unknown -variant %q", cfg.variant)
}

func readCircuits(cfg *config, stdin io.Reader) ([]string, []*circuit.Circuit, error) {
	names := cfg.in
	if len(names) == 0 {
		names = inputs{"-"}
	}
	cs := make([]*circuit.Circuit, len(names))
	for i, name := range names {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, nil, err
		}
		if cs[i], err = circuit.ParseQASM(string(data)); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return names, cs, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	dev, err := loadDevice(cfg)
	if err != nil {
		return err
	}
	r, g, err := newRouter(cfg, dev, log)
	if err != nil {
		return err
	}
	names, cs, err := readCircuits(cfg, stdin)
	if err != nil {
		return err
	}
	log.Debug("routing",
		zap.String("device", dev.Name),
		zap.Int("qubits", g.Order()),
		zap.String("variant", r.Variant()),
		zap.Int("circuits", len(cs)))

	results, err := r.RouteBatch(ctx, cs, 0)
	if err != nil {
		return err
	}

	rows := make([]statsRow, len(results))
	rng := rand.New(rand.NewSource(cfg.seed))
	for i, res := range results {
		if err := res.Check(g); err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
		rows[i] = newStatsRow(names[i], cs[i], res)
		if cfg.verify {
			if err := sim.EquivalentRouting(cs[i], res, rng); err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}
			rows[i].verified = true
		}
		if len(results) > 1 {
			fmt.Fprintf(stdout, "// %s\n", names[i])
		}
		if err := circuit.WriteQASM(stdout, res.Circuit()); err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
		// logical→physical placement before and after the program
		fmt.Fprintf(stdout, "// initial mapping %v\n// final mapping %v\n", res.Initial, res.Final)
	}
	if cfg.stats {
		fmt.Fprintln(stderr, renderStats(dev.Name, r.Variant(), rows))
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
