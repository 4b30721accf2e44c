// lvnum runs the interpolation and root-finding routines from the command line.
//
// Usage:
//
//	lvnum [global flags] check
//	lvnum [global flags] interp -points points.yml [-kind poly] [-out poly.png]
//	lvnum [global flags] intersect [-g1 0,2] [-g2 0,0,1] [-lower -5] [-upper 5] [-n 20] [-out intersections.png]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvnum/interp"
	"github.com/katalvlaran/lvnum/intersect"
	"github.com/katalvlaran/lvnum/newton"
	"github.com/katalvlaran/lvnum/plot"
	"go.uber.org/zap"
)

const usage = `lvnum - polynomial interpolation and Newton root finding

Usage:
  lvnum [global flags] <command> [flags]

Commands:
  check       run the built-in self-checks
  interp      interpolate a YAML dataset and plot it
  intersect   find where two polynomial curves meet and plot them

Global flags:
  -env file        env file to load (default .env)
  -debug           trace Newton iterates
  -log-level lvl   debug|info|warn|error
  -out-dir dir     directory for image files`

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvnum", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	envFile := fs.String("env", ".env", "env file to load")
	debug := fs.Bool("debug", false, "trace Newton iterates")
	logLevel := fs.String("log-level", "", "log level")
	outDir := fs.String("out-dir", "", "directory for image files")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}

	cfg, err := LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return exitFail
	}
	if *debug {
		cfg.Debug = true
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "logger:", err)
		return exitFail
	}
	defer func() { _ = log.Sync() }()

	opts := newton.DefaultOptions()
	opts.Debug = cfg.Debug
	opts.Logger = log

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "check":
		return runCheck(stdout, log, &opts)
	case "interp":
		return runInterp(rest, cfg, stdout, stderr, log)
	case "intersect":
		return runIntersect(rest, cfg, stdout, stderr, log, &opts)
	case "help":
		fmt.Fprintln(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s\n", cmd, usage)
		return exitUsage
	}
}

func runCheck(stdout io.Writer, log *zap.Logger, opts *newton.Options) int {
	failed := 0
	for _, c := range selfChecks() {
		if err := c.run(opts); err != nil {
			failed++
			fmt.Fprintf(stdout, "FAIL %s: %v\n", c.name, err)
			log.Error("self-check failed", zap.String("check", c.name), zap.Error(err))
			continue
		}
		fmt.Fprintf(stdout, "ok   %s\n", c.name)
	}
	if failed > 0 {
		fmt.Fprintf(stdout, "%d check(s) failed\n", failed)
		return exitFail
	}
	fmt.Fprintln(stdout, "all checks passed")
	return exitOK
}

// fitters maps the -kind flag to an interpolation routine.
var fitters = map[string]func(xi, yi []float64) ([]float64, error){
	"quad":  interp.QuadInterp,
	"cubic": interp.CubicInterp,
	"poly":  interp.PolyInterp,
}

// defaultImage names the output file of each -kind when -out is not given.
var defaultImage = map[string]string{
	"quad":  "quadratic.png",
	"cubic": "cubic.png",
	"poly":  "poly.png",
}

func runInterp(args []string, cfg Config, stdout, stderr io.Writer, log *zap.Logger) int {
	fs := flag.NewFlagSet("interp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	points := fs.String("points", "", "YAML dataset file")
	kind := fs.String("kind", "poly", "quad|cubic|poly")
	out := fs.String("out", "", "output image file")
	if err := fs.Parse(args); err != nil || *points == "" {
		fmt.Fprintln(stderr, "usage: lvnum interp -points file.yml [-kind quad|cubic|poly] [-out file.png]")
		return exitUsage
	}
	fit, ok := fitters[*kind]
	if !ok {
		fmt.Fprintf(stderr, "unknown -kind %q\n", *kind)
		return exitUsage
	}

	ds, err := loadDataset(*points)
	if err != nil {
		return fail(stderr, log, "load dataset", err)
	}
	xi, yi := ds.XY()
	c, err := fit(xi, yi)
	if err != nil {
		return fail(stderr, log, "interpolate", err)
	}
	fmt.Fprintf(stdout, "c = %v\n", c)

	fig, err := plot.Interpolation(xi, yi, c)
	if err != nil {
		return fail(stderr, log, "plot", err)
	}
	path := outputPath(cfg, *out, defaultImage[*kind])
	if err = fig.Save(path); err != nil {
		return fail(stderr, log, "save", err)
	}
	log.Info("figure written", zap.String("path", path), zap.Int("points", len(xi)))
	return exitOK
}

func runIntersect(args []string, cfg Config, stdout, stderr io.Writer, log *zap.Logger, opts *newton.Options) int {
	fs := flag.NewFlagSet("intersect", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	g1s := fs.String("g1", "0,2", "coefficients of the first curve, lowest degree first")
	g2s := fs.String("g2", "0,0,1", "coefficients of the second curve, lowest degree first")
	lower := fs.Float64("lower", -5, "sweep lower bound")
	upper := fs.Float64("upper", 5, "sweep upper bound (excluded)")
	n := fs.Int("n", 20, "number of starting guesses")
	out := fs.String("out", "", "output image file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, "usage: lvnum intersect [-g1 c0,c1,..] [-g2 c0,c1,..] [-lower x] [-upper x] [-n N] [-out file.png]")
		return exitUsage
	}

	c1, err := parseCoeffs(*g1s)
	if err != nil {
		return fail(stderr, log, "parse -g1", err)
	}
	c2, err := parseCoeffs(*g2s)
	if err != nil {
		return fail(stderr, log, "parse -g2", err)
	}
	g1, g2 := interp.Polynomial(c1).ValueDeriv, interp.Polynomial(c2).ValueDeriv

	attempts, err := intersect.Sweep(g1, g2, *lower, *upper, *n, opts)
	if err != nil {
		return fail(stderr, log, "sweep", err)
	}
	for _, a := range attempts {
		if a.Status != intersect.Found {
			log.Debug("guess discarded", zap.Float64("guess", a.Guess), zap.Stringer("status", a.Status))
		}
	}
	roots := intersect.Roots(attempts)
	fmt.Fprintf(stdout, "intersections = %v\n", roots)

	fig, err := plot.Intersections(g1, g2, *lower, *upper, roots)
	if err != nil {
		return fail(stderr, log, "plot", err)
	}
	path := outputPath(cfg, *out, "intersections.png")
	if err = fig.Save(path); err != nil {
		return fail(stderr, log, "save", err)
	}
	log.Info("figure written", zap.String("path", path), zap.Int("roots", len(roots)))
	return exitOK
}

// outputPath resolves a bare file name against the configured output directory.
func outputPath(cfg Config, flagValue, fallback string) string {
	name := flagValue
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(cfg.OutDir, name)
}

func fail(stderr io.Writer, log *zap.Logger, what string, err error) int {
	fmt.Fprintf(stderr, "%s: %v\n", what, err)
	log.Debug(what+" failed", zap.Error(err))
	return exitFail
}
