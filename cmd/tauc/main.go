// Command tauc is the Tau compiler driver: build a listing, run it on
// the bundled VM, or dump the token stream for debugging.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/tauclang/tauc/internal/cache"
	"github.com/tauclang/tauc/internal/compiler"
	"github.com/tauclang/tauc/internal/config"
	"github.com/tauclang/tauc/internal/diag"
	"github.com/tauclang/tauc/internal/lexer"
	"github.com/tauclang/tauc/internal/metrics"
	"github.com/tauclang/tauc/internal/token"
	"github.com/tauclang/tauc/internal/vm"
)

var configFlag = cli.StringFlag{
	Name:  "config",
	Value: "tauc.yaml",
	Usage: "path to the driver's YAML config file",
}

func main() {
	app := cli.NewApp()
	app.Name = "tauc"
	app.Usage = "compile and run Tau programs"
	app.Flags = []cli.Flag{configFlag}
	app.Commands = []cli.Command{
		buildCommand,
		runCommand,
		tokensCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var buildCommand = cli.Command{
	Name:      "build",
	Usage:     "compile a source file and print its instruction listing",
	ArgsUsage: "<file.tau>",
	Action:    runBuild,
}

var runCommand = cli.Command{
	Name:      "run",
	Usage:     "compile a source file and execute it",
	ArgsUsage: "<file.tau>",
	Action:    runRun,
}

var tokensCommand = cli.Command{
	Name:      "tokens",
	Usage:     "scan a source file and print its token stream",
	ArgsUsage: "<file.tau>",
	Action:    runTokens,
}

func runBuild(ctx *cli.Context) error {
	mod, err := compileFile(ctx)
	if err != nil {
		return err
	}
	for _, insn := range mod.Insns {
		fmt.Fprintln(ctx.App.Writer, insn.String())
	}
	return nil
}

func runRun(ctx *cli.Context) error {
	mod, err := compileFile(ctx)
	if err != nil {
		return err
	}
	machine := vm.New(mod.Insns, ctx.App.Writer)
	if err := machine.Run(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func runTokens(ctx *cli.Context) error {
	path, err := sourcePath(ctx)
	if err != nil {
		return err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	lex := lexer.New(string(source), path)
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		fmt.Fprintln(ctx.App.Writer, tok.String())
		if tok.Is(token.EOF) {
			return nil
		}
	}
}

// compileFile reads and compiles the file named by ctx's sole argument,
// consulting the compile cache when the driver's config enables it.
// Diagnostics are printed colorized when stderr is a terminal.
func compileFile(ctx *cli.Context) (*compiler.Module, error) {
	path, err := sourcePath(ctx)
	if err != nil {
		return nil, err
	}
	source, rerr := os.ReadFile(path)
	if rerr != nil {
		return nil, cli.NewExitError(rerr.Error(), 1)
	}

	cfg, cerr := config.Load(ctx.GlobalString("config"))
	if cerr != nil {
		return nil, cli.NewExitError(cerr.Error(), 1)
	}

	buildID := uuid.New().String()
	logger := newLogger(cfg.LogLevel).With(zap.String("build_id", buildID))
	defer logger.Sync() //nolint:errcheck

	if cfg.CacheEnabled {
		if mod, hit := tryCache(cfg.CachePath, string(source), logger); hit {
			return mod, nil
		}
	}

	mod, diagErr := compiler.Compile(string(source), path, logger)
	metrics.RecordCompile(diagErr)
	if diagErr != nil {
		return nil, cli.NewExitError(formatDiag(diagErr), 1)
	}

	if cfg.CacheEnabled {
		storeCache(cfg.CachePath, string(source), mod, logger)
	}
	return mod, nil
}

func tryCache(path, source string, logger *zap.Logger) (*compiler.Module, bool) {
	c, err := cache.Open(path)
	if err != nil {
		logger.Warn("cache unavailable", zap.Error(err))
		return nil, false
	}
	defer c.Close()

	insns, ok, err := c.Get(cache.Hash(source))
	if err != nil || !ok {
		return nil, false
	}
	logger.Info("cache hit")
	return &compiler.Module{Insns: insns}, true
}

func storeCache(path, source string, mod *compiler.Module, logger *zap.Logger) {
	c, err := cache.Open(path)
	if err != nil {
		logger.Warn("cache unavailable", zap.Error(err))
		return
	}
	defer c.Close()
	if err := c.Put(cache.Hash(source), mod.Insns); err != nil {
		logger.Warn("cache write failed", zap.Error(err))
	}
}

func sourcePath(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", cli.NewExitError("expected exactly one source file argument", 1)
	}
	return ctx.Args().Get(0), nil
}

func formatDiag(err *diag.Error) string {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return fmt.Sprintf("\x1b[31m%s\x1b[0m", err.Error())
	}
	return err.Error()
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if l, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = l
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
