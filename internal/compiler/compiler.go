// Package compiler wires the full pipeline: parse, bind, typecheck,
// assign frame offsets, generate code. Each stage runs to completion
// before the next begins and the first diagnostic aborts the run, per
// the single-threaded, no-recovery error model the passes share.
package compiler

import (
	"go.uber.org/zap"

	"github.com/tauclang/tauc/internal/binder"
	"github.com/tauclang/tauc/internal/codegen"
	"github.com/tauclang/tauc/internal/diag"
	"github.com/tauclang/tauc/internal/offsets"
	"github.com/tauclang/tauc/internal/parser"
	"github.com/tauclang/tauc/internal/typecheck"
	"github.com/tauclang/tauc/internal/vm"
)

// Module is a successfully compiled program: the flat instruction
// listing ready to hand to a vm.VM.
type Module struct {
	Insns []vm.Insn
}

// Compile runs source (from filename, used only for diagnostic spans)
// through the full pipeline. A nil logger is replaced with a no-op one.
func Compile(source, filename string, logger *zap.Logger) (*Module, *diag.Error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("file", filename))

	logger.Debug("parsing")
	p, err := parser.New(source, filename)
	if err != nil {
		logger.Warn("lex error", zap.Error(err))
		return nil, err
	}
	prog, err := p.Parse()
	if err != nil {
		logger.Warn("parse error", zap.Error(err))
		return nil, err
	}

	logger.Debug("binding names")
	if err := binder.Bind(prog); err != nil {
		logger.Warn("name error", zap.Error(err))
		return nil, err
	}

	logger.Debug("type checking")
	if err := typecheck.Check(prog); err != nil {
		logger.Warn("type error", zap.Error(err))
		return nil, err
	}

	logger.Debug("assigning frame offsets")
	offsets.Assign(prog)

	logger.Debug("generating code")
	insns, err := codegen.Generate(prog)
	if err != nil {
		logger.Warn("codegen error", zap.Error(err))
		return nil, err
	}

	logger.Info("compilation succeeded", zap.Int("instructions", len(insns)))
	return &Module{Insns: insns}, nil
}
