// Package pipeline threads one source file through scan+parse and
// typecheck stages, accumulating diagnostics the way each stage
// leaves them for the next rather than stopping at the first one.
package pipeline

import (
	"github.com/dieterlang/dieter/internal/ast"
	"github.com/dieterlang/dieter/internal/checker"
	"github.com/dieterlang/dieter/internal/config"
	"github.com/dieterlang/dieter/internal/diagnostics"
	"github.com/dieterlang/dieter/internal/parser"
	"github.com/dieterlang/dieter/internal/symbols"
	"github.com/dieterlang/dieter/internal/trace"
)

// Context is the value threaded through every stage.
type Context struct {
	File        string
	Source      string
	Project     *config.Project // the directory's dieter.yaml, if any
	Program     *ast.Program
	RootContext *symbols.Context
	Diagnostics []*diagnostics.Diagnostic
	Err         error // a TypingError or InternalError that ended the run
}

// Stage processes a Context and returns the (possibly same) Context
// for the next stage.
type Stage interface {
	Process(*Context) *Context
}

// Pipeline runs a fixed sequence of stages over one Context.
type Pipeline struct {
	stages []Stage
}

// New builds a Pipeline from stages, in order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes every stage in order. It continues past a stage that
// only added diagnostics, but stops once ctx.Err is set.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, s := range p.stages {
		ctx = s.Process(ctx)
		if ctx.Err != nil {
			break
		}
	}
	return ctx
}

// ParseStage scans and parses the source, collecting any scan/parse
// diagnostics without treating them as fatal to the pipeline.
type ParseStage struct{}

func (ParseStage) Process(ctx *Context) *Context {
	prog, diags := parser.Parse(ctx.File, ctx.Source)
	ctx.Program = prog
	ctx.Diagnostics = append(ctx.Diagnostics, diags...)
	return ctx
}

// CheckStage typechecks the parsed program in a fresh global context,
// seeded from ctx.Project's qualifier declarations and strict flag when
// one was loaded. It is skipped when the parse stage already reported
// diagnostics, since a malformed AST has nothing meaningful to
// typecheck.
type CheckStage struct {
	Sink trace.Sink
}

func (s CheckStage) Process(ctx *Context) *Context {
	if len(ctx.Diagnostics) > 0 {
		return ctx
	}
	ctx.RootContext = symbols.NewGlobal()
	if ctx.Project != nil {
		ctx.RootContext.SetStrict(ctx.Project.Strict)
		for _, q := range ctx.Project.Qualifiers {
			if err := ctx.RootContext.AssociateQualifier(q); err != nil {
				ctx.Err = err
				return ctx
			}
		}
	}
	if err := checker.CheckProgram(ctx.Program, ctx.RootContext, s.Sink); err != nil {
		ctx.Err = err
	}
	return ctx
}
