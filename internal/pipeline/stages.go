package pipeline

import (
	"github.com/dorichev/lit/internal/parser"
	"github.com/dorichev/lit/internal/resolver"
)

// ParseStage lexes and parses ctx.Source into ctx.Program, recording
// syntax errors without aborting (so a later stage still runs on
// whatever parsed successfully).
type ParseStage struct{}

func (ParseStage) Process(ctx *PipelineContext) *PipelineContext {
	program, errs := parser.ParseProgram(ctx.Source)
	ctx.Program = program
	ctx.SyntaxErrors = errs
	return ctx
}

// ResolveStage runs the semantic analyzer over ctx.Program, populating
// ctx.Sink. It runs even when ParseStage reported syntax errors, since
// the parser still produces a best-effort tree.
type ResolveStage struct{}

func (ResolveStage) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Program == nil {
		return ctx
	}
	ctx.Sink = resolver.Resolve(ctx.Program, ctx.File, ctx.Externals)
	return ctx
}

// Standard is the default parse -> resolve pipeline litresolve runs for
// every file.
func Standard() *Pipeline {
	return New(ParseStage{}, ResolveStage{})
}
