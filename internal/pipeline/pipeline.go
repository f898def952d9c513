// Package pipeline chains the parse and resolve stages that turn Lit
// source into diagnostics, grounded on the teacher's internal/pipeline
// (Pipeline/Processor), generalized here from stage structs that passed
// around lexer/analyzer state to Lit's parser/resolver pair.
package pipeline

import (
	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/symbols"
)

// PipelineContext threads one compilation unit through each stage.
type PipelineContext struct {
	File    string
	Source  string
	Program *ast.Program

	Externals symbols.Scope

	SyntaxErrors []error
	Sink         *diagnostics.Sink
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline is a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, continuing even after a stage
// reports errors so later stages (and the caller) see as complete a
// diagnostic picture as possible — mirroring spec.md §7's "continue on
// error" resolver policy at the pipeline level too.
func (p *Pipeline) Run(initial *PipelineContext) *PipelineContext {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
