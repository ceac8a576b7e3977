package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hayato-mori/shieldsmith/internal/model"
)

// Stage is one step of the bootstrap workflow. Stages receive the shared
// project configuration and may populate fields for later stages.
type Stage interface {
	// Name identifies the stage in logs and failure reports.
	Name() string

	// Run executes the stage. Any error halts the pipeline.
	Run(ctx context.Context, project *model.Project) error
}

// stageFunc adapts a plain function to the Stage interface. All concrete
// stages are built this way — their logic lives in the concern packages
// (npm, scaffold, secrets, generate, deploy), not here.
type stageFunc struct {
	name string
	fn   func(ctx context.Context, project *model.Project) error
}

func (s stageFunc) Name() string { return s.name }

func (s stageFunc) Run(ctx context.Context, project *model.Project) error {
	return s.fn(ctx, project)
}

// NewStage wraps a function as a named Stage.
func NewStage(name string, fn func(ctx context.Context, project *model.Project) error) Stage {
	return stageFunc{name: name, fn: fn}
}

// Runner executes stages sequentially, halting on the first failure.
type Runner struct {
	stages []Stage
}

// NewRunner creates a runner over the given stages, in order.
func NewRunner(stages ...Stage) *Runner {
	return &Runner{stages: stages}
}

// Run drives the pipeline. On failure the returned error names the
// failing stage; a CLIError from the stage keeps its exit code through
// the wrap.
func (r *Runner) Run(ctx context.Context, project *model.Project) error {
	for i, stage := range r.stages {
		log.Info().
			Str("stage", stage.Name()).
			Int("step", i+1).
			Int("of", len(r.stages)).
			Msg("running")

		if err := stage.Run(ctx, project); err != nil {
			// Preserve the stage's exit code through the wrap so the
			// command layer still classifies the failure correctly.
			code := model.ExitGeneralError
			var cliErr *model.CLIError
			if errors.As(err, &cliErr) {
				code = cliErr.Code
			}
			return model.WrapCLIError(code,
				fmt.Sprintf("stage %q failed", stage.Name()), err)
		}
	}
	return nil
}
