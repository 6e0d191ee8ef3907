package matvcol

import (
	"fmt"

	"github.com/gekko3d/matvcol/scene"
)

type Status int

const (
	Finished Status = iota
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Finished:
		return "FINISHED"
	case Cancelled:
		return "CANCELLED"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Operator is a user command. Execute runs synchronously on the editor's
// loop and must report its outcome through ctx.
type Operator interface {
	ID() string
	Label() string
	Execute(ctx *OperatorContext) (Status, error)
}

// OperatorContext is everything an operator may touch. Selected is the
// explicit target list, in selection order.
type OperatorContext struct {
	Commands *Commands
	Library  *scene.Library
	Selected []*scene.Object
	Logger   Logger

	operator string
	reports  *Reports
}

func (ctx *OperatorContext) Report(level ReportLevel, format string, args ...any) {
	ctx.reports.Add(level, ctx.operator, format, args...)
}

// OperatorQueue holds operator ids waiting for the next Update stage.
type OperatorQueue struct {
	pending []string
}

func (q *OperatorQueue) Len() int {
	return len(q.pending)
}

// InvokeOperator queues operator id; it runs during the next Tick.
func (cmd *Commands) InvokeOperator(id string) {
	queue, ok := Resource[OperatorQueue](cmd.app)
	if !ok {
		panic("RegistryModule is not installed")
	}
	queue.pending = append(queue.pending, id)
}

func operatorSystem(cmd *Commands, queue *OperatorQueue, registry *Registry, reports *Reports, lib *scene.Library) {
	if len(queue.pending) == 0 {
		return
	}
	pending := queue.pending
	queue.pending = nil

	logger := cmd.app.Logger()
	for _, id := range pending {
		op, ok := registry.Operator(id)
		if !ok {
			logger.Warnf("operator %s is not registered, dropping call", id)
			continue
		}
		runOperator(cmd, op, reports, lib)
	}
}

// RunOperator executes a registered operator right away, outside the
// queue, and returns its status.
func RunOperator(app *App, id string) (Status, error) {
	registry, ok := Resource[Registry](app)
	if !ok {
		panic("RegistryModule is not installed")
	}
	reports, _ := Resource[Reports](app)
	op, ok := registry.Operator(id)
	if !ok {
		return Cancelled, fmt.Errorf("operator %s is not registered", id)
	}
	lib, ok := Resource[scene.Library](app)
	if !ok {
		panic("SceneModule is not installed")
	}
	return runOperator(app.Commands(), op, reports, lib)
}

func runOperator(cmd *Commands, op Operator, reports *Reports, lib *scene.Library) (Status, error) {
	ctx := &OperatorContext{
		Commands: cmd,
		Library:  lib,
		Selected: SelectedObjects(cmd),
		Logger:   cmd.app.Logger(),
		operator: op.ID(),
		reports:  reports,
	}

	status, err := op.Execute(ctx)
	if err != nil {
		ctx.Logger.Errorf("%s failed: %v", op.ID(), err)
		ctx.Report(ReportError, "%v", err)
		return status, err
	}
	ctx.Logger.Debugf("%s -> %s", op.ID(), status)
	return status, nil
}
