package matvcol

import (
	"errors"

	"github.com/gekko3d/matvcol/bake"
	"github.com/gekko3d/matvcol/gltfexport"
)

// exportOperator writes the selected baked meshes to a binary glTF file.
type exportOperator struct{}

func (exportOperator) ID() string    { return ExportOperatorID }
func (exportOperator) Label() string { return "Export Vertex Colors" }

func (exportOperator) Execute(ctx *OperatorContext) (Status, error) {
	if len(ctx.Selected) == 0 {
		ctx.Report(ReportWarning, "No objects selected")
		return Cancelled, nil
	}

	settings, ok := Resource[Settings](ctx.Commands.App())
	if !ok {
		settings = DefaultSettings()
	}
	if settings.ExportPath == "" {
		ctx.Report(ReportWarning, "No export path set")
		return Cancelled, nil
	}

	err := gltfexport.Save(ctx.Selected, bake.LayerName, settings.ExportPath)
	switch {
	case errors.Is(err, gltfexport.ErrNothingToExport):
		ctx.Report(ReportWarning, "No mesh objects selected")
		return Cancelled, nil
	case errors.Is(err, gltfexport.ErrMissingLayer):
		ctx.Report(ReportWarning, "Convert materials to vertex colors before exporting")
		return Cancelled, nil
	case err != nil:
		return Cancelled, err
	}

	ctx.Report(ReportInfo, "Exported vertex colors to %s", settings.ExportPath)
	return Finished, nil
}
