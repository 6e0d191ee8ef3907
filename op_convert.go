package matvcol

import (
	"errors"

	"github.com/gekko3d/matvcol/bake"
)

// convertOperator bakes material base colors of the selected meshes into
// vertex colors and gives each mesh one vertex color material.
type convertOperator struct{}

func (convertOperator) ID() string    { return ConvertOperatorID }
func (convertOperator) Label() string { return "Convert" }

func (convertOperator) Execute(ctx *OperatorContext) (Status, error) {
	settings, ok := Resource[Settings](ctx.Commands.App())
	if !ok {
		settings = DefaultSettings()
	}

	res, err := bake.Convert(ctx.Library, ctx.Selected, settings.BakeOptions())
	if errors.Is(err, bake.ErrNoSelection) {
		ctx.Report(ReportWarning, "No objects selected")
		return Cancelled, nil
	}
	if err != nil {
		return Cancelled, err
	}

	for _, o := range res.Outcomes {
		ctx.Logger.Debugf("%s: %d polygons, %d loops -> %s (layer created: %v, mode switched: %v)",
			o.Object.Name, o.Polygons, o.Loops, o.Material.Name, o.LayerCreated, o.ModeSwitched)
	}
	if len(res.Skipped) > 0 {
		ctx.Logger.Debugf("skipped %d non-mesh objects", len(res.Skipped))
	}

	ctx.Report(ReportInfo, "Materials converted to vertex colors with new material: %s", res.MaterialName)
	return Finished, nil
}
