package matvcol

import (
	"errors"
	"io/fs"
)

const (
	ConvertOperatorID = "object.mat_to_vert_col"
	ExportOperatorID  = "object.vcol_export_glb"
	PanelID           = "OBJECT_PT_mat_to_vert_col"
	ObjectMenu        = "VIEW3D_MT_object"

	ConvertButtonText = "Convert Materials to Vertex Colors"
	ExportButtonText  = "Export Vertex Colors (.glb)"
)

// AddonModule registers the material to vertex color add-on. It needs
// SceneModule and RegistryModule installed first.
//
// When SettingsPath is set, settings are loaded from it on install (a
// missing file means defaults) and written back on Uninstall.
type AddonModule struct {
	SettingsPath string
}

func (m AddonModule) Install(app *App, cmd *Commands) {
	registry, ok := Resource[Registry](app)
	if !ok {
		panic("AddonModule needs RegistryModule")
	}
	logger := app.Logger()

	settings := DefaultSettings()
	if m.SettingsPath != "" {
		loaded, err := LoadSettings(m.SettingsPath)
		switch {
		case err == nil:
			settings = loaded
		case errors.Is(err, fs.ErrNotExist):
			logger.Debugf("no settings at %s, using defaults", m.SettingsPath)
		default:
			logger.Warnf("ignoring settings file: %v", err)
		}
	}
	cmd.AddResources(settings)

	registry.RegisterOperator(convertOperator{})
	registry.RegisterOperator(exportOperator{})
	registry.RegisterPanel(newAddonPanel())
	registry.AppendMenu(ObjectMenu, MenuEntry{Operator: ConvertOperatorID, Text: convertOperator{}.Label()})

	logger.Infof("add-on registered (%s)", ConvertOperatorID)
}

// Uninstall removes everything Install registered, including the settings.
func (m AddonModule) Uninstall(app *App) {
	registry, ok := Resource[Registry](app)
	if !ok {
		panic("AddonModule needs RegistryModule")
	}
	logger := app.Logger()

	registry.UnregisterPanel(PanelID)
	registry.UnregisterOperator(ConvertOperatorID)
	registry.UnregisterOperator(ExportOperatorID)
	registry.RemoveMenu(ObjectMenu, ConvertOperatorID)

	if settings, ok := Resource[Settings](app); ok {
		if m.SettingsPath != "" {
			if err := settings.Save(m.SettingsPath); err != nil {
				logger.Errorf("saving settings: %v", err)
			}
		}
		app.removeResources(settings)
	}

	logger.Infof("add-on unregistered (%s)", ConvertOperatorID)
}

func newAddonPanel() *Panel {
	return &Panel{
		ID:         PanelID,
		Label:      "Material to Vertex Color",
		SpaceType:  "VIEW_3D",
		RegionType: "UI",
		Category:   "MatToVertCol",
		Draw: func(settings *Settings) []LayoutItem {
			return []LayoutItem{
				propRow(settings, PropDeletePreviousMaterial, "Delete Previous Materials"),
				propRow(settings, PropNewMaterialName, "New Material Name"),
				operatorRow(ConvertOperatorID, ConvertButtonText),
				propRow(settings, PropExportPath, "Export Path"),
				operatorRow(ExportOperatorID, ExportButtonText),
			}
		},
	}
}
