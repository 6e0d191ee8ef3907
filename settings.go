package matvcol

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/matvcol/bake"
)

const (
	PropDeletePreviousMaterial = "delete_previous_material"
	PropNewMaterialName        = "new_material_name"
	PropExportPath             = "export_path"
)

var (
	ErrUnknownProp   = errors.New("unknown property")
	ErrPropValueType = errors.New("wrong property value type")
)

// Settings are the per-scene add-on properties shown on the panel.
type Settings struct {
	DeletePreviousMaterial bool   `yaml:"delete_previous_material"`
	NewMaterialName        string `yaml:"new_material_name"`
	ExportPath             string `yaml:"export_path"`
}

func DefaultSettings() *Settings {
	return &Settings{
		DeletePreviousMaterial: true,
		NewMaterialName:        bake.DefaultMaterialName,
		ExportPath:             "vcol_export.glb",
	}
}

func (s *Settings) EffectiveMaterialName() string {
	return s.BakeOptions().EffectiveMaterialName()
}

func (s *Settings) BakeOptions() bake.Options {
	return bake.Options{
		DeletePrevious: s.DeletePreviousMaterial,
		MaterialName:   s.NewMaterialName,
	}
}

// Prop reads a property by its panel name.
func (s *Settings) Prop(name string) (any, error) {
	switch name {
	case PropDeletePreviousMaterial:
		return s.DeletePreviousMaterial, nil
	case PropNewMaterialName:
		return s.NewMaterialName, nil
	case PropExportPath:
		return s.ExportPath, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownProp)
}

// SetProp writes a property by its panel name.
func (s *Settings) SetProp(name string, value any) error {
	switch name {
	case PropDeletePreviousMaterial:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s wants bool, got %T: %w", name, value, ErrPropValueType)
		}
		s.DeletePreviousMaterial = v
	case PropNewMaterialName, PropExportPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s wants string, got %T: %w", name, value, ErrPropValueType)
		}
		if name == PropNewMaterialName {
			s.NewMaterialName = v
		} else {
			s.ExportPath = v
		}
	default:
		return fmt.Errorf("%q: %w", name, ErrUnknownProp)
	}
	return nil
}

// LoadSettings reads settings from a YAML file. Keys missing from the file
// keep their defaults.
func LoadSettings(filename string) (*Settings, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(bytes, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return settings, nil
}

func (s *Settings) Save(filename string) error {
	bytes, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}
