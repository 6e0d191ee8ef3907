package matvcol

import (
	"fmt"
)

type LayoutKind int

const (
	LayoutProp LayoutKind = iota
	LayoutOperator
)

// LayoutItem is one row of a panel: a property field or an operator button.
type LayoutItem struct {
	Kind     LayoutKind
	Prop     string
	Operator string
	Text     string
	Value    any
}

// Panel is a sidebar panel. Draw lays it out from the current settings.
type Panel struct {
	ID         string
	Label      string
	SpaceType  string
	RegionType string
	Category   string
	Draw       func(settings *Settings) []LayoutItem
}

// Click presses the panel button labelled text, queueing its operator.
func (p *Panel) Click(cmd *Commands, settings *Settings, text string) error {
	for _, item := range p.Draw(settings) {
		if item.Kind == LayoutOperator && item.Text == text {
			cmd.InvokeOperator(item.Operator)
			return nil
		}
	}
	return fmt.Errorf("panel %s has no button %q", p.ID, text)
}

// propRow builds a property row showing the property's current value.
func propRow(settings *Settings, prop, text string) LayoutItem {
	value, err := settings.Prop(prop)
	if err != nil {
		panic(err)
	}
	return LayoutItem{Kind: LayoutProp, Prop: prop, Text: text, Value: value}
}

func operatorRow(operator, text string) LayoutItem {
	return LayoutItem{Kind: LayoutOperator, Operator: operator, Text: text}
}
