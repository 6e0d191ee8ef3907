package matvcol

import (
	"fmt"
	"slices"
)

// MenuEntry is an operator button appended to one of the editor menus.
type MenuEntry struct {
	Operator string
	Text     string
}

// Registry holds everything add-ons registered with the editor. Like
// resources, registering the same id twice or removing an unknown id
// panics.
type Registry struct {
	operators map[string]Operator
	panels    map[string]*Panel
	menus     map[string][]MenuEntry
}

func NewRegistry() *Registry {
	return &Registry{
		operators: make(map[string]Operator),
		panels:    make(map[string]*Panel),
		menus:     make(map[string][]MenuEntry),
	}
}

func (r *Registry) RegisterOperator(op Operator) {
	if _, ok := r.operators[op.ID()]; ok {
		panic(fmt.Sprintf("operator %s is already registered", op.ID()))
	}
	r.operators[op.ID()] = op
}

func (r *Registry) UnregisterOperator(id string) {
	if _, ok := r.operators[id]; !ok {
		panic(fmt.Sprintf("operator %s is not registered", id))
	}
	delete(r.operators, id)
}

func (r *Registry) Operator(id string) (Operator, bool) {
	op, ok := r.operators[id]
	return op, ok
}

func (r *Registry) RegisterPanel(p *Panel) {
	if _, ok := r.panels[p.ID]; ok {
		panic(fmt.Sprintf("panel %s is already registered", p.ID))
	}
	r.panels[p.ID] = p
}

func (r *Registry) UnregisterPanel(id string) {
	if _, ok := r.panels[id]; !ok {
		panic(fmt.Sprintf("panel %s is not registered", id))
	}
	delete(r.panels, id)
}

func (r *Registry) Panel(id string) (*Panel, bool) {
	p, ok := r.panels[id]
	return p, ok
}

func (r *Registry) AppendMenu(menu string, entry MenuEntry) {
	r.menus[menu] = append(r.menus[menu], entry)
}

// RemoveMenu drops the first entry of menu that invokes operator.
func (r *Registry) RemoveMenu(menu string, operator string) {
	entries := r.menus[menu]
	idx := slices.IndexFunc(entries, func(e MenuEntry) bool { return e.Operator == operator })
	if idx < 0 {
		panic(fmt.Sprintf("menu %s has no entry for %s", menu, operator))
	}
	r.menus[menu] = slices.Delete(entries, idx, idx+1)
}

func (r *Registry) Menu(menu string) []MenuEntry {
	return append([]MenuEntry(nil), r.menus[menu]...)
}

// RegistryModule installs the editor side of add-on support: the
// registry, the operator queue, user reports and the system running
// queued operators.
type RegistryModule struct{}

func (RegistryModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewRegistry(), &OperatorQueue{}, &Reports{})
	app.UseSystem(System(operatorSystem).InStage(Update))
}
