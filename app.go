package matvcol

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// Module bundles resources and systems. Install runs once, when the
// module is added to an App.
type Module interface {
	Install(app *App, cmd *Commands)
}

// App is the editor host: it owns the entity store, the resources and the
// systems, and runs every stage once per Tick. Tick is driven by the
// editor's event loop; it never blocks.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	ecs       *Ecs

	// Command Buffering
	pendingAdditions   []pendingAdd
	pendingRemovals    []EntityId
	pendingCompChanges []pendingCompChange
}

type pendingAdd struct {
	eid        EntityId
	components []any
}

// pendingCompChange is a component add or removal. Changes apply in the
// order they were issued.
type pendingCompChange struct {
	eid        EntityId
	components []any
	remove     bool
}

func NewApp() *App {
	ecs := MakeEcs()
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
		ecs:       &ecs,
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = nil
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		module.Install(app, cmd)
	}
	return app
}

// Tick runs all systems stage by stage, flushing buffered commands after
// each stage.
func (app *App) Tick() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
		app.FlushCommands()
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

func (app *App) removeResources(resources ...any) *App {
	for _, resource := range resources {
		delete(app.resources, componentType(resource))
	}
	return app
}

// Resource returns the resource of type T registered on app.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

var typeOfCommands = reflect.TypeOf(Commands{})

// callSystem resolves every pointer parameter of system to either the
// Commands or a resource of the pointed-to type, then calls it.
func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())
	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, ok := app.resources[underlyingType]; ok {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}

func (app *App) FlushCommands() {
	if len(app.pendingAdditions) == 0 && len(app.pendingRemovals) == 0 &&
		len(app.pendingCompChanges) == 0 {
		return
	}

	// Removals first so nothing gets added to a dead entity.
	for _, eid := range app.pendingRemovals {
		app.ecs.removeEntity(eid)
	}
	app.pendingRemovals = app.pendingRemovals[:0]

	for _, add := range app.pendingAdditions {
		app.ecs.insertEntity(add.eid, add.components...)
	}
	app.pendingAdditions = app.pendingAdditions[:0]

	for _, change := range app.pendingCompChanges {
		if change.remove {
			app.ecs.removeComponents(change.eid, change.components...)
		} else {
			app.ecs.addComponents(change.eid, change.components...)
		}
	}
	app.pendingCompChanges = app.pendingCompChanges[:0]
}
