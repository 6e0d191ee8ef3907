package matvcol

import (
	"reflect"
)

// Commands buffers entity changes until the app flushes them, so systems
// can mutate the world while queries iterate it.
type Commands struct {
	app *App
}

func (cmd *Commands) App() *App {
	return cmd.app
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) RemoveResources(resources ...any) *Commands {
	cmd.app.removeResources(resources...)
	return cmd
}

func (cmd *Commands) AddEntity(components ...any) EntityId {
	eid := cmd.app.ecs.nextEntityId()
	cmd.app.pendingAdditions = append(cmd.app.pendingAdditions, pendingAdd{
		eid:        eid,
		components: components,
	})
	return eid
}

func (cmd *Commands) AddComponents(entityId EntityId, components ...any) {
	cmd.app.pendingCompChanges = append(cmd.app.pendingCompChanges, pendingCompChange{
		eid:        entityId,
		components: components,
	})
}

func (cmd *Commands) RemoveComponents(entityId EntityId, components ...any) {
	cmd.app.pendingCompChanges = append(cmd.app.pendingCompChanges, pendingCompChange{
		eid:        entityId,
		components: components,
		remove:     true,
	})
}

func (cmd *Commands) RemoveEntity(entityId EntityId) {
	cmd.app.pendingRemovals = append(cmd.app.pendingRemovals, entityId)
}

// GetAllComponents returns copies of the flushed components of entityId.
func (cmd *Commands) GetAllComponents(entityId EntityId) []any {
	return cmd.app.ecs.components(entityId)
}

// GetComponent returns a pointer to the flushed component T of entityId.
func GetComponent[T any](cmd *Commands, entityId EntityId) (*T, bool) {
	v, ok := cmd.app.ecs.component(entityId, reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	return v.Addr().Interface().(*T), true
}
