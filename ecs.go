package matvcol

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"reflect"
	"slices"
)

type EntityId uint64
type archetypeId uint64
type archetypeKey []componentId
type componentId uint32
type row int
type set[T comparable] = map[T]struct{}

// Ecs stores components by archetype: every distinct set of component
// types gets one archetype holding a typed slice per component.
type Ecs struct {
	archetypes  map[archetypeId]*archetype
	entityIndex map[EntityId]archetypeId

	entityIdCounter EntityId

	componentIdCounter componentId
	componentTypeIdMap map[reflect.Type]componentId
	componentIdTypeMap map[componentId]reflect.Type
}

type archetype struct {
	id            archetypeId
	key           archetypeKey
	entities      map[EntityId]row
	componentData map[componentId]any // []T per component
	recycled      []row
}

func MakeEcs() Ecs {
	return Ecs{
		archetypes:         make(map[archetypeId]*archetype),
		entityIndex:        make(map[EntityId]archetypeId),
		componentTypeIdMap: make(map[reflect.Type]componentId),
		componentIdTypeMap: make(map[componentId]reflect.Type),
	}
}

func (ecs *Ecs) nextEntityId() EntityId {
	// Zero is kept free so it can mean "no entity".
	ecs.entityIdCounter++
	return ecs.entityIdCounter
}

func (ecs *Ecs) hasEntity(entityId EntityId) bool {
	_, ok := ecs.entityIndex[entityId]
	return ok
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	archId, arch := ecs.getOrMakeArchetype(ecs.keyOf(components...))

	r := ecs.reserveRow(arch)
	arch.entities[entityId] = r
	for _, component := range components {
		ecs.writeComponent(arch, r, component)
	}
	ecs.entityIndex[entityId] = archId

	return entityId
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	if !ecs.hasEntity(entityId) {
		return
	}
	ecs.releaseRow(entityId)
}

func (ecs *Ecs) addComponents(entityId EntityId, components ...any) {
	if !ecs.hasEntity(entityId) {
		return
	}
	srcArch := ecs.archetypes[ecs.entityIndex[entityId]]
	srcRow := srcArch.entities[entityId]

	dstKey := dedupAndSortArchetypeKey(append(slices.Clone(srcArch.key), ecs.keyOf(components...)...))
	dstArchId, dstArch := ecs.getOrMakeArchetype(dstKey)
	if dstArch == srcArch {
		for _, component := range components {
			ecs.writeComponent(srcArch, srcRow, component)
		}
		return
	}

	dstRow := ecs.reserveRow(dstArch)
	ecs.copyShared(srcArch, srcRow, dstArch, dstRow)
	for _, component := range components {
		ecs.writeComponent(dstArch, dstRow, component)
	}
	ecs.releaseRow(entityId)

	dstArch.entities[entityId] = dstRow
	ecs.entityIndex[entityId] = dstArchId
}

func (ecs *Ecs) removeComponents(entityId EntityId, components ...any) {
	if !ecs.hasEntity(entityId) {
		return
	}
	srcArch := ecs.archetypes[ecs.entityIndex[entityId]]
	srcRow := srcArch.entities[entityId]

	drop := make(set[componentId])
	for _, c := range components {
		drop[ecs.getComponentId(componentType(c))] = struct{}{}
	}

	var dstKey archetypeKey
	for _, id := range srcArch.key {
		if _, ok := drop[id]; !ok {
			dstKey = append(dstKey, id)
		}
	}
	if len(dstKey) == len(srcArch.key) {
		return
	}

	dstArchId, dstArch := ecs.getOrMakeArchetype(dstKey)
	dstRow := ecs.reserveRow(dstArch)
	ecs.copyShared(srcArch, srcRow, dstArch, dstRow)
	ecs.releaseRow(entityId)

	dstArch.entities[entityId] = dstRow
	ecs.entityIndex[entityId] = dstArchId
}

// component returns an addressable value of the entity's component of type t.
func (ecs *Ecs) component(entityId EntityId, t reflect.Type) (reflect.Value, bool) {
	archId, ok := ecs.entityIndex[entityId]
	if !ok {
		return reflect.Value{}, false
	}
	id, ok := ecs.componentTypeIdMap[t]
	if !ok {
		return reflect.Value{}, false
	}
	arch := ecs.archetypes[archId]
	data, ok := arch.componentData[id]
	if !ok {
		return reflect.Value{}, false
	}
	return reflectSliceGet(data, int(arch.entities[entityId])), true
}

func (ecs *Ecs) components(entityId EntityId) []any {
	archId, ok := ecs.entityIndex[entityId]
	if !ok {
		return nil
	}
	arch := ecs.archetypes[archId]
	r := arch.entities[entityId]

	res := make([]any, 0, len(arch.key))
	for _, id := range arch.key {
		res = append(res, reflectSliceGet(arch.componentData[id], int(r)).Interface())
	}
	return res
}

// copyShared copies the components both archetypes have in common.
func (ecs *Ecs) copyShared(srcArch *archetype, srcRow row, dstArch *archetype, dstRow row) {
	for _, id := range srcArch.key {
		dst, ok := dstArch.componentData[id]
		if !ok {
			continue
		}
		reflectSliceSet(dst, int(dstRow), reflectSliceGet(srcArch.componentData[id], int(srcRow)))
	}
}

func (ecs *Ecs) writeComponent(arch *archetype, r row, component any) {
	value := reflect.ValueOf(component)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		panic(fmt.Errorf("expected component to be a struct or a pointer to a struct, got %s", value.Kind()))
	}
	reflectSliceSet(arch.componentData[ecs.getComponentId(value.Type())], int(r), value)
}

func (ecs *Ecs) releaseRow(entityId EntityId) {
	arch := ecs.archetypes[ecs.entityIndex[entityId]]
	r := arch.entities[entityId]

	// Zero the row so a recycled slot doesn't keep pointers alive.
	for id, data := range arch.componentData {
		reflectSliceSet(data, int(r), reflect.Zero(ecs.componentIdTypeMap[id]))
	}
	arch.recycled = append(arch.recycled, r)

	delete(arch.entities, entityId)
	delete(ecs.entityIndex, entityId)
}

func (ecs *Ecs) reserveRow(arch *archetype) row {
	if n := len(arch.recycled); n > 0 {
		r := arch.recycled[n-1]
		arch.recycled = arch.recycled[:n-1]
		return r
	}

	r := row(len(arch.entities))
	for _, id := range arch.key {
		arch.componentData[id] = reflectSliceAppend(
			arch.componentData[id],
			reflect.Zero(ecs.componentIdTypeMap[id]),
		)
	}
	return r
}

func (ecs *Ecs) getOrMakeArchetype(key archetypeKey) (archetypeId, *archetype) {
	id := getArchetypeId(key)
	if arch, ok := ecs.archetypes[id]; ok {
		return id, arch
	}

	arch := &archetype{
		id:            id,
		key:           key,
		entities:      make(map[EntityId]row),
		componentData: make(map[componentId]any),
	}
	for _, compId := range key {
		arch.componentData[compId] = reflectSliceMake(ecs.componentIdTypeMap[compId])
	}
	ecs.archetypes[id] = arch
	return id, arch
}

func (ecs *Ecs) keyOf(components ...any) archetypeKey {
	var key archetypeKey
	for _, c := range components {
		t := componentType(c)
		if t.Kind() != reflect.Struct {
			panic("component should be a struct")
		}
		key = append(key, ecs.getComponentId(t))
	}
	return dedupAndSortArchetypeKey(key)
}

func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func dedupAndSortArchetypeKey(key archetypeKey) archetypeKey {
	res := slices.Clone(key)
	slices.Sort(res)
	return slices.Compact(res)
}

// getArchetypeId hashes the sorted key. Collisions are possible in theory
// and ignored.
func getArchetypeId(key archetypeKey) archetypeId {
	hash := fnv.New64a()
	b := make([]byte, 8)
	for _, id := range key {
		binary.LittleEndian.PutUint64(b, uint64(id))
		hash.Write(b)
	}
	return archetypeId(hash.Sum64())
}

func (ecs *Ecs) getComponentId(t reflect.Type) componentId {
	if id, ok := ecs.componentTypeIdMap[t]; ok {
		return id
	}
	id := ecs.componentIdCounter
	ecs.componentIdCounter++
	ecs.componentTypeIdMap[t] = id
	ecs.componentIdTypeMap[id] = t
	return id
}
