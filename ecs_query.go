package matvcol

import (
	"reflect"
	"slices"
)

// Queries visit matching entities in ascending EntityId order. Returning
// false from the callback stops the iteration.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]       { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B] { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] {
	return Query3[A, B, C]{ecs: cmd.app.ecs}
}

type match struct {
	eid  EntityId
	arch *archetype
	row  row
}

// matches collects entities whose archetype holds every id in ids.
func (ecs *Ecs) matches(ids ...componentId) []match {
	var res []match
	for _, arch := range ecs.archetypes {
		ok := true
		for _, id := range ids {
			if _, has := arch.componentData[id]; !has {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		for eid, r := range arch.entities {
			res = append(res, match{eid: eid, arch: arch, row: r})
		}
	}
	slices.SortFunc(res, func(a, b match) int {
		switch {
		case a.eid < b.eid:
			return -1
		case a.eid > b.eid:
			return 1
		}
		return 0
	})
	return res
}

func column[T any](m match, id componentId) *T {
	return &m.arch.componentData[id].([]T)[m.row]
}

func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	id1 := identifyComponent[A](q.ecs)
	for _, hit := range q.ecs.matches(id1) {
		if !m(hit.eid, column[A](hit, id1)) {
			return
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool) {
	id1, id2 := identifyComponent[A](q.ecs), identifyComponent[B](q.ecs)
	for _, hit := range q.ecs.matches(id1, id2) {
		if !m(hit.eid, column[A](hit, id1), column[B](hit, id2)) {
			return
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool) {
	id1, id2, id3 := identifyComponent[A](q.ecs), identifyComponent[B](q.ecs), identifyComponent[C](q.ecs)
	for _, hit := range q.ecs.matches(id1, id2, id3) {
		if !m(hit.eid, column[A](hit, id1), column[B](hit, id2), column[C](hit, id3)) {
			return
		}
	}
}

func identifyComponent[A any](ecs *Ecs) componentId {
	return ecs.getComponentId(reflect.TypeFor[A]())
}
