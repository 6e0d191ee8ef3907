package matvcol

import (
	"testing"
)

func TestQuery_Map(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b float32 }
	type Comp3 struct{}

	app := NewApp()
	cmd := app.Commands()
	cmd.AddEntity(Comp1{a: 1})                                 // comp1 only                       -- shouldn't match
	id2 := cmd.AddEntity(Comp1{a: 2}, Comp2{b: 1.37})          // comp1 & comp2                    -- should match
	id3 := cmd.AddEntity(Comp1{a: 3}, Comp2{b: 4.20}, Comp3{}) // comp1 & comp2 + something extra  -- should match
	cmd.AddEntity(Comp1{a: 4}, Comp3{})                        // comp1 + something extra          -- shouldn't match
	cmd.AddEntity(Comp2{b: 3.14})                              // comp2 only                       -- shouldn't match
	app.FlushCommands()

	expectedEntityIds := []EntityId{id2, id3}
	expectedComponentsA := []Comp1{{a: 2}, {a: 3}}
	expectedComponentsB := []Comp2{{b: 1.37}, {b: 4.20}}
	numResults := 0

	MakeQuery2[Comp1, Comp2](cmd).Map(func(entityId EntityId, comp1 *Comp1, comp2 *Comp2) bool {
		if entityId != expectedEntityIds[numResults] {
			t.Errorf("Unexpected EntityId for row %v, expected %v got %v", numResults, expectedEntityIds[numResults], entityId)
		}
		if *comp1 != expectedComponentsA[numResults] {
			t.Errorf("Unexpected A for row %v, expected %v got %v", numResults, expectedComponentsA[numResults], *comp1)
		}
		if *comp2 != expectedComponentsB[numResults] {
			t.Errorf("Unexpected B for row %v, expected %v got %v", numResults, expectedComponentsB[numResults], *comp2)
		}

		numResults += 1
		return true
	})

	if 2 != numResults {
		t.Errorf("Unexpected number of results, got %v", numResults)
	}
}

func TestQuery_MapStopsEarly(t *testing.T) {
	type Comp1 struct{ a int }

	app := NewApp()
	cmd := app.Commands()
	for i := 0; i < 5; i++ {
		cmd.AddEntity(&Comp1{a: i})
	}
	app.FlushCommands()

	visited := 0
	MakeQuery1[Comp1](cmd).Map(func(eid EntityId, c *Comp1) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("Expected iteration to stop after 2 entities, visited %v", visited)
	}
}

func TestQuery_Map3MutatesInPlace(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b int }
	type Comp3 struct{ c int }

	app := NewApp()
	cmd := app.Commands()
	id := cmd.AddEntity(&Comp1{a: 1}, &Comp2{b: 2}, &Comp3{c: 3})
	app.FlushCommands()

	MakeQuery3[Comp1, Comp2, Comp3](cmd).Map(func(eid EntityId, a *Comp1, b *Comp2, c *Comp3) bool {
		c.c = a.a + b.b
		return true
	})

	c, ok := GetComponent[Comp3](cmd, id)
	if !ok || c.c != 3 {
		t.Errorf("Expected Comp3.c to be 3, got %v", c)
	}
}
