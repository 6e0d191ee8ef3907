package matvcol

import (
	"reflect"
	"testing"
)

func TestEcsReflect_ReflectSliceMake(t *testing.T) {
	type myStruct struct{ A int }
	structSlice := reflectSliceMake(reflect.TypeOf(myStruct{}))

	if reflect.TypeOf(structSlice).Kind() != reflect.Slice {
		t.Errorf("Expected a slice, got %v", reflect.TypeOf(structSlice).Kind())
	}
	if reflect.TypeOf(structSlice).Elem() != reflect.TypeOf(myStruct{}) {
		t.Errorf("Expected slice of myStruct, got %v", reflect.TypeOf(structSlice).Elem())
	}
}

func TestEcsReflect_ReflectSliceGetSet(t *testing.T) {
	slice := []int{10, 20, 30}
	if val := reflectSliceGet(slice, 1); val.Int() != 20 {
		t.Errorf("Expected 20, got %d", val.Int())
	}

	reflectSliceSet(slice, 0, reflect.ValueOf(99))
	if slice[0] != 99 {
		t.Errorf("Expected 99 at index 0, got %d", slice[0])
	}
}

func TestEcsReflect_ReflectSliceSet_PanicOnTypeMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic on type mismatch")
		}
	}()
	slice := []int{1, 2}
	reflectSliceSet(slice, 0, reflect.ValueOf("wrong type"))
}

func TestEcsReflect_ReflectSliceAppend(t *testing.T) {
	slice := []int{}
	for i := 0; i < 5; i++ {
		slice = reflectSliceAppend(slice, reflect.ValueOf(i)).([]int)
	}
	if len(slice) != 5 {
		t.Errorf("Expected slice length 5, got %d", len(slice))
	}
	for i, v := range slice {
		if v != i {
			t.Errorf("Expected value %d at index %d, got %d", i, i, v)
		}
	}
}
