package guigrid

import (
	"reflect"
	"testing"
)

func TestSpacePascalCase(t *testing.T) {
	tests := []struct {
		testName string
		name     string
		want     string
	}{
		{testName: "", name: "", want: ""},
		{testName: "HelloWorld", name: "HelloWorld", want: "Hello World"},
		{testName: "_Hello_World", name: "_Hello_World", want: "Hello World"},
		{testName: "helloWorld", name: "helloWorld", want: "hello World"},
		{testName: "helloWorld_", name: "helloWorld_", want: "hello World"},
		{testName: "ThisHasMoreSpacesForSure", name: "ThisHasMoreSpacesForSure", want: "This Has More Spaces For Sure"},
		{testName: "ThisHasMore_Spaces__ForSure", name: "ThisHasMore_Spaces__ForSure", want: "This Has More Spaces For Sure"},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			if got := SpacePascalCase(tt.name); got != tt.want {
				t.Errorf("SpacePascalCase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructFieldValues(t *testing.T) {
	type Embedded struct {
		Float float64
	}
	strct := struct {
		Int int
		Embedded
		hidden string
		Text   string
	}{Int: 1, Embedded: Embedded{Float: 2.5}, Text: "x"}

	fields := StructFieldTypes(reflect.TypeOf(&strct))
	values := StructFieldValues(reflect.ValueOf(&strct))
	if len(fields) != 3 || len(values) != 3 {
		t.Fatalf("got %d fields and %d values, want 3", len(fields), len(values))
	}
	for i, want := range []any{1, 2.5, "x"} {
		if got := values[i].Interface(); got != want {
			t.Errorf("field %s = %v, want %v", fields[i].Name, got, want)
		}
	}
}
