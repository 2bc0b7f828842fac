package guigrid

import (
	"encoding"
	"log/slog"
	"reflect"
	"time"
)

var (
	// GridTypes lists the element type names
	// that NewGrid accepts as tabular grid controls.
	GridTypes = []string{
		"GuiGridView",
		"GuiShell", // grid views are hosted in shells on most host versions
		"GuiTableControl",
	}

	// DefaultStructFieldNaming provides the default StructFieldNaming
	// using "col" as column tag, ignores "-" titled fields,
	// and uses SpacePascalCase for untagged fields.
	DefaultStructFieldNaming = StructFieldNaming{
		Tag:      "col",
		Ignore:   "-",
		Untagged: SpacePascalCase,
	}

	defaultParser = NewStringParser()

	discardLogger = slog.New(slog.DiscardHandler)
)

var (
	typeOfTime            = reflect.TypeOf(time.Time{})
	typeOfDuration        = reflect.TypeOf(time.Duration(0))
	typeOfTextUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)
