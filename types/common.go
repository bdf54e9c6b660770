package types

// FieldKind tells how a struct field takes part in the command line
type FieldKind int

const (
	Ignored    FieldKind = iota // Ignored fields are not part of the command line
	Option                      // Option fields are selected by a dash-prefixed name
	Positional                  // Positional fields are filled by position
)

// String returns the string representation of a FieldKind
func (k FieldKind) String() string {
	switch k {
	case Option:
		return "option"
	case Positional:
		return "positional"
	default:
		return "ignored"
	}
}

// ValueKind tells how the tokens of a field are turned into its value
type ValueKind int

const (
	Scalar          ValueKind = iota // Scalar takes exactly one value
	Array                            // Array appends one value per occurrence
	EnumSingle                       // EnumSingle selects one enumerant
	EnumMultiple                     // EnumMultiple OR-combines every selected enumerant
	Boolean                          // Boolean is set by presence and never takes a value
	SubcommandGroup                  // SubcommandGroup selects a command from a registered group
)

// String returns the string representation of a ValueKind
func (k ValueKind) String() string {
	switch k {
	case Array:
		return "array"
	case EnumSingle:
		return "enum-single"
	case EnumMultiple:
		return "enum-multiple"
	case Boolean:
		return "boolean"
	case SubcommandGroup:
		return "subcommand-group"
	default:
		return "scalar"
	}
}

// EnumBehavior is the value of the enum tag key
type EnumBehavior int

const (
	EnumDefault EnumBehavior = iota // EnumDefault is single selection
	EnumSingleValue
	EnumMultipleValues
)

// TagConfig holds the settings read from a cmdline struct tag
type TagConfig struct {
	Ignore       bool
	Option       bool
	Names        []string
	Positional   bool
	Order        float64
	Mandatory    bool
	Enum         EnumBehavior
	Section      string
	Undocumented bool
}

// Command is embedded in a struct to make it a named, selectable member of a command group.
// The embedding field carries the command names in a name tag and may carry doc and docfmt
// tags documenting the command:
//
//	type AddCmd struct {
//		cmdline.Command `name:"add,a" doc:"Adds an item."`
//		Item string `cmdline:"pos;mandatory" doc:"The item to add."`
//	}
type Command struct{}

// PassThrough is embedded in a struct to make it an intermediate layer of a command group.
// A pass-through layer is never selected by name; its fields are contributed to every named
// command embedding it.
type PassThrough struct{}

// Enumerant describes one value of an enum type
type Enumerant struct {
	// Value is the constant, of the enum type itself
	Value any
	// Options are the flag names selecting Value when the enum is used as a set of flags
	Options []string
	// Names are the words accepted for Value after an option or as a positional parameter
	Names []string
	// Doc documents the enumerant in the help screen
	Doc string
	// Undocumented hides the enumerant from the help screen and usage line
	Undocumented bool
}

// EnumType is implemented by the named types usable as enum fields
type EnumType interface {
	Enumerants() []Enumerant
}

// Processor is implemented by command types needing to act once they are populated.
// Process is called after validation.
type Processor interface {
	Process() error
}

// Validatable is implemented by command types checking their fields after population
type Validatable interface {
	Validate() error
}
