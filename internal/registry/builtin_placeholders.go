package registry

// builtinPlaceholders are the canonical empty values depstub knows how to
// fabricate without author input. The uuid and time rules carry the import
// their expression needs so the emitter can wire it in.
var builtinPlaceholders = []Placeholder{
	{TypeName: "bool", Expr: "false", Builtin: true},
	{TypeName: "string", Expr: `""`, Builtin: true},

	{TypeName: "int", Expr: "0", Builtin: true},
	{TypeName: "int8", Expr: "0", Builtin: true},
	{TypeName: "int16", Expr: "0", Builtin: true},
	{TypeName: "int32", Expr: "0", Builtin: true},
	{TypeName: "int64", Expr: "0", Builtin: true},
	{TypeName: "uint", Expr: "0", Builtin: true},
	{TypeName: "uint8", Expr: "0", Builtin: true},
	{TypeName: "uint16", Expr: "0", Builtin: true},
	{TypeName: "uint32", Expr: "0", Builtin: true},
	{TypeName: "uint64", Expr: "0", Builtin: true},
	{TypeName: "uintptr", Expr: "0", Builtin: true},
	{TypeName: "byte", Expr: "0", Builtin: true},
	{TypeName: "rune", Expr: "0", Builtin: true},
	{TypeName: "float32", Expr: "0", Builtin: true},
	{TypeName: "float64", Expr: "0", Builtin: true},
	{TypeName: "complex64", Expr: "0", Builtin: true},
	{TypeName: "complex128", Expr: "0", Builtin: true},

	// unit-like single-case value
	{TypeName: "struct{}", Expr: "struct{}{}", Builtin: true},

	// nilable interfaces
	{TypeName: "error", Expr: "nil", Builtin: true},
	{TypeName: "any", Expr: "nil", Builtin: true},
	{TypeName: "interface{}", Expr: "nil", Builtin: true},

	{TypeName: "time.Time", Expr: "time.Time{}", Import: "time", Builtin: true},
	{TypeName: "time.Duration", Expr: "0", Builtin: true},
	{TypeName: "uuid.UUID", Expr: "uuid.Nil", Import: "github.com/google/uuid", Builtin: true},
}
