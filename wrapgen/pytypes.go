package wrapgen

import "strings"

// PyTypes maps FRED/VBScript type names to the Python names shown in wrapper
// documentation. Names without an entry pass through unchanged, which covers
// the T_* record types and anything else FRED invents.
var PyTypes = map[string]string{
	"String":   "str",
	"Long":     "int",
	"Integer":  "int",
	"Short":    "int",
	"Byte":     "int",
	"Double":   "float",
	"Single":   "float",
	"Currency": "float",
	"Boolean":  "bool",
	"Variant":  "object",
}

// PyType translates one FRED type name for display. Pure lookup.
func PyType(fredType string) string {
	if py, ok := PyTypes[strings.TrimSpace(fredType)]; ok {
		return py
	}
	return fredType
}
