// Package globals is the registry of well-known JavaScript global
// namespaces. Member results are rendered type descriptors with a
// confidence, so callers stay free to build their own type values.
package globals

// member is one known property or method of a global namespace.
type member struct {
	descriptor string
	confidence float64
}

var namespaces = map[string]map[string]member{
	"Math": {
		"abs": {"number", 1.0}, "ceil": {"number", 1.0}, "floor": {"number", 1.0},
		"round": {"number", 1.0}, "trunc": {"number", 1.0}, "sign": {"number", 1.0},
		"min": {"number", 1.0}, "max": {"number", 1.0}, "pow": {"number", 1.0},
		"sqrt": {"number", 1.0}, "cbrt": {"number", 1.0}, "hypot": {"number", 1.0},
		"log": {"number", 1.0}, "log2": {"number", 1.0}, "log10": {"number", 1.0},
		"exp": {"number", 1.0}, "sin": {"number", 1.0}, "cos": {"number", 1.0},
		"tan": {"number", 1.0}, "atan2": {"number", 1.0}, "random": {"number", 1.0},
		"PI": {"number", 1.0}, "E": {"number", 1.0},
	},
	"JSON": {
		"stringify": {"string", 1.0},
		"parse":     {"unknown", 0.3},
	},
	"Number": {
		"parseInt": {"number", 1.0}, "parseFloat": {"number", 1.0},
		"isInteger": {"boolean", 1.0}, "isFinite": {"boolean", 1.0},
		"isNaN": {"boolean", 1.0}, "isSafeInteger": {"boolean", 1.0},
		"MAX_SAFE_INTEGER": {"number", 1.0}, "MIN_SAFE_INTEGER": {"number", 1.0},
		"EPSILON": {"number", 1.0}, "NaN": {"number", 1.0},
	},
	"Object": {
		"keys":    {"string[]", 1.0},
		"values":  {"unknown[]", 0.7},
		"entries": {"unknown[][]", 0.7},
		"assign":  {"object", 0.7},
		"freeze":  {"object", 0.7},
	},
	"Array": {
		"isArray": {"boolean", 1.0},
		"from":    {"unknown[]", 0.7},
		"of":      {"unknown[]", 0.7},
	},
	"Date": {
		"now":   {"number", 1.0},
		"parse": {"number", 1.0},
	},
	"String": {
		"fromCharCode":  {"string", 1.0},
		"fromCodePoint": {"string", 1.0},
	},
	"Promise": {
		"resolve": {"Promise<unknown>", 0.8},
		"reject":  {"Promise<unknown>", 0.8},
		"all":     {"Promise<unknown[]>", 0.8},
		"race":    {"Promise<unknown>", 0.8},
	},
	"console": {
		"log": {"void", 1.0}, "info": {"void", 1.0}, "warn": {"void", 1.0},
		"error": {"void", 1.0}, "debug": {"void", 1.0}, "table": {"void", 1.0},
	},
}

// IsNamespace reports whether name is a recognized global namespace.
func IsNamespace(name string) bool {
	_, ok := namespaces[name]
	return ok
}

// MemberReturn resolves namespace.member to a type descriptor and its
// confidence. Methods and value properties share one table: Math.random()
// and Math.PI both answer "number".
func MemberReturn(namespace, name string) (string, float64, bool) {
	members, ok := namespaces[namespace]
	if !ok {
		return "", 0, false
	}
	m, ok := members[name]
	if !ok {
		return "", 0, false
	}
	return m.descriptor, m.confidence, true
}
