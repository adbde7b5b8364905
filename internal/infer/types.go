package infer

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// Kind classifies an inferred type. The set is closed: every result the
// engine produces is one of these.
type Kind int

const (
	KindUnknown Kind = iota
	KindPrimitive
	KindArray
	KindObject
	KindFunction
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// InferredType is an immutable inference result: a rendered type descriptor
// plus a heuristic confidence in [0, 1]. Confidence is a certainty score,
// not a probability.
//
// NeedsInterface and InterfaceName are set only on object-kind results whose
// shape should be lifted to a named declaration.
type InferredType struct {
	Kind           Kind
	Value          string
	Confidence     float64
	NeedsInterface bool
	InterfaceName  string
}

func (t InferredType) String() string {
	return fmt.Sprintf("%s@%.2f", t.Value, t.Confidence)
}

// NewPrimitive builds a primitive-kind type: "string", "number", "Date", ...
func NewPrimitive(value string, confidence float64) InferredType {
	return InferredType{Kind: KindPrimitive, Value: value, Confidence: confidence}
}

// NewArray builds an array-kind type. The descriptor is always the element
// descriptor suffixed with "[]".
func NewArray(element string, confidence float64) InferredType {
	return InferredType{Kind: KindArray, Value: element + "[]", Confidence: confidence}
}

// NewObject builds an object-kind type from an already-rendered descriptor
// such as "{ x: number }" or the opaque "object".
func NewObject(value string, confidence float64) InferredType {
	return InferredType{Kind: KindObject, Value: value, Confidence: confidence}
}

// NewFunction builds a function-kind type from a rendered signature
// descriptor such as "(x: number) => string".
func NewFunction(value string, confidence float64) InferredType {
	return InferredType{Kind: KindFunction, Value: value, Confidence: confidence}
}

// NewUnion builds a union-kind type. Members are flattened (a member that is
// itself a union descriptor is split), deduplicated keeping first-seen order,
// and joined with " | ". Unions are never nested.
func NewUnion(members []string, confidence float64) InferredType {
	flat := make([]string, 0, len(members))
	seen := map[string]struct{}{}
	for _, m := range members {
		for _, part := range SplitUnion(m) {
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			flat = append(flat, part)
		}
	}
	return InferredType{Kind: KindUnion, Value: strings.Join(flat, " | "), Confidence: confidence}
}

// NewUnknown builds the unknown type at the given confidence.
func NewUnknown(confidence float64) InferredType {
	return InferredType{Kind: KindUnknown, Value: "unknown", Confidence: confidence}
}

// AreTypesEqual is structural equality on kind and descriptor only.
// Confidence never participates.
func AreTypesEqual(a, b InferredType) bool {
	return a.Kind == b.Kind && a.Value == b.Value
}

// MergeTypes combines two inference results:
//   - equal types keep the higher-confidence operand (ties keep the first)
//   - unknown is the merge identity: the other operand passes through
//   - anything else becomes a flattened, deduplicated union whose confidence
//     is the mean of the two inputs
//
// Folding n values pairwise left-to-right repeatedly averages confidences,
// so an n-way fold is not the mean of all n inputs. Callers rely on that
// ordering; do not replace the fold with a true mean.
func MergeTypes(a, b InferredType) InferredType {
	if AreTypesEqual(a, b) {
		if b.Confidence > a.Confidence {
			return b
		}
		return a
	}
	if a.Kind == KindUnknown {
		return b
	}
	if b.Kind == KindUnknown {
		return a
	}
	return NewUnion([]string{a.Value, b.Value}, (a.Confidence+b.Confidence)/2)
}

// SplitUnion splits a descriptor on top-level " | " separators. Separators
// nested inside (), [], {} or <> belong to a member and are kept intact.
func SplitUnion(v string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth > 0 {
				depth--
			}
		case ' ':
			if depth == 0 && strings.HasPrefix(v[i:], " | ") {
				parts = append(parts, v[start:i])
				start = i + 3
				i += 2
			}
		}
	}
	parts = append(parts, v[start:])
	return parts
}

// ElementOf returns the element descriptor of an array descriptor,
// stripping one "[]" suffix.
func ElementOf(arrayValue string) string {
	return strings.TrimSuffix(arrayValue, "[]")
}

// PropertyDefinition describes one member of a synthesized interface.
type PropertyDefinition struct {
	Name     string
	Type     string
	Optional bool
	Readonly bool
}

// InterfaceDefinition is a named object shape accumulated during an
// inference pass. Hash identifies the shape regardless of the declared name.
type InterfaceDefinition struct {
	Name       string
	Properties []PropertyDefinition
	UsageCount int
	Hash       string
}

// NewInterfaceDefinition builds a definition with its shape hash computed.
func NewInterfaceDefinition(name string, props []PropertyDefinition) *InterfaceDefinition {
	return &InterfaceDefinition{
		Name:       name,
		Properties: props,
		UsageCount: 1,
		Hash:       HashInterfaceDefinition(props),
	}
}

// HashInterfaceDefinition computes a deterministic shape hash over the
// property list. Properties are hashed sorted by name, so the result is
// independent of source order; two shapes hash equal exactly when every
// property matches in name, optional flag, readonly flag and type.
func HashInterfaceDefinition(props []PropertyDefinition) string {
	sorted := make([]PropertyDefinition, len(props))
	copy(sorted, props)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	h := fnv.New64a()
	for _, p := range sorted {
		fmt.Fprintf(h, "%s:%t:%t:%s;", p.Name, p.Optional, p.Readonly, p.Type)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// AreInterfacesEqual reports structural identity of two interface shapes.
// The declared names do not participate; the hash is the sole criterion.
func AreInterfacesEqual(a, b *InterfaceDefinition) bool {
	return a.Hash == b.Hash
}
