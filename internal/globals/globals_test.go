package globals

import "testing"

func TestIsNamespace(t *testing.T) {
	for _, name := range []string{"Math", "JSON", "console", "Promise"} {
		if !IsNamespace(name) {
			t.Errorf("IsNamespace(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"math", "window", "process", ""} {
		if IsNamespace(name) {
			t.Errorf("IsNamespace(%q) = true, want false", name)
		}
	}
}

func TestMemberReturn(t *testing.T) {
	tests := []struct {
		namespace, name string
		descriptor      string
		confidence      float64
	}{
		{"Math", "abs", "number", 1.0},
		{"Math", "PI", "number", 1.0},
		{"JSON", "stringify", "string", 1.0},
		{"JSON", "parse", "unknown", 0.3},
		{"Object", "keys", "string[]", 1.0},
		{"Array", "isArray", "boolean", 1.0},
		{"console", "log", "void", 1.0},
	}
	for _, tt := range tests {
		desc, conf, ok := MemberReturn(tt.namespace, tt.name)
		if !ok {
			t.Fatalf("MemberReturn(%q, %q) not found", tt.namespace, tt.name)
		}
		if desc != tt.descriptor || conf != tt.confidence {
			t.Errorf("MemberReturn(%q, %q) = %q@%v, want %q@%v",
				tt.namespace, tt.name, desc, conf, tt.descriptor, tt.confidence)
		}
	}
}

func TestMemberReturnUnknownMember(t *testing.T) {
	if _, _, ok := MemberReturn("Math", "frobnicate"); ok {
		t.Error("unknown member should not resolve")
	}
	if _, _, ok := MemberReturn("NotANamespace", "abs"); ok {
		t.Error("unknown namespace should not resolve")
	}
}
