package tspath

import "testing"

func TestGetScriptKindFromFileName(t *testing.T) {
	tests := []struct {
		fileName string
		want     ScriptKind
	}{
		{"app.ts", ScriptKindTS},
		{"app.mts", ScriptKindTS},
		{"app.cts", ScriptKindTS},
		{"app.tsx", ScriptKindTSX},
		{"app.js", ScriptKindJS},
		{"app.mjs", ScriptKindJS},
		{"app.cjs", ScriptKindJS},
		{"app.jsx", ScriptKindJSX},
		{"APP.TS", ScriptKindTS},
		{"app.json", ScriptKindUnknown},
		{"Makefile", ScriptKindUnknown},
		{"", ScriptKindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			if got := GetScriptKindFromFileName(tt.fileName); got != tt.want {
				t.Errorf("GetScriptKindFromFileName(%q) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestResolveScriptKind(t *testing.T) {
	if got := ResolveScriptKind("app.jsx", ScriptKindUnknown); got != ScriptKindJSX {
		t.Errorf("inference should win when no override is given, got %v", got)
	}
	if got := ResolveScriptKind("app.jsx", ScriptKindTS); got != ScriptKindTS {
		t.Errorf("an explicit kind should win over the extension, got %v", got)
	}
	if got := ResolveScriptKind("noext", ScriptKindUnknown); got != ScriptKindTS {
		t.Errorf("unresolvable files should default to TS, got %v", got)
	}
}

func TestGetLanguageVariant(t *testing.T) {
	tests := []struct {
		kind ScriptKind
		want LanguageVariant
	}{
		{ScriptKindTS, LanguageVariantStandard},
		{ScriptKindTSX, LanguageVariantJSX},
		{ScriptKindJSX, LanguageVariantJSX},
		{ScriptKindJS, LanguageVariantJSX},
		{ScriptKindUnknown, LanguageVariantStandard},
	}
	for _, tt := range tests {
		if got := GetLanguageVariant(tt.kind); got != tt.want {
			t.Errorf("GetLanguageVariant(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestIsDeclarationFileName(t *testing.T) {
	tests := []struct {
		fileName string
		want     bool
	}{
		{"lib.d.ts", true},
		{"lib.d.mts", true},
		{"lib.d.cts", true},
		{"lib.d.global.ts", true},
		{"LIB.D.TS", true},
		{"lib.ts", false},
		{"d.ts", false},
		{"lib.dts", false},
		{"lib.d.ts.map", false},
	}
	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			if got := IsDeclarationFileName(tt.fileName); got != tt.want {
				t.Errorf("IsDeclarationFileName(%q) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestGetRootLength(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/usr/lib", 1},
		{"relative/path", 0},
		{"", 0},
		{"c:/windows", 3},
		{"c:", 2},
		{"C:\\windows", 3},
		{"//server/share/file", 9},
		{"//server", 8},
		{"file:///c:/project", 10},
		{"http://host/path", 12},
		{"untitled:doc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := GetRootLength(tt.path); got != tt.want {
				t.Errorf("GetRootLength(%q) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/../c", "/a/c"},
		{"/a/./b", "/a/b"},
		{"a\\b\\c", "a/b/c"},
		{"/a/b/../../..", "/"},
		{"../x", "../x"},
		{"a/../..", ".."},
		{"./", "."},
		{"c:/a/../b", "c:/b"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
