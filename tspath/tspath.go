package tspath

import "strings"

// ScriptKind is the dialect inferred for a file, governing which grammar
// extensions are enabled.
type ScriptKind int

const (
	ScriptKindUnknown ScriptKind = iota
	ScriptKindJS
	ScriptKindJSX
	ScriptKindTS
	ScriptKindTSX
)

func (k ScriptKind) String() string {
	switch k {
	case ScriptKindJS:
		return "JS"
	case ScriptKindJSX:
		return "JSX"
	case ScriptKindTS:
		return "TS"
	case ScriptKindTSX:
		return "TSX"
	}
	return "Unknown"
}

// LanguageVariant selects between the standard grammar and the
// JSX-enabled grammar.
type LanguageVariant int

const (
	LanguageVariantStandard LanguageVariant = iota
	LanguageVariantJSX
)

// GetScriptKindFromFileName infers the dialect from the file extension,
// case-insensitively. Unrecognized extensions map to Unknown.
func GetScriptKindFromFileName(fileName string) ScriptKind {
	ext := fileName
	if i := strings.LastIndexByte(fileName, '.'); i >= 0 {
		ext = fileName[i:]
	}
	switch strings.ToLower(ext) {
	case ".js", ".cjs", ".mjs":
		return ScriptKindJS
	case ".jsx":
		return ScriptKindJSX
	case ".ts", ".cts", ".mts":
		return ScriptKindTS
	case ".tsx":
		return ScriptKindTSX
	}
	return ScriptKindUnknown
}

// ResolveScriptKind applies the default used when a caller supplied no
// override and inference failed: treat the file as TS.
func ResolveScriptKind(fileName string, kind ScriptKind) ScriptKind {
	if kind != ScriptKindUnknown {
		return kind
	}
	if inferred := GetScriptKindFromFileName(fileName); inferred != ScriptKindUnknown {
		return inferred
	}
	return ScriptKindTS
}

// GetLanguageVariant derives the grammar mode from the script kind. JS
// files get the JSX variant too, since JSX inside .js is common and the
// standard grammar is a strict subset.
func GetLanguageVariant(kind ScriptKind) LanguageVariant {
	switch kind {
	case ScriptKindJSX, ScriptKindTSX, ScriptKindJS:
		return LanguageVariantJSX
	}
	return LanguageVariantStandard
}

// IsDeclarationFileName recognizes the .d.ts suffix family along with the
// legacy `name.d.<anything>.ts` convention.
func IsDeclarationFileName(fileName string) bool {
	lower := strings.ToLower(fileName)
	if strings.HasSuffix(lower, ".d.ts") ||
		strings.HasSuffix(lower, ".d.mts") ||
		strings.HasSuffix(lower, ".d.cts") {
		return true
	}
	// name.d.something.ts
	if strings.HasSuffix(lower, ".ts") {
		base := lower[:len(lower)-3]
		if i := strings.LastIndexByte(base, '.'); i > 0 {
			return strings.HasSuffix(base[:i], ".d")
		}
	}
	return false
}

// GetRootLength returns the length of the root portion of a path: "/"
// for POSIX absolute paths, "//server/" for UNC-style paths, "c:/" or
// "c:" for drive-letter paths, and the full "scheme://authority/" prefix
// for URI-style paths. Relative paths have a zero-length root.
func GetRootLength(path string) int {
	if path == "" {
		return 0
	}
	if path[0] == '/' || path[0] == '\\' {
		if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
			// UNC: //server/share
			rest := path[2:]
			sep := strings.IndexAny(rest, "/\\")
			if sep < 0 {
				return len(path)
			}
			return 2 + sep + 1
		}
		return 1
	}
	if len(path) >= 2 && isVolumeChar(path[0]) && path[1] == ':' {
		if len(path) > 2 && (path[2] == '/' || path[2] == '\\') {
			return 3
		}
		return 2
	}
	if i := strings.Index(path, "://"); i > 0 && isSchemeName(path[:i]) {
		scheme := path[:i]
		rest := path[i+3:]
		authorityEnd := strings.IndexByte(rest, '/')
		if authorityEnd < 0 {
			return len(path)
		}
		if scheme == "file" && authorityEnd == 0 {
			// file:///c:/... keeps the drive in the root.
			after := rest[1:]
			if len(after) >= 2 && isVolumeChar(after[0]) && after[1] == ':' {
				return i + 3 + 1 + 2
			}
		}
		return i + 3 + authorityEnd + 1
	}
	return 0
}

func isVolumeChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isSchemeName(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !(ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
			ch >= '0' && ch <= '9' || ch == '+' || ch == '-' || ch == '.') {
			return false
		}
	}
	return len(s) > 0
}

// NormalizePath converts backslashes to forward slashes and resolves
// "." and ".." segments without escaping the path root.
func NormalizePath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	rootLength := GetRootLength(path)
	root := path[:rootLength]
	rest := path[rootLength:]

	var segments []string
	for _, segment := range strings.Split(rest, "/") {
		switch segment {
		case "", ".":
			// drop
		case "..":
			if n := len(segments); n > 0 && segments[n-1] != ".." {
				segments = segments[:n-1]
			} else if rootLength == 0 {
				segments = append(segments, segment)
			}
		default:
			segments = append(segments, segment)
		}
	}

	normalized := root + strings.Join(segments, "/")
	if normalized == "" {
		return "."
	}
	return normalized
}
