package parser

import (
	"strings"
	"testing"

	"github.com/dhamidi/yomi/ast"
	"github.com/dhamidi/yomi/syntax"
	"github.com/dhamidi/yomi/tspath"
)

func parse(t *testing.T, text string) *ast.SourceFile {
	t.Helper()
	return ParseSourceFile("main.ts", text, tspath.ScriptKindUnknown)
}

func parseTSX(t *testing.T, text string) *ast.SourceFile {
	t.Helper()
	return ParseSourceFile("main.tsx", text, tspath.ScriptKindUnknown)
}

func requireNoDiagnostics(t *testing.T, file *ast.SourceFile) {
	t.Helper()
	for _, d := range file.Diagnostics {
		t.Errorf("unexpected diagnostic at %d: %s", d.Start, d.Format())
	}
}

func requireKind(t *testing.T, n *ast.Node, kind syntax.Kind) {
	t.Helper()
	if n == nil {
		t.Fatalf("node is nil, want %v", kind)
	}
	if n.Kind != kind {
		t.Fatalf("node kind is %v, want %v", n.Kind, kind)
	}
}

func firstStatement(t *testing.T, file *ast.SourceFile) *ast.Node {
	t.Helper()
	if len(file.Statements()) == 0 {
		t.Fatal("file has no statements")
	}
	return file.Statements()[0]
}

func TestParsePrecedence(t *testing.T) {
	file := parse(t, "1 + 2 * 3;")
	requireNoDiagnostics(t, file)
	stmt := firstStatement(t, file)
	requireKind(t, stmt, syntax.KindExpressionStatement)
	sum := stmt.Children[0]
	requireKind(t, sum, syntax.KindBinaryExpression)
	if len(sum.Children) != 3 {
		t.Fatalf("binary expression has %d children, want 3", len(sum.Children))
	}
	requireKind(t, sum.Children[0], syntax.KindNumericLiteral)
	requireKind(t, sum.Children[1], syntax.KindPlusToken)
	product := sum.Children[2]
	requireKind(t, product, syntax.KindBinaryExpression)
	requireKind(t, product.Children[1], syntax.KindAsteriskToken)
	if product.Children[0].Text != "2" || product.Children[2].Text != "3" {
		t.Errorf("multiplication operands are %q and %q, want 2 and 3",
			product.Children[0].Text, product.Children[2].Text)
	}
}

func TestParseRightAssociativity(t *testing.T) {
	t.Run("assignment", func(t *testing.T) {
		file := parse(t, "a = b = c;")
		requireNoDiagnostics(t, file)
		outer := firstStatement(t, file).Children[0]
		requireKind(t, outer, syntax.KindBinaryExpression)
		requireKind(t, outer.Children[1], syntax.KindEqualsToken)
		requireKind(t, outer.Children[2], syntax.KindBinaryExpression)
	})
	t.Run("exponentiation", func(t *testing.T) {
		file := parse(t, "2 ** 3 ** 2;")
		requireNoDiagnostics(t, file)
		outer := firstStatement(t, file).Children[0]
		requireKind(t, outer, syntax.KindBinaryExpression)
		requireKind(t, outer.Children[0], syntax.KindNumericLiteral)
		requireKind(t, outer.Children[2], syntax.KindBinaryExpression)
	})
}

func TestExportMakesFileAModule(t *testing.T) {
	file := parse(t, "export const answer = 42;")
	requireNoDiagnostics(t, file)
	stmt := firstStatement(t, file)
	requireKind(t, stmt, syntax.KindVariableStatement)
	if ast.GetModifierFlags(stmt)&ast.ModifierFlagsExport == 0 {
		t.Error("statement should carry the export modifier")
	}
	if ast.GetExternalModuleIndicator(file) != stmt {
		t.Error("the exported statement should be the module indicator")
	}

	plain := parse(t, "const answer = 42;")
	if ast.GetExternalModuleIndicator(plain) != nil {
		t.Error("a file without imports or exports is not a module")
	}
}

func TestUnterminatedStringRecovery(t *testing.T) {
	text := "const s = 'abc\nlet t = 1;"
	file := parse(t, text)
	if len(file.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(file.Diagnostics), file.Diagnostics)
	}
	d := file.Diagnostics[0]
	if d.Message != "Unterminated string literal" {
		t.Errorf("message %q", d.Message)
	}
	if d.Start != 10 {
		t.Errorf("diagnostic starts at %d, want 10", d.Start)
	}
	if len(file.Statements()) != 2 {
		t.Fatalf("got %d statements, want 2 (parsing recovered)", len(file.Statements()))
	}
	// The broken literal ends at the line break, not past it.
	decl := firstStatement(t, file).Children[0].Children[0]
	requireKind(t, decl, syntax.KindVariableDeclaration)
	lit := decl.Children[len(decl.Children)-1]
	requireKind(t, lit, syntax.KindStringLiteral)
	if lit.End != 14 {
		t.Errorf("literal ends at %d, want 14", lit.End)
	}
}

func TestLexicalErrorsSetErrorFlags(t *testing.T) {
	file := parse(t, "const s = 'abc\nconst t = 1;")
	if len(file.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(file.Diagnostics))
	}
	first := firstStatement(t, file)
	if !ast.ContainsParseError(first) {
		t.Error("the statement holding the broken literal should carry the error flag")
	}
	if !ast.ContainsParseError(&file.Node) {
		t.Error("the file should report the error without re-scanning diagnostics")
	}
	second := file.Statements()[1]
	if second.Flags&ast.NodeFlagsThisNodeHasError != 0 {
		t.Error("the recovered statement should be clean")
	}
}

func TestConflictMarkersAreTrivia(t *testing.T) {
	text := "const a = 1;\n" +
		"<<<<<<< HEAD\n" +
		"const b = 2;\n" +
		"=======\n" +
		"const b = 3;\n" +
		">>>>>>> feature\n" +
		"const c = 4;\n"
	file := parse(t, text)
	if len(file.Diagnostics) != 3 {
		t.Fatalf("got %d diagnostics, want 3", len(file.Diagnostics))
	}
	for _, d := range file.Diagnostics {
		if d.Message != "Merge conflict marker encountered" {
			t.Errorf("message %q", d.Message)
		}
	}
	if len(file.Statements()) != 3 {
		t.Fatalf("got %d statements, want 3 (HEAD side plus surrounding code)", len(file.Statements()))
	}
	for _, stmt := range file.Statements() {
		requireKind(t, stmt, syntax.KindVariableStatement)
	}
}

func TestBinaryBufferParsesAsEmptyFile(t *testing.T) {
	file := parse(t, "�\x00\x01\x02 not source text")
	if len(file.Statements()) != 0 {
		t.Errorf("got %d statements, want 0", len(file.Statements()))
	}
	if len(file.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(file.Diagnostics))
	}
	if !strings.Contains(file.Diagnostics[0].Message, "binary") {
		t.Errorf("message %q should mention a binary file", file.Diagnostics[0].Message)
	}
	if file.EndOfFileToken == nil {
		t.Error("even an empty parse owns an end-of-file token")
	}
}

func TestDeclarationFileDetection(t *testing.T) {
	file := ParseSourceFile("lib.d.ts", "declare const version: string;", tspath.ScriptKindUnknown)
	if !file.IsDeclarationFile {
		t.Error("lib.d.ts should be recognized as a declaration file")
	}
	if file.Flags&ast.NodeFlagsAmbient == 0 {
		t.Error("declaration files parse in an ambient context")
	}

	plain := parse(t, "const version = '1';")
	if plain.IsDeclarationFile {
		t.Error("main.ts is not a declaration file")
	}
}

// Every node must span a valid range nested inside its parent, and
// children must not overlap going left to right.
func TestSpanContainment(t *testing.T) {
	text := `import { readFile } from "fs";

export async function main(args: string[]): Promise<number> {
	const [first = "default", ...rest] = args;
	let total = 0;
	for (const arg of rest) {
		total += arg.length ?? 0;
	}
	if (total > 100) {
		throw new Error(` + "`too long: ${total}`" + `);
	}
	return total;
}

class Counter<T extends object> implements Iterable<T> {
	#items: T[] = [];
	static empty = new Counter();
	get size(): number { return this.#items.length; }
	add(item: T): this {
		this.#items.push(item);
		return this;
	}
}

type Result<T> = { ok: true; value: T } | { ok: false; error: string };
`
	file := parse(t, text)
	requireNoDiagnostics(t, file)
	var check func(n *ast.Node)
	check = func(n *ast.Node) {
		if n.Pos > n.End {
			t.Errorf("%v spans %d..%d, start past end", n.Kind, n.Pos, n.End)
		}
		prev := n.Pos
		for _, group := range [][]*ast.Node{n.Modifiers, n.Children} {
			for _, child := range group {
				if child.Pos < n.Pos || child.End > n.End {
					t.Errorf("%v child %v at %d..%d escapes parent %d..%d",
						n.Kind, child.Kind, child.Pos, child.End, n.Pos, n.End)
				}
				if child.Pos < prev {
					t.Errorf("%v child %v at %d overlaps its predecessor ending at %d",
						n.Kind, child.Kind, child.Pos, prev)
				}
				prev = child.End
				check(child)
			}
		}
	}
	check(&file.Node)
	if file.End != len(text) {
		t.Errorf("file ends at %d, want %d", file.End, len(text))
	}
}

func TestMissingNodesAreZeroWidth(t *testing.T) {
	file := parse(t, "const = 1;")
	if len(file.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	decl := firstStatement(t, file).Children[0].Children[0]
	requireKind(t, decl, syntax.KindVariableDeclaration)
	name := decl.Children[0]
	if !ast.NodeIsMissing(name) {
		t.Errorf("declaration name at %d..%d should be missing", name.Pos, name.End)
	}
	if !ast.ContainsParseError(&file.Node) {
		t.Error("the error flag should propagate to the root")
	}
}

func TestDiagnosticsNotDuplicatedAtSamePosition(t *testing.T) {
	file := parse(t, "const x = ;")
	seen := map[int]int{}
	for _, d := range file.Diagnostics {
		seen[d.Start]++
	}
	for start, count := range seen {
		if count > 1 {
			t.Errorf("%d diagnostics share start %d", count, start)
		}
	}
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	t.Run("line break separates statements", func(t *testing.T) {
		file := parse(t, "a\nb")
		requireNoDiagnostics(t, file)
		if len(file.Statements()) != 2 {
			t.Fatalf("got %d statements, want 2", len(file.Statements()))
		}
	})
	t.Run("close brace terminates", func(t *testing.T) {
		file := parse(t, "function f() { return 1 }")
		requireNoDiagnostics(t, file)
	})
	t.Run("missing semicolon on one line is an error", func(t *testing.T) {
		file := parse(t, "let a = 1 let b = 2")
		if len(file.Diagnostics) == 0 {
			t.Error("two statements on one line need a separator")
		}
	})
	t.Run("return keeps its argument on the same line", func(t *testing.T) {
		file := parse(t, "function f() {\n\treturn\n\t1\n}")
		requireNoDiagnostics(t, file)
		body := firstStatement(t, file).Children[len(firstStatement(t, file).Children)-1]
		requireKind(t, body, syntax.KindBlock)
		ret := body.Children[0]
		requireKind(t, ret, syntax.KindReturnStatement)
		if len(ret.Children) != 0 {
			t.Error("a line break after return inserts a semicolon")
		}
	})
	t.Run("throw requires its argument on the same line", func(t *testing.T) {
		file := parse(t, "function f() {\n\tthrow\n\tnew Error()\n}")
		if len(file.Diagnostics) == 0 {
			t.Error("a line break after throw is an error")
		}
	})
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind syntax.Kind
	}{
		{"variable", "let x = 1;", syntax.KindVariableStatement},
		{"if", "if (a) b(); else c();", syntax.KindIfStatement},
		{"for", "for (let i = 0; i < 10; i++) {}", syntax.KindForStatement},
		{"for-of", "for (const x of xs) {}", syntax.KindForOfStatement},
		{"for-in", "for (const k in obj) {}", syntax.KindForInStatement},
		{"while", "while (true) {}", syntax.KindWhileStatement},
		{"do-while", "do {} while (cond);", syntax.KindDoStatement},
		{"switch", "switch (x) { case 1: break; default: break; }", syntax.KindSwitchStatement},
		{"try", "try { f(); } catch (e) { g(); } finally { h(); }", syntax.KindTryStatement},
		{"labeled", "outer: for (;;) { break outer; }", syntax.KindLabeledStatement},
		{"function", "function f(a, b = 1, ...rest) {}", syntax.KindFunctionDeclaration},
		{"async function", "async function f() { await g(); }", syntax.KindFunctionDeclaration},
		{"generator", "function* gen() { yield 1; }", syntax.KindFunctionDeclaration},
		{"class", "class A extends B { constructor() { super(); } }", syntax.KindClassDeclaration},
		{"abstract class", "abstract class A { abstract m(): void; }", syntax.KindClassDeclaration},
		{"interface", "interface I { m(): void; readonly p: string; [k: string]: unknown; }", syntax.KindInterfaceDeclaration},
		{"type alias", "type Pair<A, B> = [A, B];", syntax.KindTypeAliasDeclaration},
		{"enum", "enum Color { Red, Green = 2, Blue }", syntax.KindEnumDeclaration},
		{"const enum", "const enum Flag { On, Off }", syntax.KindEnumDeclaration},
		{"namespace", "namespace a.b { export const c = 1; }", syntax.KindModuleDeclaration},
		{"declare global", "declare global { interface Window {} }", syntax.KindModuleDeclaration},
		{"import", "import def, { named as alias } from 'mod';", syntax.KindImportDeclaration},
		{"namespace import", "import * as ns from 'mod';", syntax.KindImportDeclaration},
		{"type-only import", "import type { T } from 'mod';", syntax.KindImportDeclaration},
		{"import equals", "import fs = require('fs');", syntax.KindImportEqualsDeclaration},
		{"import attributes", "import data from './d.json' with { type: 'json' };", syntax.KindImportDeclaration},
		{"export named", "export { a, b as c };", syntax.KindExportDeclaration},
		{"export star", "export * as ns from 'mod';", syntax.KindExportDeclaration},
		{"export assignment", "export = thing;", syntax.KindExportAssignment},
		{"export default", "export default class {}", syntax.KindExportAssignment},
		{"debugger", "debugger;", syntax.KindDebuggerStatement},
		{"empty", ";", syntax.KindEmptyStatement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := parse(t, tt.text)
			requireNoDiagnostics(t, file)
			requireKind(t, firstStatement(t, file), tt.kind)
		})
	}
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind syntax.Kind
	}{
		{"arrow", "const f = (a, b) => a + b;", syntax.KindArrowFunction},
		{"simple arrow", "const f = x => x;", syntax.KindArrowFunction},
		{"async arrow", "const f = async x => x;", syntax.KindArrowFunction},
		{"conditional", "const v = a ? b : c;", syntax.KindConditionalExpression},
		{"template", "const t = `a${x}b`;", syntax.KindTemplateExpression},
		{"tagged template", "const t = tag`x${y}`;", syntax.KindTaggedTemplateExpression},
		{"regex", "const r = /ab+c/gi;", syntax.KindRegularExpressionLiteral},
		{"new", "const o = new Map();", syntax.KindNewExpression},
		{"object", "const o = { a, b: 1, [k]: 2, ...rest, m() {} };", syntax.KindObjectLiteralExpression},
		{"array", "const a = [1, , 3];", syntax.KindArrayLiteralExpression},
		{"as", "const n = x as number;", syntax.KindAsExpression},
		{"satisfies", "const n = x satisfies number;", syntax.KindSatisfiesExpression},
		{"non-null", "const n = x!;", syntax.KindNonNullExpression},
		{"typeof", "const t = typeof x;", syntax.KindTypeOfExpression},
		{"void", "const v = void 0;", syntax.KindVoidExpression},
		{"prefix", "const p = -x;", syntax.KindPrefixUnaryExpression},
		{"postfix", "x++;", syntax.KindPostfixUnaryExpression},
		{"class expression", "const C = class extends B {};", syntax.KindClassExpression},
		{"function expression", "const f = function named() {};", syntax.KindFunctionExpression},
		{"import meta", "const u = import.meta;", syntax.KindMetaProperty},
		{"dynamic import", "const m = import('mod');", syntax.KindCallExpression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := parse(t, tt.text)
			requireNoDiagnostics(t, file)
			stmt := firstStatement(t, file)
			var found bool
			ast.Inspect(&file.Node, func(n *ast.Node) bool {
				if n != nil && n.Kind == tt.kind {
					found = true
				}
				return !found
			})
			if !found {
				t.Errorf("no %v in tree:\n%s", tt.kind, stmt)
			}
		})
	}
}

func TestOptionalChaining(t *testing.T) {
	file := parse(t, "a?.b?.[0]?.();")
	requireNoDiagnostics(t, file)
	expr := firstStatement(t, file).Children[0]
	requireKind(t, expr, syntax.KindCallExpression)
}

func TestDivisionIsNotRegex(t *testing.T) {
	file := parse(t, "const q = a / b / c;")
	requireNoDiagnostics(t, file)
	var regex bool
	ast.Inspect(&file.Node, func(n *ast.Node) bool {
		if n != nil && n.Kind == syntax.KindRegularExpressionLiteral {
			regex = true
		}
		return true
	})
	if regex {
		t.Error("division must not be scanned as a regular expression")
	}
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind syntax.Kind
	}{
		{"union", "type T = string | number;", syntax.KindUnionType},
		{"intersection", "type T = A & B;", syntax.KindIntersectionType},
		{"array", "let a: string[];", syntax.KindArrayType},
		{"tuple", "let t: [string, number?];", syntax.KindTupleType},
		{"function type", "let f: (a: string) => void;", syntax.KindFunctionType},
		{"constructor type", "let c: new () => object;", syntax.KindConstructorType},
		{"conditional", "type T<U> = U extends string ? 1 : 0;", syntax.KindConditionalType},
		{"infer", "type E<T> = T extends Array<infer U> ? U : never;", syntax.KindInferType},
		{"mapped", "type R<T> = { readonly [K in keyof T]?: T[K] };", syntax.KindMappedType},
		{"indexed access", "type V = Config['port'];", syntax.KindIndexedAccessType},
		{"keyof", "type K = keyof Config;", syntax.KindTypeOperator},
		{"typeof query", "let c: typeof console;", syntax.KindTypeQuery},
		{"literal type", "type One = 1;", syntax.KindLiteralType},
		{"template literal type", "type Id = `id-${string}`;", syntax.KindTemplateLiteralType},
		{"import type", "type M = import('mod').Thing;", syntax.KindImportType},
		{"predicate", "function isStr(x: unknown): x is string { return true; }", syntax.KindTypePredicate},
		{"asserts", "function check(x: unknown): asserts x is string {}", syntax.KindTypePredicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := parse(t, tt.text)
			requireNoDiagnostics(t, file)
			var found bool
			ast.Inspect(&file.Node, func(n *ast.Node) bool {
				if n != nil && n.Kind == tt.kind {
					found = true
				}
				return !found
			})
			if !found {
				t.Errorf("no %v in tree", tt.kind)
			}
		})
	}
}

func TestTypeArgumentsSplitGreaterThan(t *testing.T) {
	file := parse(t, "let m: Map<string, Array<number>>;")
	requireNoDiagnostics(t, file)
}

func TestCallWithTypeArguments(t *testing.T) {
	file := parse(t, "f<string>(x); a < b > c;")
	requireNoDiagnostics(t, file)
	if len(file.Statements()) != 2 {
		t.Fatalf("got %d statements, want 2", len(file.Statements()))
	}
	requireKind(t, file.Statements()[0].Children[0], syntax.KindCallExpression)
	// Without a call, the angle brackets stay comparison operators.
	requireKind(t, file.Statements()[1].Children[0], syntax.KindBinaryExpression)
}

func TestParseJsx(t *testing.T) {
	t.Run("element with children", func(t *testing.T) {
		file := parseTSX(t, `const v = <div className="row" {...props}>hello {name}</div>;`)
		requireNoDiagnostics(t, file)
		var elem *ast.Node
		ast.Inspect(&file.Node, func(n *ast.Node) bool {
			if n != nil && n.Kind == syntax.KindJsxElement && elem == nil {
				elem = n
			}
			return elem == nil
		})
		if elem == nil {
			t.Fatal("no JsxElement in tree")
		}
		requireKind(t, elem.Children[0], syntax.KindJsxOpeningElement)
		requireKind(t, elem.Children[len(elem.Children)-1], syntax.KindJsxClosingElement)
	})
	t.Run("self closing", func(t *testing.T) {
		file := parseTSX(t, "const v = <input disabled />;")
		requireNoDiagnostics(t, file)
	})
	t.Run("fragment", func(t *testing.T) {
		file := parseTSX(t, "const v = <><a /><b /></>;")
		requireNoDiagnostics(t, file)
	})
	t.Run("nested elements", func(t *testing.T) {
		file := parseTSX(t, "const v = <ul>{items.map(i => <li key={i}>{i}</li>)}</ul>;")
		requireNoDiagnostics(t, file)
	})
	t.Run("namespaced and dotted names", func(t *testing.T) {
		file := parseTSX(t, "const v = <svg:rect />; const w = <Theme.Provider />;")
		requireNoDiagnostics(t, file)
	})
	t.Run("mismatched closing tag", func(t *testing.T) {
		file := parseTSX(t, "const v = <div></span>;")
		var found bool
		for _, d := range file.Diagnostics {
			if strings.Contains(d.Format(), "closing tag for 'div'") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a mismatched-tag diagnostic, got %v", file.Diagnostics)
		}
	})
	t.Run("ts file treats angle bracket as type assertion", func(t *testing.T) {
		file := parse(t, "const v = <string>x;")
		requireNoDiagnostics(t, file)
		var found bool
		ast.Inspect(&file.Node, func(n *ast.Node) bool {
			if n != nil && n.Kind == syntax.KindTypeAssertionExpression {
				found = true
			}
			return !found
		})
		if !found {
			t.Error("in .ts files <T>x is a type assertion")
		}
	})
}

func TestErrorRecoveryKeepsGoing(t *testing.T) {
	file := parse(t, "const a = ;\nconst b = 2;\nfunction (x) {}\nconst c = 3;")
	if len(file.Diagnostics) == 0 {
		t.Fatal("expected diagnostics")
	}
	var names []string
	for _, stmt := range file.Statements() {
		if stmt.Kind == syntax.KindVariableStatement {
			names = append(names, stmt.Children[0].Children[0].Children[0].Text)
		}
	}
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("recovered variable statements %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("statement %d is %q, want %q", i, names[i], want[i])
		}
	}
}

func TestGarbageInputTerminates(t *testing.T) {
	inputs := []string{
		"%%%%",
		"((((((((((",
		"}}}}",
		"class {",
		"<",
		"`unterminated template",
		"a.b.",
		"import",
	}
	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			file := parse(t, text)
			if file.EndOfFileToken == nil {
				t.Error("parse must reach the end of the buffer")
			}
		})
	}
}

func TestShebangIsLeadingTrivia(t *testing.T) {
	file := parse(t, "#!/usr/bin/env node\nconsole.log(1);\n")
	requireNoDiagnostics(t, file)
	stmt := firstStatement(t, file)
	if stmt.Pos != 0 {
		t.Errorf("first statement starts at %d, the shebang belongs to its leading trivia", stmt.Pos)
	}
}

func TestEndOfFileToken(t *testing.T) {
	file := parse(t, "let x = 1;\n// trailing comment\n")
	eof := file.EndOfFileToken
	if eof == nil {
		t.Fatal("missing end-of-file token")
	}
	if eof.Kind != syntax.KindEndOfFile {
		t.Errorf("kind %v", eof.Kind)
	}
	if eof.End != len(file.Text) {
		t.Errorf("eof ends at %d, want %d", eof.End, len(file.Text))
	}
	if eof.Pos != 10 {
		t.Errorf("eof starts at %d, the trailing comment is its leading trivia", eof.Pos)
	}
}

func TestTopLevelSpansTileTheBuffer(t *testing.T) {
	sources := []string{
		"let x = 1;",
		"#!/usr/bin/env node\nconst a = 1; // one\nconst b = 2;\n",
		"/* header */\nfunction f() {\n  return 1;\n}\n// trailing\n",
		"import x from './x';\nexport default x;\n",
		"",
	}
	for _, text := range sources {
		file := parse(t, text)
		var sb strings.Builder
		for _, stmt := range file.Statements() {
			sb.WriteString(text[stmt.Pos:stmt.End])
		}
		eof := file.EndOfFileToken
		sb.WriteString(text[eof.Pos:eof.End])
		if sb.String() != text {
			t.Errorf("top-level spans of %q rebuild %q", text, sb.String())
		}
	}
}

func TestImportMetaModuleIndicator(t *testing.T) {
	file := parse(t, "const url = import.meta.url;")
	requireNoDiagnostics(t, file)
	if file.Flags&ast.NodeFlagsPossiblyContainsImportMeta == 0 {
		t.Error("the scanner pre-flag should be transferred to the file")
	}
	indicator := ast.GetExternalModuleIndicator(file)
	if indicator == nil || indicator.Kind != syntax.KindMetaProperty {
		t.Errorf("got %v, want the import.meta meta-property", indicator)
	}
}

func TestAmbientFlagOnDeclare(t *testing.T) {
	file := parse(t, "declare function f(): void;")
	requireNoDiagnostics(t, file)
	stmt := firstStatement(t, file)
	if ast.GetModifierFlags(stmt)&ast.ModifierFlagsAmbient == 0 {
		t.Error("declare should set the ambient modifier flag")
	}
}

func TestBindingPatterns(t *testing.T) {
	file := parse(t, "const { a, b: renamed, c = 1, ...rest } = obj;\nconst [x, , y = 2, ...zs] = arr;")
	requireNoDiagnostics(t, file)
	if len(file.Statements()) != 2 {
		t.Fatalf("got %d statements, want 2", len(file.Statements()))
	}
	objPattern := file.Statements()[0].Children[0].Children[0].Children[0]
	requireKind(t, objPattern, syntax.KindObjectBindingPattern)
	arrPattern := file.Statements()[1].Children[0].Children[0].Children[0]
	requireKind(t, arrPattern, syntax.KindArrayBindingPattern)
	var omitted bool
	for _, el := range arrPattern.Children {
		if el.Kind == syntax.KindOmittedExpression {
			omitted = true
		}
	}
	if !omitted {
		t.Error("the array pattern elision should be an omitted expression")
	}
}

func TestParentLinks(t *testing.T) {
	file := parse(t, "function f() { return 1 + 2; }")
	requireNoDiagnostics(t, file)
	var bad int
	ast.Inspect(&file.Node, func(n *ast.Node) bool {
		if n == nil {
			return false
		}
		for _, c := range n.Children {
			if c.Parent != n {
				bad++
			}
		}
		return true
	})
	if bad != 0 {
		t.Errorf("%d children have stale parent links", bad)
	}
}
