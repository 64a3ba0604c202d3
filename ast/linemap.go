package ast

import "sort"

// ComputeLineStarts returns the byte offset of the start of every line.
func ComputeLineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		case '\n':
			starts = append(starts, i+1)
		}
	}
	return starts
}

// LineStarts returns the file's line-start table, computing it on first
// use.
func (f *SourceFile) LineStarts() []int {
	if f.lineStarts == nil {
		f.lineStarts = ComputeLineStarts(f.Text)
	}
	return f.lineStarts
}

// LineAndCharacter converts a byte offset into a zero-based line and
// column pair.
func (f *SourceFile) LineAndCharacter(pos int) (line, character int) {
	starts := f.LineStarts()
	line = sort.Search(len(starts), func(i int) bool { return starts[i] > pos }) - 1
	if line < 0 {
		line = 0
	}
	return line, pos - starts[line]
}
