package plan

import "strings"

// maxCellLen keeps cells under the xlsx hard limit of 32,767 characters.
const maxCellLen = 32000

// cellReplacements is applied in order; the triple-character operator
// forms must run before the double-character forms, and the assertion
// artifacts ("expect[", "].toBe[") only exist after bracket substitution.
var cellReplacements = [][2]string{
	{"undefined", "undefined value"},
	{"\n", " "},
	{"\r", " "},
	{"\t", " "},
	{"(", "["},
	{")", "]"},
	{"{", "["},
	{"}", "]"},
	{"===", "equals"},
	{"!==", "not equals"},
	{"==", "equals"},
	{"!=", "not equals"},
	{"expect[", "expect "},
	{"].toBe[", " to be "},
}

// CleanCellText makes arbitrary text safe for a spreadsheet cell: control
// characters are stripped, characters and operator-like substrings that
// upset cell parsing are rewritten, and the result is capped at maxCellLen
// characters. Always returns a string; empty input yields empty output.
func CleanCellText(s string) string {
	s = strings.Map(dropControl, s)
	for _, r := range cellReplacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	if runes := []rune(s); len(runes) > maxCellLen {
		s = string(runes[:maxCellLen]) + "..."
	}
	return s
}

// dropControl removes C0 and C1 control characters (0x00-0x1F, 0x7F-0x9F).
func dropControl(r rune) rune {
	if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
		return -1
	}
	return r
}
