package kanglex

// keywords is the exact fixed set from spec §4.5.
var keywords = map[string]bool{
	"abstract": true, "and": true, "assures": true, "at": true, "break": true,
	"case": true, "catch": true, "class": true, "constant": true, "continue": true,
	"default": true, "each": true, "else": true, "ensures": true, "exceptions": true,
	"explicit": true, "finalize": true, "for": true, "function": true, "get": true,
	"goto": true, "if": true, "implicit": true, "in": true, "initialize": true,
	"invariants": true, "is": true, "not": true, "of": true, "or": true,
	"out": true, "parameters": true, "private": true, "property": true, "protected": true,
	"public": true, "record": true, "repeat": true, "requires": true, "return": true,
	"returns": true, "self": true, "set": true, "shared": true, "switch": true,
	"throw": true, "to": true, "until": true, "variables": true, "while": true,
	"xor": true,
}

// symbolClasses maps each rune of the allowed symbol alphabet (spec §4.5) to
// the terminal class name a grammar description would reference it by.
var symbolClasses = map[rune]string{
	'+': "plus", '-': "minus", '×': "times", '÷': "divide", '^': "caret",
	'(': "lparen", ')': "rparen", '[': "lbracket", ']': "rbracket",
	'{': "lbrace", '}': "rbrace",
	'=': "eq", '≠': "neq", '<': "lt", '>': "gt", '≤': "le", '≥': "ge",
	'.': "dot", ',': "comma", ':': "colon",
	'→': "arrow_right", '←': "arrow_left", '↑': "arrow_up", '&': "amp",
}
