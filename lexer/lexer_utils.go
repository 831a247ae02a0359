/*
File    : golox/lexer/lexer_utils.go
Package : lexer
*/
package lexer

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c can start or continue an identifier:
// letters and underscore.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isAlphaNumeric reports whether c can appear in the tail of an identifier.
func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
