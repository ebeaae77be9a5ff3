// SPDX-License-Identifier: Apache-2.0

package diag

// Severity classifies how seriously a Reporter should treat an Exception.
// Lexical failures are always fatal; deprecations are fatal only when the
// caller's configuration says to treat them as errors.
type Severity uint8

const (
	SeverityLexical Severity = iota
	SeverityDeprecation
)

const (
	CodeUnknownFatal            = "V0000"
	CodeFileNotFound            = "V0001"
	CodeUnsupportedFileSystemOp = "V0002"
	CodePermissionDenied        = "V0003"
	CodeUnexpectedEOF           = "V0004"

	CodeInvalidEscape         = "L0001"
	CodeUnterminatedString    = "L0002"
	CodeUnterminatedComment   = "L0003"
	CodeInvalidNumber         = "L0004"
	CodeIntegerOverflow       = "L0005"
	CodeInvalidIdentifierChar = "L0006"
	CodeInvalidUTF8           = "L0007"
	CodeInvalidLineDirective  = "L0008"
	CodeOddHexStringDigits    = "L0009"
	CodeBadRadixDigit         = "L0010"
	CodeWhitespaceDelimiter   = "L0011"
	CodeUnterminatedChar      = "L0012"
	CodeInvalidToken          = "L0013"

	CodeDeprecatedOctal      = "D0001"
	CodeDeprecatedSuffixCase = "D0002"
)

// severityByCode lets Reporter classify an Exception that was built with New
// rather than with a severity-aware constructor (e.g. one Wrapped from a
// lower layer). Anything not listed here defaults to SeverityLexical, the
// conservative choice: an unrecognized code should not be silently ignored.
var severityByCode = map[string]Severity{
	CodeDeprecatedOctal:      SeverityDeprecation,
	CodeDeprecatedSuffixCase: SeverityDeprecation,
}
