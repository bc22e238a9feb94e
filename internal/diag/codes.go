package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Pattern compilation
	PatternSyntax Code = 1001

	// Context window arguments
	InvalidContextLength Code = 2001

	// Input and output
	IOOpenInput   Code = 3001
	IOReadInput   Code = 3002
	IOWriteOutput Code = 3003

	// Line decoding
	LineDecoding Code = 4001

	// Defaults file
	ConfigParse   Code = 5001
	ConfigInvalid Code = 5002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:          "unknown error",
		PatternSyntax:        "invalid pattern",
		InvalidContextLength: "invalid context length",
		IOOpenInput:          "cannot open input",
		IOReadInput:          "cannot read input",
		IOWriteOutput:        "cannot write output",
		LineDecoding:         "line is not valid UTF-8",
		ConfigParse:          "cannot parse config file",
		ConfigInvalid:        "invalid config value",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("PAT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CTX%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("DEC%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

// Severity returns the fixed severity of the code.
func (c Code) Severity() Severity {
	if c == LineDecoding {
		return SevWarning
	}
	return SevError
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
