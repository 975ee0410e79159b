package diag

import "fmt"

// Code identifies a diagnostic category.
type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexMissingOpenTag           Code = 1005

	// I/O and engine
	IOLoadFileError  Code = 4000
	IOWriteFileError Code = 4001
	EngCacheError    Code = 4100
)

var codeIDs = map[Code]string{
	UnknownCode:                 "UNKNOWN",
	LexInfo:                     "LEX0000",
	LexUnknownChar:              "LEX0001",
	LexUnterminatedString:       "LEX0002",
	LexUnterminatedBlockComment: "LEX0003",
	LexBadNumber:                "LEX0004",
	LexMissingOpenTag:           "LEX0005",
	IOLoadFileError:             "IO0001",
	IOWriteFileError:            "IO0002",
	EngCacheError:               "ENG0001",
}

// ID returns the stable textual identifier for the code.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("D%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}
