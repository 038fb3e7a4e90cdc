// internal/parser/factory.go
package parser

import (
	"fmt"
	"path/filepath"
)

// NewParser creates a parser based on file extension or content. The
// athlete profile is only consulted by the FIT importer.
func NewParser(filename string, profile AthleteProfile) (Parser, error) {
	// First try by extension
	ext := filepath.Ext(filename)
	switch ext {
	case ".csv", ".txt":
		return NewCSVParser(), nil
	case ".json":
		return NewJSONParser(), nil
	case ".fit":
		return NewFITParser(profile), nil
	}

	// If extension doesn't match, detect by content
	fileType, err := DetectFileType(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	switch fileType {
	case FileTypeCSV:
		return NewCSVParser(), nil
	case FileTypeJSON:
		return NewJSONParser(), nil
	case FileTypeFIT:
		return NewFITParser(profile), nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}
}

// NewParserFromData creates a parser based on file content alone.
func NewParserFromData(data []byte, profile AthleteProfile) (Parser, error) {
	switch fileType := DetectFileTypeFromData(data); fileType {
	case FileTypeCSV:
		return NewCSVParser(), nil
	case FileTypeJSON:
		return NewJSONParser(), nil
	case FileTypeFIT:
		return NewFITParser(profile), nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}
}
