// internal/parser/detector.go
package parser

import (
	"bytes"
	"os"
)

type FileType string

const (
	FileTypeCSV     FileType = "csv"
	FileTypeJSON    FileType = "json"
	FileTypeFIT     FileType = "fit"
	FileTypeUnknown FileType = "unknown"
)

func DetectFileType(filename string) (FileType, error) {
	file, err := os.Open(filename)
	if err != nil {
		return FileTypeUnknown, err
	}
	defer file.Close()

	// Read first 512 bytes for detection
	header := make([]byte, 512)
	n, err := file.Read(header)
	if err != nil && n == 0 {
		return FileTypeUnknown, err
	}

	return DetectFileTypeFromData(header[:n]), nil
}

func DetectFileTypeFromData(data []byte) FileType {
	// Check for FIT file signature
	if len(data) >= 12 && bytes.Equal(data[8:12], []byte(".FIT")) {
		return FileTypeFIT
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return FileTypeUnknown
	}
	if trimmed[0] == '[' || trimmed[0] == '{' {
		return FileTypeJSON
	}

	// Anything line-oriented is treated as CSV
	return FileTypeCSV
}
