// internal/parser/parser.go
package parser

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sstent/fittrack-go/internal/packet"
)

// Parser extracts sensor packets from a packet file.
type Parser interface {
	ParseFile(filename string) ([]packet.Packet, error)
}

// CSV Parser Implementation
//
// One packet per record: CODE,v1,v2,...
// Blank lines and lines starting with # are skipped.
type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

func (p *CSVParser) ParseFile(filename string) ([]packet.Packet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	packets, err := p.parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return packets, nil
}

func (p *CSVParser) ParseData(data []byte) ([]packet.Packet, error) {
	return p.parse(bytes.NewReader(data))
}

func (p *CSVParser) parse(r io.Reader) ([]packet.Packet, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1 // arity differs per workout code
	reader.TrimLeadingSpace = true

	var packets []packet.Packet
	no := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		no++

		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}

		pkt := packet.Packet{Type: strings.TrimSpace(record[0])}
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w: %q", no, packet.ErrInvalidFieldType, field)
			}
			pkt.Data = append(pkt.Data, v)
		}
		packets = append(packets, pkt)
	}

	return packets, nil
}

// JSON Parser Implementation
//
// Expects an array of {"workout_type": "...", "data": [...]} objects.
// Raw values stay loosely typed so packet.Decode rejects non-numeric ones.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) ParseFile(filename string) ([]packet.Packet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	packets, err := p.ParseData(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return packets, nil
}

func (p *JSONParser) ParseData(data []byte) ([]packet.Packet, error) {
	var packets []packet.Packet
	if err := json.Unmarshal(data, &packets); err != nil {
		return nil, fmt.Errorf("failed to decode packet JSON: %w", err)
	}
	return packets, nil
}
