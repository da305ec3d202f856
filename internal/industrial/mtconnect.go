package industrial

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/neuroncore/internal/tensor"
)

// ParseMTConnectCurrent maps an MTConnect "current" document to records.
//
// The first Timestamp, SpindleSpeed, Feedrate and Program elements anywhere
// in the document fill a single MachineState. Missing or unparseable readings
// are left nil; a missing timestamp is 0. Malformed XML fails with
// *tensor.InvalidOperationError.
func ParseMTConnectCurrent(r io.Reader) ([]Record, error) {
	fields := map[string]string{}
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, tensor.InvalidOperationf("mtconnect: %v", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		name := start.Name.Local
		switch name {
		case "Timestamp", "SpindleSpeed", "Feedrate", "Program":
		default:
			continue
		}
		var text string
		if err := dec.DecodeElement(&text, &start); err != nil {
			return nil, tensor.InvalidOperationf("mtconnect %s: %v", name, err)
		}
		if _, seen := fields[name]; !seen {
			fields[name] = strings.TrimSpace(text)
		}
	}

	state := MachineState{
		SpindleRPM: parseReading(fields, "SpindleSpeed"),
		FeedRate:   parseReading(fields, "Feedrate"),
	}
	if ts, err := strconv.ParseInt(fields["Timestamp"], 10, 64); err == nil {
		state.TS = ts
	}
	if program, ok := fields["Program"]; ok {
		state.Program = &program
	}
	return []Record{state}, nil
}

func parseReading(fields map[string]string, name string) *float32 {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return nil
	}
	f := float32(v)
	return &f
}
