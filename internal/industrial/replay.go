package industrial

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/born-ml/neuroncore/internal/tensor"
)

// MaxReplayLineSize bounds a single NDJSON line.
const MaxReplayLineSize = 1 << 20

// replayLine is the union of every record field found on a replay line.
type replayLine struct {
	Type       string    `json:"type"`
	TS         int64     `json:"ts"`
	SpindleRPM *float32  `json:"spindle_rpm"`
	FeedRate   *float32  `json:"feed_rate"`
	Program    *string   `json:"program"`
	Alarms     []string  `json:"alarms"`
	Channels   []float32 `json:"channels"`
	ToolID     *string   `json:"tool_id"`
	EventType  string    `json:"event_type"`
}

// ReplaySource reads records from newline-delimited JSON, one object per
// line. Blank lines are skipped.
type ReplaySource struct {
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
}

// NewReplaySource reads records from r.
func NewReplaySource(r io.Reader) *ReplaySource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxReplayLineSize)
	return &ReplaySource{scanner: sc}
}

// OpenReplay opens the replay file at path. The caller must Close it.
func OpenReplay(path string) (*ReplaySource, error) {
	//nolint:gosec // G304: replay path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, tensor.InvalidOperationf("failed opening replay file %s: %v", path, err)
	}
	src := NewReplaySource(f)
	src.closer = f
	return src, nil
}

// Close releases the underlying file, if any.
func (s *ReplaySource) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// Next decodes the next line.
//
// Fails with *tensor.InvalidOperationError for malformed JSON, a missing
// "type" field or an unknown record type.
func (s *ReplaySource) Next() (Record, bool, error) {
	for s.scanner.Scan() {
		s.line++
		text := s.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := decodeReplayLine([]byte(text))
		if err != nil {
			return nil, false, tensor.InvalidOperationf("replay line %d: %v", s.line, err)
		}
		return rec, true, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, false, tensor.InvalidOperationf("failed reading replay line %d: %v", s.line+1, err)
	}
	return nil, false, nil
}

func decodeReplayLine(data []byte) (Record, error) {
	var l replayLine
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}

	switch l.Type {
	case "":
		return nil, errors.New("missing type field")
	case TypeMachineState:
		return MachineState{
			TS:         l.TS,
			SpindleRPM: l.SpindleRPM,
			FeedRate:   l.FeedRate,
			Program:    l.Program,
			Alarms:     l.Alarms,
		}, nil
	case TypeSensorSample:
		channels := l.Channels
		if channels == nil {
			channels = []float32{}
		}
		return SensorSample{TS: l.TS, Channels: channels}, nil
	case TypeToolEvent:
		return ToolEvent{TS: l.TS, ToolID: l.ToolID, EventType: l.EventType}, nil
	default:
		return nil, errors.New("unknown record type " + l.Type)
	}
}
