// Package industrial ingests machine telemetry into a common record schema.
//
// Records come from three kinds of source:
//   - ReplaySource: newline-delimited JSON captured from a machine
//   - ParseMTConnectCurrent: an MTConnect "current" XML document
//   - MapOPCUASnapshot: a snapshot of OPC-UA node values
//
// SensorSample channels are the numeric stream consumed by the health
// package for anomaly scoring.
package industrial

// Record types as they appear in the "type" field of a replay line.
const (
	TypeMachineState = "machine_state"
	TypeSensorSample = "sensor_sample"
	TypeToolEvent    = "tool_event"
)

// Record is one of MachineState, SensorSample or ToolEvent.
type Record interface {
	// Type returns the replay type tag of the record.
	Type() string
	// Timestamp returns the record time as reported by the source.
	Timestamp() int64

	record()
}

// MachineState is a controller status reading. Optional readings are nil
// when the source did not report them.
type MachineState struct {
	TS         int64
	SpindleRPM *float32
	FeedRate   *float32
	Program    *string
	Alarms     []string
}

// SensorSample is a multi-channel sensor reading.
type SensorSample struct {
	TS       int64
	Channels []float32
}

// ToolEvent reports a tool change, wear or breakage event.
type ToolEvent struct {
	TS        int64
	ToolID    *string
	EventType string
}

func (MachineState) Type() string { return TypeMachineState }
func (SensorSample) Type() string { return TypeSensorSample }
func (ToolEvent) Type() string    { return TypeToolEvent }

func (r MachineState) Timestamp() int64 { return r.TS }
func (r SensorSample) Timestamp() int64 { return r.TS }
func (r ToolEvent) Timestamp() int64    { return r.TS }

func (MachineState) record() {}
func (SensorSample) record() {}
func (ToolEvent) record()    {}
