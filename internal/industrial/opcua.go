package industrial

// OPCUASnapshot holds the node values read from an OPC-UA server in one poll.
type OPCUASnapshot struct {
	TS         int64
	SpindleRPM *float32
	FeedRate   *float32
	Program    *string
}

// MapOPCUASnapshot converts a snapshot into a MachineState record.
func MapOPCUASnapshot(s OPCUASnapshot) Record {
	return MachineState{
		TS:         s.TS,
		SpindleRPM: s.SpindleRPM,
		FeedRate:   s.FeedRate,
		Program:    s.Program,
	}
}
