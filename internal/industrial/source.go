package industrial

// Source yields records in arrival order.
//
// Next returns ok == false with a nil error once the source is exhausted.
type Source interface {
	Next() (rec Record, ok bool, err error)
}

// Collect drains src into a slice.
func Collect(src Source) ([]Record, error) {
	var records []Record
	for {
		rec, ok, err := src.Next()
		if err != nil {
			return records, err
		}
		if !ok {
			return records, nil
		}
		records = append(records, rec)
	}
}

// SensorChannels drains src and concatenates the channels of every
// SensorSample in order. Other record types are skipped. It also returns the
// number of records read.
func SensorChannels(src Source) ([]float32, int, error) {
	values := []float32{}
	records := 0
	for {
		rec, ok, err := src.Next()
		if err != nil {
			return values, records, err
		}
		if !ok {
			return values, records, nil
		}
		records++
		if s, isSample := rec.(SensorSample); isSample {
			values = append(values, s.Channels...)
		}
	}
}
