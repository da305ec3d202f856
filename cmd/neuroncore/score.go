package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/born-ml/neuroncore/internal/health"
	"github.com/born-ml/neuroncore/internal/industrial"
	"github.com/born-ml/neuroncore/internal/timeseries"
)

func runScore(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	fs.SetOutput(stdout)
	threshold := fs.Float64("threshold", health.DefaultThreshold, "Z-score at or above which a value is flagged")
	window := fs.Int("window", 1, "Average readings over windows of this length before scoring")
	stride := fs.Int("stride", 1, "Step between window starts")
	top := fs.Int("top", 0, "Also print the N highest scores")
	replay := fs.String("replay", "", "Score sensor channels from this NDJSON replay instead of stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var values []float32
	var err error
	if *replay != "" {
		values, err = readReplay(*replay, logger)
	} else {
		values, err = readFloats(stdin)
		logger.Info("read input", "values", len(values))
	}
	if err != nil {
		return err
	}

	series := values
	if *window > 1 || *stride > 1 {
		series, err = timeseries.WindowMeans(values, *window, *stride)
		if err != nil {
			return err
		}
		logger.Info("windowed", "window", *window, "stride", *stride, "windows", len(series))
	}

	detector := health.NewDetector(health.Config{Threshold: *threshold})
	flagged, scores := detector.Flag(series)

	for i, s := range scores {
		fmt.Fprintf(stdout, "%d\t%g\t%.4f\n", i, series[i], s)
	}
	fmt.Fprintf(stdout, "flagged: %v\n", flagged)
	if *top > 0 {
		fmt.Fprintf(stdout, "top: %v\n", health.TopK(scores, *top))
	}
	return nil
}

// readReplay collects the sensor channels of a replay file in record order.
func readReplay(path string, logger *slog.Logger) ([]float32, error) {
	src, err := industrial.OpenReplay(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	values, records, err := industrial.SensorChannels(src)
	if err != nil {
		return nil, err
	}
	logger.Info("read replay", "path", path, "records", records, "values", len(values))
	return values, nil
}

// readFloats parses whitespace-separated float32 values.
func readFloats(r io.Reader) ([]float32, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var values []float32
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 32)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", len(values), err)
		}
		values = append(values, float32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return values, nil
}
