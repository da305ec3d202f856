package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/manifest"
	"github.com/born-ml/neuroncore/internal/nn"
	"github.com/born-ml/neuroncore/internal/optim"
	"github.com/born-ml/neuroncore/internal/serialization"
	"github.com/born-ml/neuroncore/internal/tensor"
)

type trainConfig struct {
	steps      int
	lr         float64
	momentum   float64
	seed       uint
	checkpoint string
	manifest   string
	logEvery   int
}

func runTrain(args []string, stdout io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stdout)
	cfg := trainConfig{}
	fs.IntVar(&cfg.steps, "steps", 50, "Number of training steps")
	fs.Float64Var(&cfg.lr, "lr", 0.05, "Learning rate")
	fs.Float64Var(&cfg.momentum, "momentum", 0.9, "SGD momentum (0 disables)")
	fs.UintVar(&cfg.seed, "seed", 123, "Weight initialization seed")
	fs.StringVar(&cfg.checkpoint, "checkpoint", "", "Write trained parameters to this .ncr file")
	fs.StringVar(&cfg.manifest, "manifest", "", "Write the run manifest JSON to this file")
	fs.IntVar(&cfg.logEvery, "log-every", 10, "Log the loss every N steps")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.steps < 1 {
		return errors.New("steps must be >= 1")
	}
	if cfg.logEvery < 1 {
		cfg.logEvery = 1
	}

	g := autodiff.NewGraph()
	xv, err := tensor.New([]float32{0.5, -0.5}, tensor.Shape{1, 2})
	if err != nil {
		return err
	}
	yv, err := tensor.New([]float32{0.75}, tensor.Shape{1, 1})
	if err != nil {
		return err
	}
	x := g.AddInput(xv)
	y := g.AddInput(yv)

	seed := uint32(cfg.seed)
	fc1, err := nn.NewLinear(g, nn.LinearConfig{In: 2, Out: 3, Seed: seed})
	if err != nil {
		return err
	}
	fc2, err := nn.NewLinear(g, nn.LinearConfig{In: 3, Out: 1, Seed: seed + 333})
	if err != nil {
		return err
	}
	model := nn.Sequential{fc1, nn.ReLU{}, fc2}

	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{
		LR:       float32(cfg.lr),
		Momentum: float32(cfg.momentum),
	})

	var first, last float32
	for step := range cfg.steps {
		out, err := model.Forward(g, x)
		if err != nil {
			return err
		}
		lossID, err := nn.MSELoss(g, out, y)
		if err != nil {
			return err
		}
		loss, err := g.Forward(lossID)
		if err != nil {
			return err
		}

		opt.ZeroGrad(g)
		if err := g.Backward(lossID); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if err := opt.Step(g); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}

		last = loss.Data()[0]
		if step == 0 {
			first = last
		}
		if math.IsNaN(float64(last)) || math.IsInf(float64(last), 0) {
			return fmt.Errorf("step %d: loss diverged to %v", step, last)
		}
		if step%cfg.logEvery == 0 || step == cfg.steps-1 {
			logger.Info("step", "step", step, "loss", last, "nodes", g.Len())
		}
	}

	fmt.Fprintf(stdout, "initial loss: %.6f\n", first)
	fmt.Fprintf(stdout, "final loss:   %.6f\n", last)

	if cfg.checkpoint != "" {
		if err := writeCheckpoint(cfg, g, fc1, fc2); err != nil {
			return err
		}
		logger.Info("checkpoint written", "path", cfg.checkpoint)
	}
	if cfg.manifest != "" {
		if err := writeManifest(cfg); err != nil {
			return err
		}
		logger.Info("manifest written", "path", cfg.manifest)
	}
	return nil
}

func writeCheckpoint(cfg trainConfig, g *autodiff.Graph, fc1, fc2 *nn.Linear) error {
	//nolint:gosec // G304: path comes from the command line
	f, err := os.Create(cfg.checkpoint)
	if err != nil {
		return fmt.Errorf("create checkpoint: %w", err)
	}
	params := map[string]int{
		"fc1.weight": fc1.Weight(),
		"fc1.bias":   fc1.Bias(),
		"fc2.weight": fc2.Weight(),
		"fc2.bias":   fc2.Bias(),
	}
	meta := map[string]string{
		"steps":         strconv.Itoa(cfg.steps),
		"seed":          strconv.FormatUint(uint64(cfg.seed), 10),
		"manifest_hash": runManifest(cfg).Hash(),
	}
	if err := serialization.SaveParameters(f, g, params, meta); err != nil {
		_ = f.Close()
		return fmt.Errorf("write checkpoint: %w", err)
	}
	return f.Close()
}

func writeManifest(cfg trainConfig) error {
	//nolint:gosec // G304: path comes from the command line
	f, err := os.Create(cfg.manifest)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	if err := runManifest(cfg).WriteJSON(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runManifest(cfg trainConfig) manifest.RunManifest {
	config := fmt.Sprintf("steps=%d;lr=%g;momentum=%g;seed=%d", cfg.steps, cfg.lr, cfg.momentum, cfg.seed)
	return manifest.RunManifest{
		Version:           version,
		Seed:              manifest.SeedOf(uint64(cfg.seed)),
		ConfigHash:        manifest.HashBytes([]byte(config)),
		InputHash:         manifest.HashBytes([]byte("x=[0.5,-0.5];y=[0.75]")),
		FeatureSchemaHash: manifest.HashBytes([]byte("x:[1,2]float32;y:[1,1]float32")),
	}
}
