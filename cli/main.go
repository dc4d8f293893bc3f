package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.viam.com/rdk/logging"

	"github.com/movewise/kinemetric"
	bodypose "github.com/movewise/kinemetric/body_pose"
	"github.com/movewise/kinemetric/internal/tuning"
)

func main() {
	framesPath := flag.String("frames", "", "path to a JSON-lines pose frame recording")
	tuningPath := flag.String("tuning", "", "optional JSON tuning file overriding pipeline defaults")
	reportPath := flag.String("report", "", "optional path to write the capture report as JSON")
	debug := flag.Bool("debug", false, "log per-frame joint measurements")
	flag.Parse()

	logger := logging.NewLogger("kinemetric-cli")
	if *debug {
		logger = logging.NewDebugLogger("kinemetric-cli")
	}

	if *framesPath == "" {
		logger.Fatal("-frames flag is required")
	}

	cfg := bodypose.DefaultConfig()
	if *tuningPath != "" {
		loaded, err := tuning.Load(*tuningPath)
		if err != nil {
			logger.Fatal(err)
		}
		cfg = *loaded
		logger.Infof("Loaded tuning from %s", *tuningPath)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	source, err := kinemetric.NewReplaySource(*framesPath)
	if err != nil {
		logger.Fatal(err)
	}
	defer source.Close()

	session := kinemetric.NewSession(&cfg, logger)

	report, err := kinemetric.Watch(ctx, session, source)
	if err != nil {
		logger.Fatal(err)
	}

	printReport(report)

	if *reportPath != "" {
		if err := report.Save(*reportPath); err != nil {
			logger.Fatal(err)
		}
		logger.Infof("Saved report to %s", *reportPath)
	}
}

func printReport(r *kinemetric.Report) {
	fmt.Printf("Frames: %d  Duration: %.1fs\n", r.Frames, r.DurationMs/1000)
	fmt.Printf("Compensation: %.1f (peak %.1f)\n", r.Compensation, r.PeakCompensation)

	for _, j := range r.Joints {
		fmt.Printf("  %-15s angle %.1f-%.1f (mean %.1f, ROM %.1f)  stability %.1f\n",
			j.Joint, j.MinAngle, j.MaxAngle, j.MeanAngle, j.RangeOfMotion, j.MeanStability)
		if j.SwayConcentration > 0 {
			fmt.Printf("  %-15s sway axis (%.2f, %.2f, %.2f) concentration %.2f\n",
				"", j.SwayAxis[0], j.SwayAxis[1], j.SwayAxis[2], j.SwayConcentration)
		}
	}
}
