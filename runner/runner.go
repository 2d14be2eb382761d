package runner

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/leadscout/outreach-dashboard/tlmt"
	"github.com/leadscout/outreach-dashboard/tlmt/gocount"
	"github.com/leadscout/outreach-dashboard/tlmt/gonoop"
)

const (
	RunModeWeb = iota + 1
	RunModeExport
)

var (
	ErrInvalidRunMode = errors.New("invalid run mode")
)

type Runner interface {
	Run(context.Context) error
	Close(context.Context) error
}

type Config struct {
	Addr          string
	APIToken      string
	Debug         bool
	RunMode       int
	TickInterval  time.Duration
	TickIncrement int
	ScanDuration  time.Duration

	// Export mode flags
	Export        bool
	ExportFormat  string
	ExportOutput  string
	ExportColumns []string

	DisableTelemetry bool
}

func ParseConfig() *Config {
	// Optional .env file for local development
	_ = godotenv.Load()

	cfg := Config{}

	var exportColumns string

	flag.StringVar(&cfg.Addr, "addr", ":8080", "address to listen on for the dashboard API")
	flag.StringVar(&cfg.APIToken, "api-token", "", "API token for dashboard requests (empty disables auth)")
	flag.BoolVar(&cfg.Debug, "debug", false, "enable verbose logging")
	flag.DurationVar(&cfg.TickInterval, "tick-interval", 700*time.Millisecond, "interval between send progress ticks")
	flag.IntVar(&cfg.TickIncrement, "tick-increment", 12, "progress added per send tick")
	flag.DurationVar(&cfg.ScanDuration, "scan-duration", 2500*time.Millisecond, "simulated area analysis duration")
	flag.BoolVar(&cfg.Export, "export", false, "export seed data and exit instead of serving")
	flag.StringVar(&cfg.ExportFormat, "format", "json", "export format: json, csv, or xlsx")
	flag.StringVar(&cfg.ExportOutput, "output", "stdout", "export destination path [default: stdout]")
	flag.StringVar(&exportColumns, "columns", "", "comma separated list of export columns")
	flag.BoolVar(&cfg.DisableTelemetry, "disable-telemetry", false, "disable local telemetry counters")

	flag.Parse()

	if cfg.APIToken == "" {
		cfg.APIToken = os.Getenv("DASHBOARD_API_TOKEN")
	}

	if cfg.Addr == "" {
		cfg.Addr = os.Getenv("DASHBOARD_ADDR")
	}

	if cfg.TickInterval <= 0 {
		panic("TickInterval must be greater than 0")
	}

	if cfg.TickIncrement < 1 || cfg.TickIncrement > 100 {
		panic("TickIncrement must be between 1 and 100")
	}

	if cfg.ScanDuration <= 0 {
		panic("ScanDuration must be greater than 0")
	}

	if exportColumns != "" {
		cfg.ExportColumns = strings.Split(exportColumns, ",")
	}

	switch {
	case cfg.Export:
		cfg.RunMode = RunModeExport
	default:
		cfg.RunMode = RunModeWeb
	}

	return &cfg
}

var (
	telemetryOnce sync.Once
	telemetry     tlmt.Telemetry
)

func Telemetry() tlmt.Telemetry {
	telemetryOnce.Do(func() {
		disableTel := func() bool {
			return os.Getenv("DISABLE_TELEMETRY") == "1"
		}()

		if disableTel {
			telemetry = gonoop.New()

			return
		}

		telemetry = gocount.New()
	})

	return telemetry
}

func wrapText(text string, width int) []string {
	var lines []string

	currentLine := ""
	currentWidth := 0

	for _, r := range text {
		runeWidth := runewidth.RuneWidth(r)
		if currentWidth+runeWidth > width {
			lines = append(lines, currentLine)
			currentLine = string(r)
			currentWidth = runeWidth
		} else {
			currentLine += string(r)
			currentWidth += runeWidth
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

func banner(messages []string, width int) string {
	if width <= 0 {
		var err error

		width, _, err = term.GetSize(0)
		if err != nil {
			width = 80
		}
	}

	if width < 20 {
		width = 20
	}

	contentWidth := width - 4

	var wrappedLines []string
	for _, message := range messages {
		wrappedLines = append(wrappedLines, wrapText(message, contentWidth)...)
	}

	var builder strings.Builder

	builder.WriteString("╔" + strings.Repeat("═", width-2) + "╗\n")

	for _, line := range wrappedLines {
		lineWidth := runewidth.StringWidth(line)
		paddingRight := contentWidth - lineWidth

		if paddingRight < 0 {
			paddingRight = 0
		}

		builder.WriteString(fmt.Sprintf("║ %s%s ║\n", line, strings.Repeat(" ", paddingRight)))
	}

	builder.WriteString("╚" + strings.Repeat("═", width-2) + "╝\n")

	return builder.String()
}

func Banner() {
	message1 := "📍 LeadScout - Local Business Outreach Dashboard"
	message2 := "✉️  Demo mode: all sends are simulated"
	message3 := fmt.Sprintf("v%s (%s)", Version, BuildDate)

	fmt.Fprintln(os.Stderr, banner([]string{message1, message2, message3}, 0))
}
