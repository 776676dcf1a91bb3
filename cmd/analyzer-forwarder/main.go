package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	serial "github.com/tarm/goserial"

	"github.com/gridsentry/dgaportal/pkg/dga"
)

const (
	httpTimeout    = 5 * time.Second
	reconnectDelay = 5 * time.Second
)

type forwarderConfig struct {
	// Analyzer connection settings
	serialPort  string
	networkAddr string
	baud        int

	// Destination settings
	portalURL    string
	analyzerName string

	// Operational settings
	logLevel string
}

// sampleLine is one reading emitted by an online DGA analyzer: five
// comma-separated ppm values in H2, CH4, C2H4, C2H2, CO order. Blank
// lines and lines starting with '#' are analyzer chatter and skipped.
func parseSampleLine(line string) (dga.Reading, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return dga.Reading{}, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}

	values := make([]float64, 5)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return dga.Reading{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		if v < 0 {
			return dga.Reading{}, fmt.Errorf("field %d: negative concentration %v", i+1, v)
		}
		values[i] = v
	}

	return dga.Reading{H2: values[0], CH4: values[1], C2H4: values[2], C2H2: values[3], CO: values[4]}, nil
}

func main() {
	cfg := parseConfig()

	// Set up logging
	if cfg.logLevel == "debug" {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	log.Printf("Starting DGA Analyzer Forwarder v1.0")
	log.Printf("Analyzer: %s, Portal: %s", cfg.analyzerName, cfg.portalURL)

	// Create signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutdown signal received")
		cancel()
	}()

	// Run the forwarder
	if err := runForwarder(ctx, cfg); err != nil {
		log.Fatalf("Forwarder error: %v", err)
	}

	log.Println("Forwarder shutdown complete")
}

func parseConfig() *forwarderConfig {
	cfg := &forwarderConfig{}

	// Define flags
	flag.StringVar(&cfg.serialPort, "serial", "", "Serial port for DGA analyzer (e.g., /dev/ttyUSB0)")
	flag.StringVar(&cfg.networkAddr, "network", "", "Network address for DGA analyzer (e.g., 192.168.1.100:4001)")
	flag.IntVar(&cfg.baud, "baud", 9600, "Baud rate for serial connection")
	flag.StringVar(&cfg.portalURL, "server", "", "Portal base URL (e.g., http://dga.example.com:8080) [required]")
	flag.StringVar(&cfg.analyzerName, "name", "", "Online analyzer name [required]")
	flag.StringVar(&cfg.logLevel, "log", "info", "Log level (info|debug)")

	flag.Parse()

	// Check environment variables if flags not set
	if cfg.serialPort == "" {
		cfg.serialPort = os.Getenv("DGA_SERIAL_PORT")
	}
	if cfg.networkAddr == "" {
		cfg.networkAddr = os.Getenv("DGA_NETWORK_ADDR")
	}
	if cfg.portalURL == "" {
		cfg.portalURL = os.Getenv("DGA_PORTAL_URL")
	}
	if cfg.analyzerName == "" {
		cfg.analyzerName = os.Getenv("DGA_ANALYZER_NAME")
	}

	// Validate required configuration
	if cfg.portalURL == "" {
		fmt.Fprintf(os.Stderr, "Error: Portal URL is required (--server or DGA_PORTAL_URL)\n")
		flag.Usage()
		os.Exit(1)
	}

	if cfg.analyzerName == "" {
		fmt.Fprintf(os.Stderr, "Error: Analyzer name is required (--name or DGA_ANALYZER_NAME)\n")
		flag.Usage()
		os.Exit(1)
	}

	if cfg.serialPort == "" && cfg.networkAddr == "" {
		fmt.Fprintf(os.Stderr, "Error: Either serial port or network address is required\n")
		flag.Usage()
		os.Exit(1)
	}

	if cfg.serialPort != "" && cfg.networkAddr != "" {
		fmt.Fprintf(os.Stderr, "Error: Cannot specify both serial port and network address\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg.portalURL = strings.TrimRight(cfg.portalURL, "/")

	return cfg
}

func runForwarder(ctx context.Context, cfg *forwarderConfig) error {
	client := &http.Client{Timeout: httpTimeout}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := readAndForward(ctx, cfg, client); err != nil {
			log.Printf("Analyzer connection error: %v", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(reconnectDelay):
			}
		}
	}
}

// readAndForward opens the analyzer connection and forwards sample lines
// until the stream ends or the context is cancelled.
func readAndForward(ctx context.Context, cfg *forwarderConfig, client *http.Client) error {
	var rc io.ReadCloser
	var err error

	if cfg.serialPort != "" {
		log.Printf("Connecting to analyzer via serial port: %s at %d baud", cfg.serialPort, cfg.baud)
		sc := &serial.Config{Name: cfg.serialPort, Baud: cfg.baud}
		rc, err = serial.OpenPort(sc)
		if err != nil {
			return fmt.Errorf("failed to open serial port: %w", err)
		}
	} else {
		log.Printf("Connecting to analyzer via network: %s", cfg.networkAddr)
		conn, err := net.DialTimeout("tcp", cfg.networkAddr, 10*time.Second)
		if err != nil {
			return fmt.Errorf("failed to connect to analyzer: %w", err)
		}
		rc = conn
	}
	defer rc.Close()

	// Close the connection when the context is cancelled so the blocked
	// scanner read returns
	go func() {
		<-ctx.Done()
		rc.Close()
	}()

	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		reading, err := parseSampleLine(line)
		if err != nil {
			log.Printf("Skipping malformed sample %q: %v", line, err)
			continue
		}

		if cfg.logLevel == "debug" {
			log.Printf("Sample: H2=%.1f CH4=%.1f C2H4=%.1f C2H2=%.1f CO=%.1f",
				reading.H2, reading.CH4, reading.C2H4, reading.C2H2, reading.CO)
		}

		if err := forwardReading(ctx, cfg, client, reading); err != nil {
			log.Printf("Error forwarding reading: %v", err)
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("analyzer read error: %w", err)
	}
	return fmt.Errorf("analyzer stream closed")
}

// forwardReading POSTs one reading to the portal's diagnose endpoint and
// logs the verdicts it returns.
func forwardReading(ctx context.Context, cfg *forwarderConfig, client *http.Client, reading dga.Reading) error {
	body, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("failed to encode reading: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.portalURL+"/api/diagnose", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Analyzer-Name", cfg.analyzerName)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach portal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("portal returned %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var report struct {
		ID        string `json:"id"`
		Diagnoses []struct {
			Method  string `json:"method"`
			Summary string `json:"summary"`
		} `json:"diagnoses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return fmt.Errorf("failed to decode portal response: %w", err)
	}

	log.Printf("Report %s for %s:", report.ID, cfg.analyzerName)
	for _, d := range report.Diagnoses {
		log.Printf("  %s: %s", d.Method, d.Summary)
	}
	return nil
}
