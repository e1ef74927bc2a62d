package wmediumd

//
// Configuration file (ambient stack)
//
// Station list and SNR matrix live in a YAML file, loaded with
// gopkg.in/yaml.v3 into a concrete tagged struct, since the schema is
// fixed rather than externally authored.
//

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk representation of a medium configuration: the
// set of stations to register at startup, plus an optional SNR matrix
// used instead of a flat default.
type Config struct {
	Stations []ConfigStation `yaml:"stations"`
	SNR      *ConfigSNR      `yaml:"snr,omitempty"`
}

// ConfigStation describes one station to pre-register.
type ConfigStation struct {
	Addr string `yaml:"addr"`
}

// ConfigSNR is the YAML shape of a MatrixSNR: a default value plus a
// list of directed or symmetric overrides.
type ConfigSNR struct {
	DefaultDB float64           `yaml:"default_db"`
	Links     []ConfigSNRLink   `yaml:"links,omitempty"`
}

// ConfigSNRLink overrides the SNR between two named stations.
type ConfigSNRLink struct {
	A     string  `yaml:"a"`
	B     string  `yaml:"b"`
	SNRdB float64 `yaml:"snr_db"`
}

// LoadConfig reads and validates a Config from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wmediumd: reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("wmediumd: parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks for at least one station, duplicate station
// addresses, and malformed MAC syntax, so configuration errors are
// caught before the event loop starts.
func (c *Config) validate() error {
	if len(c.Stations) < 1 {
		return fmt.Errorf("%w: at least one station is required", ErrConfigInvalid)
	}
	seen := make(map[string]bool, len(c.Stations))
	for _, st := range c.Stations {
		addr, err := ParseMacAddr(st.Addr)
		if err != nil {
			return fmt.Errorf("%w: station %q: %s", ErrConfigInvalid, st.Addr, err.Error())
		}
		key := addr.String()
		if seen[key] {
			return fmt.Errorf("%w: %s", ErrStationDuplicate, key)
		}
		seen[key] = true
	}
	return nil
}

// Apply registers every configured station with engine and, if an SNR
// matrix is configured, builds and wires a MatrixSNR.
func (c *Config) Apply(e *Engine) (SNRSource, error) {
	for _, st := range c.Stations {
		addr, err := ParseMacAddr(st.Addr)
		if err != nil {
			return nil, err
		}
		e.AddStation(addr)
	}
	if c.SNR == nil {
		return nil, nil
	}
	m := &MatrixSNR{Default: c.SNR.DefaultDB, Matrix: make(map[[2]MacAddr]float64, len(c.SNR.Links))}
	for _, link := range c.SNR.Links {
		a, err := ParseMacAddr(link.A)
		if err != nil {
			return nil, err
		}
		b, err := ParseMacAddr(link.B)
		if err != nil {
			return nil, err
		}
		m.Matrix[[2]MacAddr{a, b}] = link.SNRdB
	}
	return m, nil
}

// WriteSkeletonConfig interactively builds a starting-point
// configuration for `-o FILE`: it prompts on stdin for the number of
// stations and then each station's address, and writes the result to
// path. Grounded on the line-at-a-time bufio.NewScanner(os.Stdin)
// prompt loop.
func WriteSkeletonConfig(path string) error {
	return writeSkeletonConfig(path, os.Stdin, os.Stdout)
}

// writeSkeletonConfig does the work of WriteSkeletonConfig against an
// injected reader/writer, so the prompt loop is testable without a
// real terminal.
func writeSkeletonConfig(path string, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, "number of stations: ")
	count, err := promptStationCount(scanner)
	if err != nil {
		return err
	}

	cfg := Config{SNR: &ConfigSNR{DefaultDB: defaultSNRdB}}
	for i := 0; i < count; i++ {
		fmt.Fprintf(out, "address for station %d: ", i+1)
		addr, err := promptStationAddr(scanner)
		if err != nil {
			return fmt.Errorf("wmediumd: station %d: %w", i+1, err)
		}
		cfg.Stations = append(cfg.Stations, ConfigStation{Addr: addr})
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// promptStationCount reads and validates the station-count line.
func promptStationCount(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("wmediumd: reading station count: %w", io.ErrUnexpectedEOF)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: station count must be a positive integer", ErrConfigInvalid)
	}
	return n, nil
}

// promptStationAddr reads and validates one station-address line.
func promptStationAddr(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		return "", fmt.Errorf("reading address: %w", io.ErrUnexpectedEOF)
	}
	addr := strings.TrimSpace(scanner.Text())
	if _, err := ParseMacAddr(addr); err != nil {
		return "", err
	}
	return addr, nil
}
