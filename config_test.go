package wmediumd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wmediumd.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error writing temp config: %s", err.Error())
	}
	return path
}

func TestLoadConfigStationsAndSNR(t *testing.T) {
	path := writeTempConfig(t, `
stations:
  - addr: "02:00:00:00:00:01"
  - addr: "02:00:00:00:00:02"
snr:
  default_db: 12
  links:
    - a: "02:00:00:00:00:01"
      b: "02:00:00:00:00:02"
      snr_db: 30
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if len(cfg.Stations) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(cfg.Stations))
	}
	if cfg.SNR == nil || cfg.SNR.DefaultDB != 12 {
		t.Fatalf("expected default SNR 12, got %+v", cfg.SNR)
	}

	e, _ := newTestEngine(t, newFakeTransport(), fixedProb(0))
	snr, err := cfg.Apply(e)
	if err != nil {
		t.Fatalf("unexpected error applying config: %s", err.Error())
	}
	if e.Registry.Len() != 2 {
		t.Fatalf("expected 2 registered stations, got %d", e.Registry.Len())
	}
	a := MacAddr{0x02, 0, 0, 0, 0, 1}
	b := MacAddr{0x02, 0, 0, 0, 0, 2}
	if got := snr.SNRdB(a, b); got != 30 {
		t.Fatalf("expected overridden SNR 30, got %v", got)
	}
	if got := snr.SNRdB(b, a); got != 30 {
		t.Fatalf("expected symmetric SNR lookup to return 30, got %v", got)
	}
}

func TestLoadConfigDuplicateStation(t *testing.T) {
	path := writeTempConfig(t, `
stations:
  - addr: "02:00:00:00:00:01"
  - addr: "02:00:00:00:00:01"
`)
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrStationDuplicate) {
		t.Fatalf("expected ErrStationDuplicate, got %v", err)
	}
}

func TestLoadConfigMalformedAddr(t *testing.T) {
	path := writeTempConfig(t, `
stations:
  - addr: "not-a-mac"
`)
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestLoadConfigNoStations(t *testing.T) {
	path := writeTempConfig(t, `
stations: []
`)
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestLoadConfigMissingStationsKey(t *testing.T) {
	path := writeTempConfig(t, `
snr:
  default_db: 15
`)
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestWriteSkeletonConfigIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skeleton.yaml")
	in := strings.NewReader("2\n02:00:00:00:00:00\n02:00:00:00:01:00\n")
	var out bytes.Buffer
	if err := writeSkeletonConfig(path, in, &out); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error loading skeleton: %s", err.Error())
	}
	if len(cfg.Stations) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(cfg.Stations))
	}
	if !strings.Contains(out.String(), "number of stations") {
		t.Fatalf("expected a station-count prompt, got %q", out.String())
	}
}

func TestWriteSkeletonConfigRejectsBadAddr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skeleton.yaml")
	in := strings.NewReader("1\nnot-a-mac\n")
	var out bytes.Buffer
	err := writeSkeletonConfig(path, in, &out)
	if err == nil {
		t.Fatalf("expected an error for a malformed address")
	}
}

func TestWriteSkeletonConfigRejectsBadCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skeleton.yaml")
	in := strings.NewReader("not-a-number\n")
	var out bytes.Buffer
	err := writeSkeletonConfig(path, in, &out)
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}
