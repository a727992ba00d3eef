package main

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"fdtd/model"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := model.DefaultConfig()
	cfg.Grid = model.GridConfig{N: 12, L: 10, DZ: 0.5, Sigma: 2, CFL: 0.99}
	cfg.Output = model.OutputConfig{Dir: filepath.Join(dir, "data"), Throttle: 50}

	if err := run(cfg); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(cfg.Output.Dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) != 2 || names[0] != "frame_00050.csv" || names[1] != "frame_00100.csv" {
		t.Errorf("files = %v", names)
	}
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "fdtd.ini")
	err := os.WriteFile(conf, []byte("[grid]\nN = 20\nL = 1\nSIGMA = 3\n\n[log]\nLevel = warn\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "frames")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", conf, "--out", out, "--throttle", "5"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, step := range []string{"00005", "00010", "00015", "00020"} {
		if _, err := os.Stat(filepath.Join(out, "frame_"+step+".csv")); err != nil {
			t.Error(err)
		}
	}
}

func TestRootCmdRejectsNaNCFL(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "fdtd.ini")
	if err := os.WriteFile(conf, []byte("[grid]\nN = 10\nCFL = NaN\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", conf, "--out", filepath.Join(dir, "data")})
	if err := cmd.Execute(); !errors.Is(err, model.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "data")); !os.IsNotExist(err) {
		t.Error("output dir created for an invalid config")
	}
}

func TestRootCmdRejectsUnstableCFL(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "fdtd.yaml")
	if err := os.WriteFile(conf, []byte("grid:\n  n: 10\n  cfl: 1.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", conf, "--out", filepath.Join(dir, "data")})
	if err := cmd.Execute(); !errors.Is(err, model.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "data")); !os.IsNotExist(err) {
		t.Error("output dir created for an invalid config")
	}
}
