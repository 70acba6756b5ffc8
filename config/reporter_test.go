package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReport_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	dst := filepath.Join(tmpDir, "report.zip")

	conf := &ReporterConfig{Destination: dst}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if rpt.Name() == "" {
		t.Error("Name() should point at the report file")
	}

	// stored data, a stored path and a copied file
	rpt.StoreData("config/active.yaml", []byte("version: 1\n"))

	srcPath := filepath.Join(tmpDir, "result.pptx")
	if err := os.WriteFile(srcPath, []byte("fake archive"), 0644); err != nil {
		t.Fatal(err)
	}
	rpt.Store("result.pptx", srcPath)

	if err := rpt.StoreCopy("input.html", srcPath); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(dst)
	if err != nil {
		t.Fatalf("report is not a zip archive: %v", err)
	}
	defer zr.Close()

	entries := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		entries[f.Name] = string(data)
	}

	manifest, ok := entries["MANIFEST"]
	if !ok {
		t.Fatal("report misses MANIFEST")
	}
	for _, name := range []string{"config/active.yaml", "input.html", "result.pptx"} {
		if _, ok := entries[name]; !ok {
			t.Errorf("report misses entry %s", name)
		}
		if !strings.Contains(manifest, name) {
			t.Errorf("MANIFEST misses entry %s", name)
		}
	}
	if entries["config/active.yaml"] != "version: 1\n" {
		t.Errorf("stored data corrupted: %q", entries["config/active.yaml"])
	}
	if entries["result.pptx"] != "fake archive" {
		t.Errorf("stored file corrupted: %q", entries["result.pptx"])
	}
}

func TestReport_NilSafe(t *testing.T) {
	var rpt *Report

	// all operations are no-ops on an absent report
	rpt.Store("a", "b")
	rpt.StoreData("c", []byte("d"))
	if err := rpt.StoreCopy("e", "f"); err != nil {
		t.Errorf("StoreCopy on nil report error = %v", err)
	}
	if err := rpt.Close(); err != nil {
		t.Errorf("Close on nil report error = %v", err)
	}
	if rpt.Name() != "" {
		t.Error("Name on nil report should be empty")
	}
}

func TestReport_AbsentStoredFileIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	dst := filepath.Join(tmpDir, "report.zip")

	conf := &ReporterConfig{Destination: dst}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	rpt.Store("gone.txt", filepath.Join(tmpDir, "never-created.txt"))
	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(dst)
	if err != nil {
		t.Fatalf("report unreadable: %v", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name == "gone.txt" {
			t.Error("absent files must be skipped, not archived")
		}
	}
}
