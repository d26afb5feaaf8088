package metadata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadForFile(t *testing.T) {
	dir := t.TempDir()
	sidecar := `name: Core Ontology
description: the core vocabulary
keywords:
  - legal
  - core
homepage: https://example.org/core
custom_field: custom value
`
	if err := os.WriteFile(filepath.Join(dir, SidecarName), []byte(sidecar), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	record, err := LoadForFile(filepath.Join(dir, "onto.ttl"))
	if err != nil {
		t.Fatalf("LoadForFile failed: %v", err)
	}
	if record == nil {
		t.Fatal("LoadForFile returned nil record")
	}
	if record.Name != "Core Ontology" {
		t.Errorf("Name: got %q, want %q", record.Name, "Core Ontology")
	}
	if len(record.Keywords) != 2 || record.Keywords[0] != "legal" {
		t.Errorf("Keywords: got %v", record.Keywords)
	}
	if record.Extra["custom_field"] != "custom value" {
		t.Errorf("Extra: got %v, want custom_field preserved", record.Extra)
	}
}

func TestLoadForFile_MissingSidecar(t *testing.T) {
	record, err := LoadForFile(filepath.Join(t.TempDir(), "onto.ttl"))
	if err != nil {
		t.Fatalf("LoadForFile failed: %v", err)
	}
	if record != nil {
		t.Errorf("record: got %+v, want nil", record)
	}
}

func TestLoadForFile_MalformedSidecar(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SidecarName), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadForFile(filepath.Join(dir, "onto.ttl")); err == nil {
		t.Error("LoadForFile succeeded on malformed sidecar")
	}
}

func TestAssociate(t *testing.T) {
	core := &Record{Name: "core", Keywords: []string{"legal"}}
	extra := &Record{Name: "extra"}

	filesByNamespace := map[string][]string{
		// First file has no record; the second carries one.
		"http://a.org/alpha": {"a/bare.ttl", "a/core.ttl"},
		"http://b.org/beta":  {"b/extra.ttl"},
		"http://c.org/gamma": {"c/naked.ttl"},
	}
	byFile := map[string]*Record{
		"a/core.ttl":  core,
		"b/extra.ttl": extra,
	}

	byNamespace := Associate(filesByNamespace, byFile)

	if byNamespace["http://a.org/alpha"] != core {
		t.Error("alpha not associated with core record")
	}
	if byNamespace["http://b.org/beta"] != extra {
		t.Error("beta not associated with extra record")
	}
	if _, ok := byNamespace["http://c.org/gamma"]; ok {
		t.Error("gamma associated despite having no record")
	}
}

func TestKeywords(t *testing.T) {
	byNamespace := map[string]*Record{
		"http://a.org/alpha": {Keywords: []string{"legal", "core"}},
		"http://b.org/beta":  {},
	}

	keywords := Keywords(byNamespace)

	if len(keywords["http://a.org/alpha"]) != 2 {
		t.Errorf("alpha keywords: got %v", keywords["http://a.org/alpha"])
	}
	if len(keywords["http://b.org/beta"]) != 0 {
		t.Errorf("beta keywords: got %v, want empty", keywords["http://b.org/beta"])
	}
}
