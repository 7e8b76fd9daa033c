package logo

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilesUnmarshalFilenameList(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"id":"a","files":["a.svg","a@2x.png"]}`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Files{
		{File: "a.svg", Source: MetadataInferred},
		{File: "a@2x.png", Source: MetadataInferred},
	}
	if diff := cmp.Diff(want, e.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestFilesUnmarshalStructured(t *testing.T) {
	var e Entry
	data := `{"id":"a","files":[{"file":"a.svg","format":"SVG vectoriel"},{"file":"a.png","format":"PNG","size":"512px"},{"file":"a.pdf"}]}`
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Files{
		{File: "a.svg", Format: "SVG vectoriel", Source: MetadataExplicit},
		{File: "a.png", Format: "PNG", Size: "512px", Source: MetadataExplicit},
		{File: "a.pdf", Source: MetadataInferred},
	}
	if diff := cmp.Diff(want, e.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	labels := []string{e.Files[0].Label(), e.Files[1].Label(), e.Files[2].Label()}
	if diff := cmp.Diff([]string{"SVG vectoriel", "PNG 512px", "PDF"}, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestFilesUnmarshalMixedAndEmpty(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"files":["a.svg",{"file":""},"",{"file":"b.png","format":"PNG"}]}`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(e.Files) != 2 {
		t.Fatalf("files = %d, want 2 (empty names dropped)", len(e.Files))
	}
	if e.Files[0].Source != MetadataInferred || e.Files[1].Source != MetadataExplicit {
		t.Errorf("sources = %v, %v", e.Files[0].Source, e.Files[1].Source)
	}
}

func TestFilesUnmarshalNull(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"files":null}`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if e.Files != nil {
		t.Errorf("files = %v, want nil", e.Files)
	}
}

func TestFilesUnmarshalInvalid(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"files":[42]}`), &e); err == nil {
		t.Error("expected error for numeric file entry")
	}
	if err := json.Unmarshal([]byte(`{"files":{"file":"a.svg"}}`), &e); err == nil {
		t.Error("expected error for object files")
	}
}

func TestFilesUnmarshalSingleFilename(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"id":"b","files":"b-white.svg"}`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Files{{File: "b-white.svg", Source: MetadataInferred}}
	if diff := cmp.Diff(want, e.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	e = Entry{}
	if err := json.Unmarshal([]byte(`{"files":""}`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if e.Files != nil {
		t.Errorf("empty filename = %v, want no files", e.Files)
	}
}

func TestExplicitSizeWithoutFormat(t *testing.T) {
	var f Files
	if err := json.Unmarshal([]byte(`[{"file":"icon.png","size":"1024px"},{"file":"mark","size":"64px"},{"file":"a.svg","format":"SVG"}]`), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for i, ref := range f {
		if ref.Source != MetadataExplicit {
			t.Errorf("files[%d] source = %v, want explicit", i, ref.Source)
		}
	}
	labels := []string{f[0].Label(), f[1].Label(), f[2].Label()}
	if diff := cmp.Diff([]string{"PNG 1024px", "64px", "SVG"}, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize(t *testing.T) {
	e := Entry{Path: "a.png"}.Normalize()
	if len(e.Files) != 1 || e.Files[0].File != "a.png" || e.Files[0].Source != MetadataInferred {
		t.Errorf("Normalize without format = %+v", e.Files)
	}

	e = Entry{Path: "a.png", Format: "PNG"}.Normalize()
	if e.Files[0].Source != MetadataExplicit {
		t.Errorf("Normalize with format should be explicit, got %v", e.Files[0].Source)
	}

	e = Entry{Path: "ignored.png", Files: Files{{File: "a.svg"}}}.Normalize()
	if len(e.Files) != 1 || e.Files[0].File != "a.svg" {
		t.Errorf("Normalize should keep existing files, got %+v", e.Files)
	}
}
