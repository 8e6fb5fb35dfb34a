package models

import "testing"

func TestDefaultDocuments(t *testing.T) {
	t.Parallel()

	docs := DefaultDocuments()
	if len(docs) == 0 {
		t.Fatal("expected a non-empty default catalog")
	}

	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if d.ID == "" || d.Title == "" || d.Category == "" || d.Size == "" {
			t.Errorf("document %+v has empty fields", d)
		}
		if d.Status != DocumentDraft && d.Status != DocumentPublished {
			t.Errorf("document %s has unknown status %q", d.ID, d.Status)
		}
		if seen[d.ID] {
			t.Errorf("duplicate document id %s", d.ID)
		}
		seen[d.ID] = true
		if d.LastModified.IsZero() {
			t.Errorf("document %s has zero last-modified time", d.ID)
		}
	}
}
