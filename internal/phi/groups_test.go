package phi

import (
	"testing"

	"github.com/suyashkumar/dicom/pkg/tag"
)

func TestRefKey(t *testing.T) {
	tests := []struct {
		name string
		ref  Ref
		want string
	}{
		{"patient name", Ref{tag.PatientName, "PatientName"}, "0010,0010"},
		{"modality", Ref{tag.Modality, "Modality"}, "0008,0060"},
		{"station AE title", Ref{tag.PerformedStationAETitle, "PerformedStationAETitle"}, "0040,0241"},
		{"uppercase hex", Ref{tag.Tag{Group: 0x200D, Element: 0x300A}, "X"}, "200D,300A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModalityKey(t *testing.T) {
	if ModalityKey != "0008,0060" {
		t.Errorf("ModalityKey = %q, want %q", ModalityKey, "0008,0060")
	}
}

func TestGroups_NoDuplicateTags(t *testing.T) {
	seen := map[string]string{}
	for _, g := range Groups() {
		if len(g.Refs) == 0 {
			t.Errorf("group %q has no entries", g.Name)
		}
		for _, ref := range g.Refs {
			key := ref.Key()
			if prev, ok := seen[key]; ok {
				t.Errorf("tag %s appears in both %q and %q", key, prev, g.Name)
			}
			seen[key] = g.Name
			if ref.Keyword == "" {
				t.Errorf("tag %s in %q has no keyword", key, g.Name)
			}
		}
	}
}
