package handler

import (
	"testing"
)

func TestDecodeReorderEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
		wantErr bool
	}{
		{"bare array", `[{"id":3,"order":0},{"id":1,"order":1}]`, 2, false},
		{"items envelope", `{"items":[{"id":2,"order":5}]}`, 1, false},
		{"value envelope", `{"value":[{"id":7,"order":0},{"id":8,"order":1},{"id":9,"order":2}]}`, 3, false},
		{"empty array", `[]`, 0, false},
		{"empty items", `{"items":[]}`, 0, false},
		{"plain object", `{"id":1,"order":2}`, 0, true},
		{"string", `"nope"`, 0, true},
		{"garbage", `{{{`, 0, true},
	}
	for _, tt := range tests {
		pairs, err := decodeReorderEnvelope([]byte(tt.body))
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got %v", tt.name, pairs)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if len(pairs) != tt.wantLen {
			t.Fatalf("%s: expected %d pairs, got %d", tt.name, tt.wantLen, len(pairs))
		}
	}
}

func TestDecodeReorderEnvelopePreservesAssignments(t *testing.T) {
	pairs, err := decodeReorderEnvelope([]byte(`[{"id":3,"order":0},{"id":1,"order":1},{"id":2,"order":2}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []struct {
		id    uint
		order int
	}{{3, 0}, {1, 1}, {2, 2}}
	for i, w := range want {
		if pairs[i].ID != w.id || pairs[i].Order != w.order {
			t.Fatalf("pair %d = %+v, want %+v", i, pairs[i], w)
		}
	}
}
