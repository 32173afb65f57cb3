package tagcache

import (
	"testing"
)

func TestConfig_Key(t *testing.T) {
	tests := []struct {
		name     string
		template string
		bin      string
		cid      string
		want     string
	}{
		{
			name:     "default template",
			template: "cache:{bin}:{cid}",
			bin:      "page",
			cid:      "42",
			want:     "cache:page:42",
		},
		{
			name:     "tag bin",
			template: "cache:{bin}:{cid}",
			bin:      "tags",
			cid:      "node:7",
			want:     "cache:tags:node:7",
		},
		{
			name:     "prefixed template",
			template: "site1:{bin}:{cid}",
			bin:      "page",
			cid:      "front",
			want:     "site1:page:front",
		},
		{
			name:     "identifier with special characters",
			template: "cache:{bin}:{cid}",
			bin:      "page",
			cid:      "http://example.com/?q=a b",
			want:     "cache:page:http://example.com/?q=a b",
		},
		{
			name:     "template without cid placeholder",
			template: "cache:{bin}",
			bin:      "page",
			cid:      "42",
			want:     "cache:page",
		},
		{
			name:     "empty cid",
			template: "cache:{bin}:{cid}",
			bin:      "tags",
			cid:      "",
			want:     "cache:tags:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{KeyTemplate: tt.template}
			got := cfg.Key(tt.bin, tt.cid)
			if got != tt.want {
				t.Errorf("Key() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestConfig_Key_Determinism ensures same input always produces same key.
func TestConfig_Key_Determinism(t *testing.T) {
	cfg := DefaultConfig()

	results := make([]string, 10)
	for i := 0; i < 10; i++ {
		results[i] = cfg.Key("page", "42")
	}

	first := results[0]
	if first != "cache:page:42" {
		t.Errorf("Key() = %v, want cache:page:42", first)
	}
	for i, result := range results {
		if result != first {
			t.Errorf("result[%d] = %v, want %v (not deterministic)", i, result, first)
		}
	}
}
