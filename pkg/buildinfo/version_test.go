package buildinfo

import (
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	tests := []struct {
		version, commit string
		want            string
	}{
		{"dev", "none", "dev (none)"},
		{"v1.2.0", "0123456789abcdef", "v1.2.0 (0123456)"},
	}

	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Summary(); got != tt.want {
			t.Errorf("Summary() = %q, want %q", got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q, want cobra name placeholder", tmpl)
	}
	if !strings.Contains(tmpl, "commit: "+Commit) {
		t.Errorf("Template() = %q, missing commit", tmpl)
	}
}
