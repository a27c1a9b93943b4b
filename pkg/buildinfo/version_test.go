package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	if got := Template(); !strings.HasPrefix(got, "{{.Name}} v9.9.9\n") {
		t.Errorf("Template() = %q", got)
	}
	if got := Get().Version; got != "v9.9.9" {
		t.Errorf("Get().Version = %q, want v9.9.9", got)
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q, missing commit", String())
	}
}
