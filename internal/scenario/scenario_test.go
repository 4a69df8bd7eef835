package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultScenariosPass(t *testing.T) {
	scs, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(scs) == 0 {
		t.Fatalf("no embedded scenarios")
	}
	for _, sc := range scs {
		t.Run(sc.Name, func(t *testing.T) {
			if err := Check(sc); err != nil {
				t.Fatalf("%v", err)
			}
		})
	}
}

func TestCheckReportsMismatch(t *testing.T) {
	err := Check(Scenario{Name: "wrong", Square: "b0", Want: []string{"a2"}})
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}

func TestCheckBadInput(t *testing.T) {
	if err := Check(Scenario{Name: "bad square", Square: "z1"}); err == nil || errors.Is(err, ErrMismatch) {
		t.Fatalf("expected square error, got %v", err)
	}
	if err := Check(Scenario{Name: "bad fen", FEN: "nonsense", Square: "a0"}); err == nil || errors.Is(err, ErrMismatch) {
		t.Fatalf("expected fen error, got %v", err)
	}
}

func TestParseRequiresSquare(t *testing.T) {
	if _, err := Parse([]byte("- name: x\n  want: []\n")); err == nil {
		t.Fatalf("expected error for missing square")
	}
	if _, err := Parse([]byte("not: [valid")); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestLoadAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	raw := "- name: ok\n  square: e3\n  want: [e4]\n- name: off\n  square: e3\n  want: [e5]\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	scs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	passed, failures := Run(scs)
	if passed != 1 || len(failures) != 1 {
		t.Fatalf("passed=%d failures=%v", passed, failures)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
