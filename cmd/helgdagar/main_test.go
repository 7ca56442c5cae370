package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "--year", "2025")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 13 {
		t.Fatalf("list printed %d lines, want 13:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "2025-01-01") || !strings.Contains(lines[0], "Nyårsdagen") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(out, "2025-06-21  Saturday   Midsommardagen") {
		t.Errorf("missing aligned midsummer line:\n%s", out)
	}
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "2025-06-21", "2025-12-24", "2008-05-01")
	if err != nil {
		t.Fatalf("check error = %v", err)
	}

	for _, want := range []string{"2025-06-21  Midsommardagen", "2025-12-24  -", "2008-05-01  Första maj"} {
		if !strings.Contains(out, want) {
			t.Errorf("check output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "check", "2025-02-30"); err == nil {
		t.Error("check with an invalid date should fail")
	}
	if _, err := execute(t, "check"); err == nil {
		t.Error("check without dates should fail")
	}
}

func TestWeeks(t *testing.T) {
	out, err := execute(t, "weeks", "--from", "2024", "--to", "2026")
	if err != nil {
		t.Fatalf("weeks error = %v", err)
	}
	if out != "2024\t52\n2025\t52\n2026\t53\n" {
		t.Errorf("weeks output = %q", out)
	}

	if _, err := execute(t, "weeks", "--from", "2026", "--to", "2024"); err == nil {
		t.Error("weeks with from > to should fail")
	}
}

func TestEaster(t *testing.T) {
	out, err := execute(t, "easter", "--year", "2024")
	if err != nil {
		t.Fatalf("easter error = %v", err)
	}
	if strings.TrimSpace(out) != "2024-03-31" {
		t.Errorf("easter output = %q, want 2024-03-31", out)
	}
}

func TestVerify(t *testing.T) {
	out, err := execute(t, "verify", "--from", "2020", "--to", "2030")
	if err != nil {
		t.Fatalf("verify error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "0 mismatches") {
		t.Errorf("verify output = %q", out)
	}
}

func TestVerify_FullRange(t *testing.T) {
	out, err := execute(t, "verify")
	if err != nil {
		t.Fatalf("verify error = %v\n%s", err, out)
	}
	if strings.Contains(out, "MISMATCH") {
		t.Errorf("verify reported mismatches:\n%s", out)
	}
}

func TestSwedishReference_SundayFeasts(t *testing.T) {
	ref := swedishReference()

	tests := []struct {
		name string
		date time.Time
	}{
		{"påskdagen", time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC)},
		{"pingstdagen", time.Date(2025, time.June, 8, 12, 0, 0, 0, time.UTC)},
		{"påskdagen 2100", time.Date(2100, time.March, 28, 12, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if actual, _, _ := ref.IsHoliday(tt.date); !actual {
				t.Errorf("%s is not a holiday in the reference calendar", tt.date.Format("2006-01-02"))
			}
		})
	}
}
