package planner_test

import (
	"os"
	"path/filepath"
	"testing"

	"task-planner/internal/planner"
)

func TestNewRuleSet(t *testing.T) {
	defaults := planner.NewRuleSet(nil)
	if got := defaults.Len(); got != 32 {
		t.Fatalf("default rule count = %d, want 32", got)
	}

	rs := planner.NewRuleSet(map[string]planner.KeywordRule{
		" EXAM ":       {Minutes: 100, Type: "assessment", Weight: 3},
		"Lab   Report": {Minutes: 80, Type: "deep_work", Weight: 1.5},
		"":             {Minutes: 10, Weight: 1},
		"broken":       {Minutes: -1, Weight: 1},
		"quiz":         {Minutes: 20, Weight: -2},
	})

	if got := rs.Len(); got != 33 {
		t.Errorf("Len = %d, want 33", got)
	}
	if r, ok := rs.Lookup("exam"); !ok || r.Minutes != 100 || r.Weight != 3 {
		t.Errorf("exam override not applied: %+v %v", r, ok)
	}
	if r, ok := rs.Lookup("lab report"); !ok || r.Minutes != 80 {
		t.Errorf("phrase override missing: %+v %v", r, ok)
	}
	if _, ok := rs.Lookup("broken"); ok {
		t.Errorf("negative minutes should be dropped")
	}
	if r, _ := rs.Lookup("quiz"); r.Minutes != 30 {
		t.Errorf("invalid override should keep the default quiz rule, got %+v", r)
	}
	if r, _ := defaults.Lookup("exam"); r.Minutes != 90 {
		t.Errorf("defaults must not be affected by overrides, got %+v", r)
	}
}

func TestRuleSetFrom(t *testing.T) {
	rs := planner.RuleSetFrom(map[string]planner.KeywordRule{
		"exam":       {Minutes: 120, Type: "assessment", Weight: 2.2},
		"study hall": {Minutes: 40, Weight: 1},
	})
	if rs.Len() != 2 {
		t.Errorf("Len = %d, want 2", rs.Len())
	}
	if _, ok := rs.Lookup("laundry"); ok {
		t.Errorf("RuleSetFrom must not include defaults")
	}
}

func TestLoadKeywordRules(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		path := write("rules.json", `{"Lab": {"minutes": 50, "type": "deep_work"}, "exam": {"minutes": 150, "weight": 2.5}}`)

		rs, n, err := planner.LoadKeywordRules(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Errorf("loaded = %d, want 2", n)
		}
		if r, ok := rs.Lookup("lab"); !ok || r.Minutes != 50 || r.Weight != 1 {
			t.Errorf("lab rule = %+v %v, want weight defaulted to 1", r, ok)
		}
		if r, _ := rs.Lookup("exam"); r.Minutes != 150 || r.Weight != 2.5 {
			t.Errorf("exam rule = %+v", r)
		}
		if rs.Len() != 33 {
			t.Errorf("Len = %d, want 33", rs.Len())
		}
	})

	t.Run("malformed file falls back to defaults", func(t *testing.T) {
		path := write("bad.json", `{"exam": `)

		rs, n, err := planner.LoadKeywordRules(path)
		if err == nil {
			t.Fatal("expected a parse error")
		}
		if rs == nil || rs.Len() != 32 || n != 0 {
			t.Errorf("expected default rules, got len=%d n=%d", rs.Len(), n)
		}
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		rs, _, err := planner.LoadKeywordRules(filepath.Join(dir, "nope.json"))
		if err == nil {
			t.Fatal("expected a read error")
		}
		if rs.Len() != 32 {
			t.Errorf("Len = %d, want 32", rs.Len())
		}
	})

	t.Run("empty path", func(t *testing.T) {
		rs, n, err := planner.LoadKeywordRules("")
		if err != nil || n != 0 || rs.Len() != 32 {
			t.Errorf("unexpected: len=%d n=%d err=%v", rs.Len(), n, err)
		}
	})
}
