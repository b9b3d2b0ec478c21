package planner

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"
)

// KeywordRule is a duration prior attached to a word or phrase.
// Minutes <= 0 means the rule carries no prior and blends the category base.
type KeywordRule struct {
	Minutes float64 `json:"minutes"`
	Type    string  `json:"type"`
	Weight  float64 `json:"weight"`
}

type phraseRule struct {
	pattern string
	rule    KeywordRule
}

// RuleSet is an immutable keyword knowledge base partitioned into phrase
// rules (substring match) and word rules (token lookup). It is safe to share
// across goroutines.
type RuleSet struct {
	phrases []phraseRule
	words   map[string]KeywordRule
}

var tokenPattern = regexp.MustCompile(`[a-zA-Z]+`)

var defaultKeywordRules = map[string]KeywordRule{
	"email":      {Minutes: 25, Type: "communication", Weight: 1.0},
	"emails":     {Minutes: 25, Type: "communication", Weight: 1.0},
	"call":       {Minutes: 10, Type: "communication", Weight: 1.0},
	"phone call": {Minutes: 15, Type: "communication", Weight: 1.2},
	"meeting":    {Minutes: 30, Type: "communication", Weight: 1.0},

	"homework":    {Minutes: 60, Type: "deep_work", Weight: 1.5},
	"hw":          {Minutes: 60, Type: "deep_work", Weight: 1.5},
	"problem set": {Minutes: 75, Type: "deep_work", Weight: 1.8},
	"assignment":  {Minutes: 60, Type: "deep_work", Weight: 1.3},
	"project":     {Minutes: 90, Type: "deep_work", Weight: 2.0},
	"paper":       {Minutes: 90, Type: "deep_work", Weight: 2.0},
	"essay":       {Minutes: 90, Type: "deep_work", Weight: 2.0},
	"report":      {Minutes: 75, Type: "deep_work", Weight: 1.6},
	"study":       {Minutes: 45, Type: "study", Weight: 1.2},
	"reading":     {Minutes: 30, Type: "study", Weight: 1.0},
	"review":      {Minutes: 35, Type: "study", Weight: 1.0},

	"quiz":    {Minutes: 30, Type: "assessment", Weight: 1.2},
	"exam":    {Minutes: 90, Type: "assessment", Weight: 2.0},
	"midterm": {Minutes: 90, Type: "assessment", Weight: 2.0},
	"final":   {Minutes: 120, Type: "assessment", Weight: 2.2},

	"application":  {Minutes: 45, Type: "career", Weight: 1.5},
	"apply":        {Minutes: 45, Type: "career", Weight: 1.5},
	"resume":       {Minutes: 30, Type: "career", Weight: 1.2},
	"cover letter": {Minutes: 60, Type: "career", Weight: 1.6},
	"network":      {Minutes: 30, Type: "career", Weight: 1.2},
	"linkedin":     {Minutes: 30, Type: "career", Weight: 1.2},

	"clean":     {Minutes: 20, Type: "life", Weight: 1.0},
	"laundry":   {Minutes: 30, Type: "life", Weight: 1.2},
	"groceries": {Minutes: 30, Type: "life", Weight: 1.0},
	"workout":   {Minutes: 40, Type: "health", Weight: 1.2},
	"exercise":  {Minutes: 40, Type: "health", Weight: 1.2},
	"walk":      {Minutes: 20, Type: "health", Weight: 1.0},
}

// DefaultKeywordRules returns a copy of the built-in rule table.
func DefaultKeywordRules() map[string]KeywordRule {
	return maps.Clone(defaultKeywordRules)
}

// fileRule mirrors one entry of the override file; absent fields take defaults.
type fileRule struct {
	Minutes *float64 `json:"minutes"`
	Type    string   `json:"type"`
	Weight  *float64 `json:"weight"`
}

// NewRuleSet builds a rule set from the built-in table overlaid with overrides.
// Keys are matched after lowercasing and collapsing whitespace; an override
// replaces the default with the same normalized key. Rules with an empty key
// or negative minutes/weight are dropped.
func NewRuleSet(overrides map[string]KeywordRule) *RuleSet {
	merged := make(map[string]KeywordRule, len(defaultKeywordRules)+len(overrides))
	for k, r := range defaultKeywordRules {
		merged[normalizeKey(k)] = r
	}
	for _, k := range slices.Sorted(maps.Keys(overrides)) {
		r := overrides[k]
		key := normalizeKey(k)
		if key == "" || r.Minutes < 0 || r.Weight < 0 {
			continue
		}
		merged[key] = r
	}
	return RuleSetFrom(merged)
}

// RuleSetFrom builds a rule set from rules alone, without the built-in table.
func RuleSetFrom(rules map[string]KeywordRule) *RuleSet {
	rs := &RuleSet{words: make(map[string]KeywordRule, len(rules))}
	for _, k := range slices.Sorted(maps.Keys(rules)) {
		key := normalizeKey(k)
		r := rules[k]
		if key == "" || r.Minutes < 0 || r.Weight < 0 {
			continue
		}
		if strings.Contains(key, " ") {
			rs.phrases = append(rs.phrases, phraseRule{pattern: key, rule: r})
			continue
		}
		rs.words[key] = r
	}
	return rs
}

// LoadKeywordRules reads an override file and merges it over the defaults.
// It always returns a usable rule set; the error only explains why the
// overrides were ignored (missing file, unreadable, or malformed JSON).
func LoadKeywordRules(path string) (*RuleSet, int, error) {
	if path == "" {
		return NewRuleSet(nil), 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return NewRuleSet(nil), 0, fmt.Errorf("read keyword rules %q: %w", path, err)
	}

	var raw map[string]fileRule
	if err := json.Unmarshal(data, &raw); err != nil {
		return NewRuleSet(nil), 0, fmt.Errorf("parse keyword rules %q: %w", path, err)
	}

	overrides := make(map[string]KeywordRule, len(raw))
	for k, fr := range raw {
		r := KeywordRule{Type: fr.Type, Weight: defaultRuleWeight}
		if fr.Minutes != nil {
			r.Minutes = *fr.Minutes
		}
		if fr.Weight != nil {
			r.Weight = *fr.Weight
		}
		overrides[k] = r
	}
	return NewRuleSet(overrides), len(overrides), nil
}

// Len returns the total number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.phrases) + len(rs.words)
}

// Lookup returns the rule stored under the normalized form of key.
func (rs *RuleSet) Lookup(key string) (KeywordRule, bool) {
	key = normalizeKey(key)
	if r, ok := rs.words[key]; ok {
		return r, true
	}
	for _, p := range rs.phrases {
		if p.pattern == key {
			return p.rule, true
		}
	}
	return KeywordRule{}, false
}

// match runs the phrase pass then the word pass over lowercased text.
// Word rules apply once per matching token occurrence.
func (rs *RuleSet) match(text string) (matched []KeywordRule, tokens []string) {
	for _, p := range rs.phrases {
		if strings.Contains(text, p.pattern) {
			matched = append(matched, p.rule)
		}
	}
	tokens = tokenPattern.FindAllString(text, -1)
	for _, tok := range tokens {
		if r, ok := rs.words[tok]; ok {
			matched = append(matched, r)
		}
	}
	return matched, tokens
}

func normalizeKey(k string) string {
	return strings.Join(strings.Fields(strings.ToLower(k)), " ")
}
