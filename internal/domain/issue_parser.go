package domain

import (
	"regexp"
	"strings"
)

var (
	issueMarkerPattern = regexp.MustCompile(`Issue #\d+`)
	issueTitlePattern  = regexp.MustCompile(`Issue #\d+:[ \t]*(.+)`)
	labelsLinePattern  = regexp.MustCompile(`\*\*Labels:\*\*[ \t]*(.+)`)
)

type sectionKind int

const (
	sectionDescription sectionKind = iota
	sectionAcceptance
	sectionFiles
	sectionCount
)

// sectionRule describes where a labeled section starts and what ends it.
// A section with no terminators runs to the end of the block.
type sectionRule struct {
	marker      string
	terminators []string
	kind        sectionKind
}

// sectionRules is ordered: at a given position the first matching marker wins.
var sectionRules = []sectionRule{
	{kind: sectionDescription, marker: "**Description:**", terminators: []string{"**Acceptance", "**Files"}},
	{kind: sectionAcceptance, marker: "**Acceptance Criteria:**", terminators: []string{"**Files"}},
	{kind: sectionFiles, marker: "**Files to Modify:**"},
}

// ParseIssueRecords parses a backlog document into issue records.
//
// The document is a sequence of blocks separated by horizontal-rule lines.
// A block becomes a record only if it carries an "Issue #N: Title" line:
//
//	## Issue #1: Add login form
//
//	**Labels:** `frontend`, `easy`
//
//	**Description:**
//	Build the form.
//
//	**Acceptance Criteria:**
//	- Submits credentials
//
//	**Files to Modify:**
//	- web/login.tsx
//
//	---
//
// Blocks without a title are skipped silently.
func ParseIssueRecords(content string) []IssueRecord {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var records []IssueRecord
	for _, block := range splitIssueBlocks(content) {
		if !issueMarkerPattern.MatchString(block) {
			continue
		}
		record, ok := parseIssueBlock(block)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}

// splitIssueBlocks splits content on horizontal-rule lines.
func splitIssueBlocks(content string) []string {
	var blocks []string
	var current []string
	for _, line := range strings.Split(content, "\n") {
		if isHorizontalRule(line) {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
			continue
		}
		current = append(current, line)
	}
	return append(blocks, strings.Join(current, "\n"))
}

func isHorizontalRule(line string) bool {
	line = strings.TrimSpace(line)
	return len(line) >= 3 && strings.Trim(line, "-") == ""
}

// parseIssueBlock extracts a record from one block.
// It returns false if the block has no recognizable title.
func parseIssueBlock(block string) (IssueRecord, bool) {
	m := issueTitlePattern.FindStringSubmatch(block)
	if m == nil {
		return IssueRecord{}, false
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return IssueRecord{}, false
	}

	var labels []string
	if lm := labelsLinePattern.FindStringSubmatch(block); lm != nil {
		labels = parseLabelList(lm[1])
	}

	sections := scanSections(block)
	return IssueRecord{
		Title:  title,
		Labels: labels,
		Body: BuildIssueBody(
			sections[sectionDescription],
			sections[sectionAcceptance],
			sections[sectionFiles],
		),
	}, true
}

// parseLabelList splits a comma-separated label list.
// Backticks and surrounding whitespace are removed; empty and repeated
// labels are dropped.
func parseLabelList(value string) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		label := strings.TrimSpace(strings.ReplaceAll(part, "`", ""))
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}

// scanSections walks the block once and returns the trimmed text of each
// labeled section. Missing sections are empty.
//
// An open section ends only at one of its own terminators, so a marker that
// appears out of order (Description after Acceptance Criteria) is kept as
// text of the open section. Each section is captured at most once.
func scanSections(block string) [sectionCount]string {
	var out [sectionCount]string
	var captured [sectionCount]bool

	var active *sectionRule
	start := 0

	closeActive := func(end int) {
		out[active.kind] = strings.TrimSpace(block[start:end])
		captured[active.kind] = true
		active = nil
	}

	for i := 0; i < len(block); {
		rest := block[i:]

		if active != nil {
			if hasAnyPrefix(rest, active.terminators) {
				closeActive(i)
				continue
			}
			i++
			continue
		}

		if rule := matchSectionMarker(rest, captured); rule != nil {
			active = rule
			i += len(rule.marker)
			start = i
			continue
		}
		i++
	}

	if active != nil {
		closeActive(len(block))
	}
	return out
}

func matchSectionMarker(s string, captured [sectionCount]bool) *sectionRule {
	for i := range sectionRules {
		rule := &sectionRules[i]
		if captured[rule.kind] {
			continue
		}
		if strings.HasPrefix(s, rule.marker) {
			return rule
		}
	}
	return nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
