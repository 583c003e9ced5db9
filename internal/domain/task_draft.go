package domain

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents a task to be created from file input.
type TaskDraft struct {
	Text     string `yaml:"text"`
	Reminder string `yaml:"reminder"`
}

// ParseTaskDrafts parses a Markdown file containing one or more task
// definitions as YAML frontmatter blocks.
//
// Format:
//
//	---
//	text: Water the plants
//	reminder: 2025-03-01 09:00
//	---
//
//	---
//	text: Renew passport
//	---
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	blocks := splitDraftBlocks(content)
	if len(blocks) == 0 {
		return nil, ErrNoTasksInFile
	}

	drafts := make([]TaskDraft, 0, len(blocks))
	for i, block := range blocks {
		var draft TaskDraft
		if err := yaml.Unmarshal([]byte(block), &draft); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		if NormalizeText(draft.Text) == "" {
			return nil, fmt.Errorf("task %d: %w", i+1, ErrEmptyText)
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// ReminderTime resolves the draft's reminder field, if any.
func (d TaskDraft) ReminderTime(now time.Time) (*time.Time, error) {
	if strings.TrimSpace(d.Reminder) == "" {
		return nil, nil
	}
	t, err := ParseReminder(d.Reminder, now)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// splitDraftBlocks extracts the YAML bodies of "---" delimited
// frontmatter blocks.
func splitDraftBlocks(content string) []string {
	var blocks []string
	lines := strings.Split(content, "\n")

	var current []string
	inBlock := false
	for _, line := range lines {
		if strings.TrimRight(line, " \t") == "---" {
			if inBlock {
				if len(current) > 0 {
					blocks = append(blocks, strings.Join(current, "\n"))
				}
				current = nil
				inBlock = false
			} else {
				inBlock = true
			}
			continue
		}
		if inBlock {
			current = append(current, line)
		}
	}

	return blocks
}
