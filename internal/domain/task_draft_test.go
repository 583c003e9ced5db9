package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskDrafts(t *testing.T) {
	t.Run("multiple drafts", func(t *testing.T) {
		content := `---
text: Water the plants
reminder: 2025-03-01 09:00
---

---
text: Renew passport
---
`
		drafts, err := ParseTaskDrafts(content)
		require.NoError(t, err)
		require.Len(t, drafts, 2)
		assert.Equal(t, "Water the plants", drafts[0].Text)
		assert.Equal(t, "2025-03-01 09:00", drafts[0].Reminder)
		assert.Equal(t, "Renew passport", drafts[1].Text)
		assert.Empty(t, drafts[1].Reminder)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := ParseTaskDrafts("  \n ")
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("no frontmatter blocks", func(t *testing.T) {
		_, err := ParseTaskDrafts("just some prose\n")
		assert.ErrorIs(t, err, ErrNoTasksInFile)
	})

	t.Run("blank text rejected", func(t *testing.T) {
		content := "---\ntext: \"  \"\n---\n"
		_, err := ParseTaskDrafts(content)
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		content := "---\ntext: [unclosed\n---\n"
		_, err := ParseTaskDrafts(content)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "task 1")
	})
}

func TestTaskDraft_ReminderTime(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no reminder", func(t *testing.T) {
		at, err := TaskDraft{Text: "x"}.ReminderTime(now)
		require.NoError(t, err)
		assert.Nil(t, at)
	})

	t.Run("valid reminder", func(t *testing.T) {
		at, err := TaskDraft{Text: "x", Reminder: "2025-03-02 09:00"}.ReminderTime(now)
		require.NoError(t, err)
		require.NotNil(t, at)
		assert.Equal(t, time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC), *at)
	})

	t.Run("invalid reminder", func(t *testing.T) {
		_, err := TaskDraft{Text: "x", Reminder: "whenever"}.ReminderTime(now)
		assert.ErrorIs(t, err, ErrInvalidReminder)
	})
}
