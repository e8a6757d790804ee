package nlp_test

import (
	"testing"

	"go-leave/internal/leave"
	"go-leave/internal/nlp"

	"github.com/stretchr/testify/assert"
)

func newClassifier() *nlp.Classifier {
	return nlp.NewClassifier(newResolver())
}

func TestClassifier_IntentPriority(t *testing.T) {
	c := newClassifier()

	tests := []struct {
		name   string
		text   string
		intent nlp.Intent
	}{
		{"history phrase", "show me my leave history", nlp.IntentViewHistory},
		{"history wins over request keywords", "what is my past leave", nlp.IntentViewHistory},
		{"cancel wins over request keywords", "cancel my annual leave on 2099-01-01", nlp.IntentCancelLeave},
		{"balance inquiry", "how many sick days do I have left", nlp.IntentCheckBalance},
		{"balance keyword", "what is my annual leave balance", nlp.IntentCheckBalance},
		{"request leave", "I want to take 3 days off", nlp.IntentRequestLeave},
		{"unknown", "hello there", nlp.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, _ := c.Classify(tt.text)
			assert.Equal(t, tt.intent, intent)
		})
	}
}

func TestClassifier_Entities(t *testing.T) {
	c := newClassifier()

	t.Run("full request utterance", func(t *testing.T) {
		intent, entities := c.Classify("I need 2 days annual leave tomorrow")

		assert.Equal(t, nlp.IntentRequestLeave, intent)
		assert.Equal(t, leave.TypeAnnual, entities.LeaveType)
		assert.Equal(t, "2", entities.NumDays)
		assert.Equal(t, "2026-03-03", entities.StartDate)
	})

	t.Run("leave type requires whole word", func(t *testing.T) {
		_, entities := c.Classify("my homesickness needs a break")
		assert.Empty(t, entities.LeaveType)
	})

	t.Run("first number wins", func(t *testing.T) {
		_, entities := c.Classify("take 3 days, maybe 5")
		assert.Equal(t, "3", entities.NumDays)
	})

	t.Run("entities extracted even for unknown intent", func(t *testing.T) {
		intent, entities := c.Classify("maternity 4 tomorrow")

		assert.Equal(t, nlp.IntentUnknown, intent)
		assert.Equal(t, leave.TypeMaternity, entities.LeaveType)
		assert.Equal(t, "4", entities.NumDays)
		assert.Equal(t, "2026-03-03", entities.StartDate)
	})

	t.Run("absent entities stay empty", func(t *testing.T) {
		_, entities := c.Classify("hello")
		assert.Empty(t, entities.LeaveType)
		assert.Empty(t, entities.NumDays)
		assert.Empty(t, entities.StartDate)
	})
}
