// Package reflection holds the weekly reflection model: the fixed questions,
// the answers a user gives to them and the status of a week.
package reflection

import (
	"math"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/envelope"
)

// MinPassphraseLength is the shortest journal passphrase accepted at setup.
const MinPassphraseLength = 8

type Question struct {
	ID          string
	Text        string
	Description string
}

// Questions are asked every week, in this order.
var Questions = [...]Question{
	{"question1", "What has worked well?", "Reflect on recent successes to identify what to continue"},
	{"question2", "What didn't work so well?", "Evaluate setbacks to understand what needs improvement"},
	{"question3", "How can I apply what I have learned (actions)?", "Determine actionable steps for the future"},
	{"question4", "Looking back at last week, how much of my day was spent doing things I actively enjoyed?", "Assess time alignment with fulfillment"},
	{"question5", "How'd that compare to the week before?", "Track enjoyment trends week-to-week"},
	{"question6", "What would you do if you knew you could not fail?", "Uncover bold aspirations"},
	{"question7", "When are you going to get out of your comfort zone?", "Encourage growth opportunities"},
}

// Answers is the plaintext sealed into a reflection envelope. The JSON keys
// are part of the stored format.
type Answers struct {
	Question1 string `json:"question1"`
	Question2 string `json:"question2"`
	Question3 string `json:"question3"`
	Question4 string `json:"question4"`
	Question5 string `json:"question5"`
	Question6 string `json:"question6"`
	Question7 string `json:"question7"`
}

// Slice returns the answers in question order.
func (a *Answers) Slice() []string {
	return []string{a.Question1, a.Question2, a.Question3, a.Question4, a.Question5, a.Question6, a.Question7}
}

// Get returns the answer to the i-th question, counting from zero.
func (a *Answers) Get(i int) string {
	if p := a.field(i); p != nil {
		return *p
	}
	return ""
}

// Set replaces the answer to the i-th question. Out of range indexes are ignored.
func (a *Answers) Set(i int, v string) {
	if p := a.field(i); p != nil {
		*p = v
	}
}

func (a *Answers) field(i int) *string {
	switch i {
	case 0:
		return &a.Question1
	case 1:
		return &a.Question2
	case 2:
		return &a.Question3
	case 3:
		return &a.Question4
	case 4:
		return &a.Question5
	case 5:
		return &a.Question6
	case 6:
		return &a.Question7
	}
	return nil
}

// Answered counts answers that are not blank.
func (a *Answers) Answered() int {
	n := 0
	for _, s := range a.Slice() {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

// Progress returns the answered count and the rounded percentage of
// questions answered.
func (a *Answers) Progress() (answered int, percent int) {
	answered = a.Answered()
	return answered, int(math.Round(float64(answered) * 100 / float64(len(Questions))))
}

// Complete reports whether every question has an answer.
func (a *Answers) Complete() bool {
	return a.Answered() == len(Questions)
}

// Seal encrypts the answers with s under passphrase.
func Seal(s *envelope.Sealer, a *Answers, passphrase string) (string, error) {
	return s.Seal(a, passphrase)
}

// Open decrypts blob into answers.
func Open(s *envelope.Sealer, blob string, passphrase string) (*Answers, error) {
	var a Answers
	if err := s.Open(blob, passphrase, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ValidatePassphrase checks a new passphrase and its confirmation.
func ValidatePassphrase(passphrase, confirm string) error {
	if len([]rune(passphrase)) < MinPassphraseLength {
		return common.ErrWeakPassphrase
	}
	if passphrase != confirm {
		return common.ErrPassphraseMismatch
	}
	return nil
}

// Summary describes a stored reflection without its content.
type Summary struct {
	ID            string
	WeekStartDate civil.Date
	IsCompleted   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LockedAt      *time.Time
}

type Status string

const (
	StatusLocked     Status = "locked"
	StatusNotStarted Status = "not-started"
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
)

// StatusOf derives the status of a week from its live lock state and its
// stored record, which may be nil.
func StatusOf(locked bool, s *Summary) Status {
	switch {
	case locked:
		return StatusLocked
	case s == nil:
		return StatusNotStarted
	case s.IsCompleted:
		return StatusCompleted
	default:
		return StatusInProgress
	}
}
