package ui

import (
	"sync"
	"time"
)

// Message is one ShowMessage call
type Message struct {
	Text     string
	Duration time.Duration
}

// Recorder is a Surface that keeps the latest state and the message history
type Recorder struct {
	mu       sync.Mutex
	score    int
	timer    int
	title    string
	messages []Message
	words    map[int]string
	scores   []int
}

func NewRecorder() *Recorder {
	return &Recorder{words: make(map[int]string)}
}

func (r *Recorder) SetScoreDisplay(score int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.score = score
	r.scores = append(r.scores, score)
}

func (r *Recorder) SetTimerDisplay(seconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timer = seconds
}

func (r *Recorder) SetCategoryTitle(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.title = title
}

func (r *Recorder) ShowMessage(text string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Text: text, Duration: d})
}

func (r *Recorder) RenderWordOnEntity(slot int, word string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.words[slot] = word
}

func (r *Recorder) Score() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.score
}

// ScoreHistory returns every displayed score in order
func (r *Recorder) ScoreHistory() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.scores...)
}

func (r *Recorder) Timer() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer
}

func (r *Recorder) Title() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.title
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// LastMessage returns the most recent message text, empty when none was shown
func (r *Recorder) LastMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1].Text
}

// HasMessage reports whether text was ever shown
func (r *Recorder) HasMessage(text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.Text == text {
			return true
		}
	}
	return false
}

func (r *Recorder) Word(slot int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.words[slot]
}
