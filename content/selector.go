package content

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// personalizedChance is the probability a time-based pick uses the
// personalized pool when a user name is known.
const personalizedChance = 0.4

// fallback names substituted for {name} when no profile name is available.
const (
	fallbackNameEnglish = "Friend"
	fallbackNameBurmese = "သူငယ်ချင်း"
)

// Config configures a Selector. The zero value is usable.
type Config struct {
	// RecentSize bounds the per-bucket recent-message window.
	RecentSize int
	// Rand is the random source for uniform selection. Defaults to a
	// time-seeded source; tests inject a fixed seed.
	Rand *rand.Rand
}

// Selector picks reminder copy from the catalog. It owns an explicit,
// injectable recent-message cache rather than hiding one in package state,
// so tests can reset and inspect it.
type Selector struct {
	mu     sync.Mutex
	rng    *rand.Rand
	recent *RecentCache
}

// NewSelector creates a message selector.
func NewSelector(cfg Config) *Selector {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{
		rng:    rng,
		recent: NewRecentCache(cfg.RecentSize),
	}
}

// ResetRecent clears the recent-message cache.
func (s *Selector) ResetRecent() {
	s.recent.Reset()
}

// Pick selects a message from the period's pool, uniformly among candidates
// not served recently. The recent-window exclusion is skipped whenever it
// would leave no candidate, so a pick always succeeds for a non-empty pool.
func (s *Selector) Pick(period Period, lang Language) Message {
	pool := periodMessages[period]
	if len(pool) == 0 {
		return Message{}
	}

	bucket := string(period)
	candidates := make([]int, 0, len(pool))
	for i := range pool {
		if !s.recent.Contains(bucket, messageID(bucket, i)) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := range pool {
			candidates = append(candidates, i)
		}
	}

	s.mu.Lock()
	idx := candidates[s.rng.Intn(len(candidates))]
	s.mu.Unlock()

	id := messageID(bucket, idx)
	s.recent.Record(bucket, id)
	return pool[idx].render(id, lang)
}

// PickPersonalized selects from the personalized pool and substitutes the
// {name} placeholder, falling back to a neutral name when none is known.
func (s *Selector) PickPersonalized(name string, lang Language) Message {
	if name == "" {
		if lang == LangBurmese {
			name = fallbackNameBurmese
		} else {
			name = fallbackNameEnglish
		}
	}

	bucket := "personalized"
	candidates := make([]int, 0, len(personalizedMessages))
	for i := range personalizedMessages {
		if !s.recent.Contains(bucket, messageID(bucket, i)) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := range personalizedMessages {
			candidates = append(candidates, i)
		}
	}

	s.mu.Lock()
	idx := candidates[s.rng.Intn(len(candidates))]
	s.mu.Unlock()

	id := messageID(bucket, idx)
	s.recent.Record(bucket, id)
	msg := personalizedMessages[idx].render(id, lang)
	msg.Title = strings.ReplaceAll(msg.Title, "{name}", name)
	msg.Body = strings.ReplaceAll(msg.Body, "{name}", name)
	return msg
}

// TimeBased selects copy for a reminder scheduled at the given hour. When a
// user name is known, the personalized pool is used with a fixed chance.
func (s *Selector) TimeBased(hour int, lang Language, name string) Message {
	if name != "" {
		s.mu.Lock()
		personalized := s.rng.Float64() < personalizedChance
		s.mu.Unlock()
		if personalized {
			return s.PickPersonalized(name, lang)
		}
	}
	return s.Pick(PeriodForHour(hour), lang)
}

// Progress returns copy for a contextual progress send. Thresholds mirror
// the app: achievement at 100%, almost-there at 75%, halfway at 50%,
// good-start at 25%.
func (s *Selector) Progress(progress float64, remaining, percent int, lang Language) Message {
	switch {
	case progress >= 1:
		return s.Pick(PeriodAchievement, lang)
	case progress >= 0.75:
		return renderProgress(0, lang, "{remaining}", strconv.Itoa(remaining))
	case progress >= 0.5:
		return renderProgress(1, lang, "{percent}", strconv.Itoa(percent))
	default:
		return renderProgress(2, lang, "{percent}", strconv.Itoa(percent))
	}
}

func renderProgress(idx int, lang Language, placeholder, value string) Message {
	msg := progressMessages[idx].render(messageID("progress", idx), lang)
	msg.Body = strings.ReplaceAll(msg.Body, placeholder, value)
	return msg
}

// Streak returns copy for a streak milestone, substituting {days}.
func (s *Selector) Streak(days int, lang Language) Message {
	s.mu.Lock()
	idx := s.rng.Intn(len(streakMessages))
	s.mu.Unlock()

	msg := streakMessages[idx].render(messageID("streak", idx), lang)
	msg.Body = strings.ReplaceAll(msg.Body, "{days}", strconv.Itoa(days))
	return msg
}
