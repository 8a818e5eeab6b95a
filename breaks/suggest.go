package breaks

import (
	"time"

	"github.com/hrygo/hydromate/content"
)

// Suggestion is a recommended next break with a human-readable reason.
type Suggestion struct {
	Category content.BreakCategory `json:"category"`
	Reason   string                `json:"reason"`
}

// recencyWindow is how far back "taken recently" looks when suppressing a
// category that was just exercised.
const recencyWindow = time.Hour

// SuggestBreak evaluates the priority-ordered suggestion rules and returns
// the first match, or nil when no break is warranted. The rule order is a
// contract: water before eye rest before stretch before breathing, because
// a single call can satisfy more than one rule.
func SuggestBreak(settings Settings, minutesSinceLastBreak int, history []Entry, now time.Time, lang content.Language) *Suggestion {
	counts := map[content.BreakCategory]int{}
	cutoff := now.Add(-recencyWindow)
	for _, entry := range history {
		if entry.Timestamp.After(cutoff) {
			counts[entry.Category]++
		}
	}

	if settings.CategoryEnabled(content.BreakWater) && counts[content.BreakWater] == 0 && minutesSinceLastBreak >= 20 {
		return &Suggestion{
			Category: content.BreakWater,
			Reason:   pick(lang, "Time to stay hydrated", "ရေဓာတ်ထိန်းထားရန် အချိန်တန်ပြီ"),
		}
	}

	// Eye strain accrues continuously, so recency does not suppress it.
	if settings.CategoryEnabled(content.BreakEyes) && minutesSinceLastBreak >= 20 {
		return &Suggestion{
			Category: content.BreakEyes,
			Reason:   pick(lang, "Your eyes need a rest", "သင့်မျက်လုံးများ အနားယူသင့်ပြီ"),
		}
	}

	if settings.CategoryEnabled(content.BreakStretch) && counts[content.BreakStretch] == 0 && minutesSinceLastBreak >= 30 {
		return &Suggestion{
			Category: content.BreakStretch,
			Reason:   pick(lang, "Time to stretch your muscles", "ကြွက်သားများကို ဆန့်ထုတ်ပါ"),
		}
	}

	if settings.CategoryEnabled(content.BreakBreathe) && counts[content.BreakBreathe] == 0 {
		return &Suggestion{
			Category: content.BreakBreathe,
			Reason:   pick(lang, "Take some deep breaths", "နက်နက်ရှိုင်းရှိုင်း အသက်ရှူပါ"),
		}
	}

	return nil
}

func pick(lang content.Language, en, my string) string {
	if lang == content.LangBurmese {
		return my
	}
	return en
}
