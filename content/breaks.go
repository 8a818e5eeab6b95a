package content

// BreakCategory is one kind of session break. The set is open but small;
// these constants cover the categories the break scheduler knows about.
type BreakCategory string

const (
	BreakWater   BreakCategory = "water"
	BreakStretch BreakCategory = "stretch"
	BreakEyes    BreakCategory = "eyes"
	BreakWalk    BreakCategory = "walk"
	BreakBreathe BreakCategory = "breathe"
	BreakSnack   BreakCategory = "snack"
)

// breakEntry extends a catalog row with a suggested break duration.
type breakEntry struct {
	entry
	durationSeconds int
}

var breakMessages = map[BreakCategory][]breakEntry{
	BreakWater: {
		{
			entry: entry{
				title:   "💧 Hydration Break",
				titleMy: "💧 ရေသောက်အနားယူချိန်",
				body:    "Time to drink some water! Staying hydrated improves focus and productivity.",
				bodyMy:  "ရေသောက်ချိန်ပါ! ရေဓာတ်ထိန်းထားခြင်းသည် အာရုံစူးစိုက်မှုနှင့် ထုတ်လုပ်နိုင်စွမ်းကို မြှင့်တင်ပေးသည်။",
			},
			durationSeconds: 30,
		},
		{
			entry: entry{
				title:   "🥤 Water Time",
				titleMy: "🥤 ရေသောက်ချိန်",
				body:    "Your brain needs water to function at its best. Take a quick water break!",
				bodyMy:  "သင့်ဦးနှောက် အကောင်းဆုံးအလုပ်လုပ်ဖို့ ရေလိုအပ်သည်။ ရေအမြန်သောက်ပါ!",
			},
			durationSeconds: 30,
		},
	},
	BreakStretch: {
		{
			entry: entry{
				title:   "🧘 Stretch Break",
				titleMy: "🧘 ဆန့်ထုတ်အနားယူချိန်",
				body:    "Stand up and stretch! Roll your shoulders and neck to release tension.",
				bodyMy:  "ထပြီး ဆန့်ထုတ်ပါ! ပုခုံးနှင့် လည်ပင်းကို လှည့်ပြီး တင်းကျပ်မှုကို ဖြေလျှော့ပါ။",
			},
			durationSeconds: 60,
		},
		{
			entry: entry{
				title:   "💪 Movement Break",
				titleMy: "💪 လှုပ်ရှားမှုအနားယူချိန်",
				body:    "Time to move! Do some quick stretches to boost your energy.",
				bodyMy:  "လှုပ်ရှားချိန်ပါ! စွမ်းအင်မြှင့်တင်ရန် အမြန်ဆန့်ထုတ်မှုအချို့ လုပ်ပါ။",
			},
			durationSeconds: 60,
		},
	},
	BreakEyes: {
		{
			entry: entry{
				title:   "👀 Eye Rest (20-20-20)",
				titleMy: "👀 မျက်လုံးအနားပေး (20-20-20)",
				body:    "Look at something 20 feet away for 20 seconds. Your eyes will thank you!",
				bodyMy:  "ပေ ၂၀ အကွာရှိအရာကို စက္ကန့် ၂၀ ကြည့်ပါ။ သင့်မျက်လုံးများက ကျေးဇူးတင်ပါလိမ့်မည်!",
			},
			durationSeconds: 20,
		},
		{
			entry: entry{
				title:   "😌 Rest Your Eyes",
				titleMy: "😌 မျက်လုံးအနားပေးပါ",
				body:    "Close your eyes for a moment or look away from the screen.",
				bodyMy:  "ခဏမျက်လုံးပိတ်ပါ သို့မဟုတ် စခရင်မှ အဝေးကြည့်ပါ။",
			},
			durationSeconds: 20,
		},
	},
	BreakWalk: {
		{
			entry: entry{
				title:   "🚶 Walking Break",
				titleMy: "🚶 လမ်းလျှောက်အနားယူချိန်",
				body:    "Take a short walk! Even 2-3 minutes of walking boosts creativity.",
				bodyMy:  "တိုတိုလမ်းလျှောက်ပါ! ၂-၃ မိနစ်လမ်းလျှောက်ရုံနှင့်ပင် ဖန်တီးနိုင်စွမ်းကို မြှင့်တင်ပေးသည်။",
			},
			durationSeconds: 180,
		},
	},
	BreakBreathe: {
		{
			entry: entry{
				title:   "🌬️ Breathing Break",
				titleMy: "🌬️ အသက်ရှူအနားယူချိန်",
				body:    "Take 5 deep breaths. Inhale for 4 seconds, hold for 4, exhale for 4.",
				bodyMy:  "နက်နက်ရှိုင်းရှိုင်း ၅ ကြိမ်ရှူပါ။ ၄ စက္ကန့်ရှူသွင်း၊ ၄ စက္ကန့်ထိန်း၊ ၄ စက္ကန့်ရှူထုတ်ပါ။",
			},
			durationSeconds: 60,
		},
		{
			entry: entry{
				title:   "😮‍💨 Relax & Breathe",
				titleMy: "😮‍💨 အနားယူပြီး အသက်ရှူပါ",
				body:    "Pause and take a few calming breaths to reset your focus.",
				bodyMy:  "ခဏရပ်ပြီး အာရုံစူးစိုက်မှုပြန်လည်သတ်မှတ်ရန် တည်ငြိမ်စေသော အသက်ရှူမှုအချို့ယူပါ။",
			},
			durationSeconds: 60,
		},
	},
	BreakSnack: {
		{
			entry: entry{
				title:   "🍎 Healthy Snack Time",
				titleMy: "🍎 ကျန်းမာရေးနှင့်ညီသော သရေစာချိန်",
				body:    "Grab a healthy snack! Nuts, fruits, or veggies are great for brain power.",
				bodyMy:  "ကျန်းမာရေးနှင့်ညီသော သရေစာယူပါ! အသီးအနှံ၊ သစ်သီးများ သို့မဟုတ် ဟင်းသီးဟင်းရွက်များသည် ဦးနှောက်စွမ်းအားအတွက် ကောင်းမွန်သည်။",
			},
			durationSeconds: 300,
		},
	},
}

// BreakMessage is one rendered break reminder with its suggested duration.
type BreakMessage struct {
	Message
	DurationSeconds int `json:"durationSeconds"`
}

// PickBreak selects break copy for a category. Selection uses the same
// recent-window bias as hydration messages, bucketed per category.
func (s *Selector) PickBreak(category BreakCategory, lang Language) BreakMessage {
	pool := breakMessages[category]
	if len(pool) == 0 {
		return BreakMessage{}
	}

	bucket := "break-" + string(category)
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
	return BreakMessage{
		Message:         pool[idx].render(id, lang),
		DurationSeconds: pool[idx].durationSeconds,
	}
}

// BreakCategoryInfo is display metadata for one break category.
type BreakCategoryInfo struct {
	Category    BreakCategory `json:"category"`
	Name        string        `json:"name"`
	Emoji       string        `json:"emoji"`
	Description string        `json:"description"`
}

type breakInfo struct {
	name, nameMy string
	emoji        string
	desc, descMy string
}

var breakCategoryInfo = map[BreakCategory]breakInfo{
	BreakWater:   {"Water Break", "ရေသောက်အနားယူချိန်", "💧", "Stay hydrated for better focus", "ပိုကောင်းသောအာရုံစူးစိုက်မှုအတွက် ရေဓာတ်ထိန်းထားပါ"},
	BreakStretch: {"Stretch Break", "ဆန့်ထုတ်အနားယူချိန်", "🧘", "Release muscle tension", "ကြွက်သားတင်းကျပ်မှုကို ဖြေလျှော့ပါ"},
	BreakEyes:    {"Eye Rest", "မျက်လုံးအနားပေး", "👀", "20-20-20 rule for eye health", "မျက်လုံးကျန်းမာရေးအတွက် 20-20-20 စည်းမျဉ်း"},
	BreakWalk:    {"Walking Break", "လမ်းလျှောက်အနားယူချိန်", "🚶", "Move around to boost energy", "စွမ်းအင်မြှင့်တင်ရန် လှုပ်ရှားပါ"},
	BreakBreathe: {"Breathing Break", "အသက်ရှူအနားယူချိန်", "🌬️", "Deep breaths to reduce stress", "စိတ်ဖိစီးမှုလျှော့ချရန် နက်နက်ရှိုင်းရှိုင်းအသက်ရှူပါ"},
	BreakSnack:   {"Snack Break", "သရေစာအနားယူချိန်", "🍎", "Healthy fuel for your brain", "သင့်ဦးနှောက်အတွက် ကျန်းမာရေးနှင့်ညီသော လောင်စာ"},
}

// AllBreakCategories lists every known break category in a stable order.
func AllBreakCategories() []BreakCategory {
	return []BreakCategory{BreakWater, BreakStretch, BreakEyes, BreakWalk, BreakBreathe, BreakSnack}
}

// BreakInfo returns display metadata for a category in the given language.
func BreakInfo(category BreakCategory, lang Language) BreakCategoryInfo {
	info, ok := breakCategoryInfo[category]
	if !ok {
		return BreakCategoryInfo{Category: category}
	}
	out := BreakCategoryInfo{Category: category, Emoji: info.emoji}
	if lang == LangBurmese {
		out.Name = info.nameMy
		out.Description = info.descMy
	} else {
		out.Name = info.name
		out.Description = info.desc
	}
	return out
}
