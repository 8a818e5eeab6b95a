// Package content holds the categorized bilingual reminder copy and the
// selection logic that picks a message for a delivery, biased away from
// immediate repeats by a bounded recent-message cache.
package content

import "fmt"

// Language selects which side of the bilingual catalog a pick renders.
type Language string

const (
	LangEnglish Language = "en"
	LangBurmese Language = "my"
)

// Period buckets the day into message pools. The boundary hours are contract:
// settings UIs and tests rely on them.
type Period string

const (
	PeriodMorning     Period = "morning"     // 06:00-09:59
	PeriodMidday      Period = "midday"      // 10:00-13:59
	PeriodAfternoon   Period = "afternoon"   // 14:00-17:59
	PeriodEvening     Period = "evening"     // 18:00-05:59
	PeriodAchievement Period = "achievement" // goal reached, not time-derived
)

// PeriodForHour maps an hour of day to its message period.
func PeriodForHour(hour int) Period {
	switch {
	case hour >= 6 && hour < 10:
		return PeriodMorning
	case hour >= 10 && hour < 14:
		return PeriodMidday
	case hour >= 14 && hour < 18:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// Message is one rendered reminder copy.
type Message struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// entry is one bilingual catalog row.
type entry struct {
	title   string
	titleMy string
	body    string
	bodyMy  string
}

func (e entry) render(id string, lang Language) Message {
	if lang == LangBurmese {
		return Message{ID: id, Title: e.titleMy, Body: e.bodyMy}
	}
	return Message{ID: id, Title: e.title, Body: e.body}
}

var periodMessages = map[Period][]entry{
	PeriodMorning: {
		{
			title:   "🌅 Good Morning!",
			titleMy: "🌅 မင်္ဂလာနံနက်ခင်းပါ!",
			body:    "Start your day right with a refreshing glass of water. Your body will thank you!",
			bodyMy:  "လန်းဆန်းသောရေတစ်ခွက်ဖြင့် သင့်နေ့ကို စတင်ပါ။ သင့်ခန္ဓာကိုယ်က ကျေးဇူးတင်ပါလိမ့်မည်!",
		},
		{
			title:   "☀️ Rise & Shine",
			titleMy: "☀️ နိုးထပြီ လန်းဆန်းပါစေ",
			body:    "Your body lost water while sleeping. A glass of water now boosts your metabolism!",
			bodyMy:  "အိပ်နေစဉ် ရေဓာတ်ဆုံးရှုံးခဲ့သည်။ ယခုရေတစ်ခွက်သောက်ပြီး ဇီဝကမ္မဖြစ်စဉ်ကို မြှင့်တင်ပါ!",
		},
		{
			title:   "🌄 Morning Energy",
			titleMy: "🌄 မနက်ခင်းစွမ်းအင်",
			body:    "Hydrate before your morning coffee for better energy and focus throughout the day.",
			bodyMy:  "မနက်ခင်းကော်ဖီမသောက်ခင် ရေသောက်ပြီး တစ်နေ့တာ စွမ်းအင်နှင့် အာရုံစူးစိုက်မှု ပိုကောင်းစေပါ။",
		},
		{
			title:   "💧 Fresh Start",
			titleMy: "💧 လန်းဆန်းစွာစတင်ပါ",
			body:    "A new day, a new opportunity to stay hydrated. Let's make today count!",
			bodyMy:  "နေ့သစ်တစ်နေ့၊ ရေဓာတ်ထိန်းထားရန် အခွင့်အလမ်းသစ်။ ယနေ့ကို အကျိုးရှိစေပါစို့!",
		},
	},
	PeriodMidday: {
		{
			title:   "💧 Hydration Break",
			titleMy: "💧 ရေသောက်အနားယူချိန်",
			body:    "Take a moment to refresh. A quick water break keeps you productive and focused.",
			bodyMy:  "ခဏလန်းဆန်းပါ။ ရေအနားယူချိန်တိုက သင့်ကို ထုတ်လုပ်နိုင်စွမ်းနှင့် အာရုံစူးစိုက်မှု ထိန်းထားပေးသည်။",
		},
		{
			title:   "🌊 Stay Refreshed",
			titleMy: "🌊 လန်းဆန်းနေပါစေ",
			body:    "Halfway through the day! Keep your energy up with a glass of water.",
			bodyMy:  "နေ့လည်ခင်းရောက်ပြီ! ရေတစ်ခွက်ဖြင့် သင့်စွမ်းအင်ကို ထိန်းထားပါ။",
		},
		{
			title:   "⚡ Boost Your Focus",
			titleMy: "⚡ အာရုံစူးစိုက်မှုမြှင့်တင်ပါ",
			body:    "Feeling a bit tired? Even mild dehydration affects concentration. Drink up!",
			bodyMy:  "အနည်းငယ်ပင်ပန်းနေသလား? အနည်းငယ်ရေဓာတ်ခန်းခြောက်ရုံနှင့်ပင် အာရုံစူးစိုက်မှုကို ထိခိုက်သည်။ ရေသောက်ပါ!",
		},
		{
			title:   "🎯 Keep Going Strong",
			titleMy: "🎯 ခိုင်မာစွာဆက်သွားပါ",
			body:    "You're doing great! A sip of water now helps you power through the rest of the day.",
			bodyMy:  "သင်ကောင်းနေပါတယ်! ယခုရေအနည်းငယ်သောက်ပြီး ကျန်တစ်နေ့တာကို အားဖြင့်ဖြတ်သန်းပါ။",
		},
	},
	PeriodAfternoon: {
		{
			title:   "☕ Afternoon Refresh",
			titleMy: "☕ နေ့လည်ခင်းလန်းဆန်းမှု",
			body:    "Instead of another coffee, try water! It's the natural way to beat the afternoon slump.",
			bodyMy:  "နောက်ထပ်ကော်ဖီအစား ရေသောက်ကြည့်ပါ! နေ့လည်ခင်းပင်ပန်းမှုကို သဘာဝနည်းဖြင့် ကျော်လွှားပါ။",
		},
		{
			title:   "💪 Stay Energized",
			titleMy: "💪 စွမ်းအင်ပြည့်နေပါစေ",
			body:    "Your body needs hydration to maintain energy. Take a water break now!",
			bodyMy:  "စွမ်းအင်ထိန်းထားရန် သင့်ခန္ဓာကိုယ်က ရေဓာတ်လိုအပ်သည်။ ယခုရေအနားယူပါ!",
		},
		{
			title:   "🌟 Almost There",
			titleMy: "🌟 နီးပါးရောက်ပြီ",
			body:    "The day is progressing well. Keep hydrating to finish strong!",
			bodyMy:  "နေ့ရက်ကောင်းစွာတိုးတက်နေသည်။ ခိုင်မာစွာပြီးဆုံးရန် ရေဆက်သောက်ပါ!",
		},
		{
			title:   "✨ Wellness Check",
			titleMy: "✨ ကျန်းမာရေးစစ်ဆေးချိန်",
			body:    "How's your water intake today? A few more glasses and you'll reach your goal!",
			bodyMy:  "ယနေ့ရေသောက်မှုဘယ်လိုရှိသလဲ? နောက်ထပ်ဖန်ခွက်အနည်းငယ်ဆိုရင် ပန်းတိုင်ရောက်ပါပြီ!",
		},
	},
	PeriodEvening: {
		{
			title:   "🌆 Evening Hydration",
			titleMy: "🌆 ညနေခင်းရေဓာတ်",
			body:    "Wind down your day with a glass of water. It helps with digestion and relaxation.",
			bodyMy:  "ရေတစ်ခွက်ဖြင့် သင့်နေ့ကို အဆုံးသတ်ပါ။ အစာခြေခြင်းနှင့် အနားယူခြင်းကို အထောက်အကူပြုသည်။",
		},
		{
			title:   "🌙 Final Push",
			titleMy: "🌙 နောက်ဆုံးအားထုတ်မှု",
			body:    "Don't forget your evening water! A little more and you'll complete your daily goal.",
			bodyMy:  "ညနေခင်းရေကို မမေ့ပါနဲ့! အနည်းငယ်ထပ်သောက်ရင် နေ့စဉ်ပန်းတိုင်ပြည့်မီပါပြီ။",
		},
		{
			title:   "✨ Day's End Reminder",
			titleMy: "✨ နေ့ကုန်သတိပေးချက်",
			body:    "Before quiet hours begin, make sure you've had enough water today.",
			bodyMy:  "တိတ်ဆိတ်ချိန်မစခင် ယနေ့ရေလုံလုံလောက်လောက်သောက်ပြီးကြောင်း သေချာပါစေ။",
		},
		{
			title:   "🌟 Finish Strong",
			titleMy: "🌟 ခိုင်မာစွာပြီးဆုံးပါ",
			body:    "You're so close to your goal! One more glass could make all the difference.",
			bodyMy:  "ပန်းတိုင်နဲ့ အရမ်းနီးပါပြီ! နောက်ထပ်တစ်ခွက်က ကွာခြားမှုဖန်တီးနိုင်ပါသည်။",
		},
	},
	PeriodAchievement: {
		{
			title:   "🎉 Goal Achieved!",
			titleMy: "🎉 ပန်းတိုင်ရောက်ပြီ!",
			body:    "Congratulations! You've reached your daily water goal. Your body thanks you!",
			bodyMy:  "ဂုဏ်ယူပါသည်! နေ့စဉ်ရေပန်းတိုင်ပြည့်မီပါပြီ။ သင့်ခန္ဓာကိုယ်က ကျေးဇူးတင်ပါသည်!",
		},
		{
			title:   "🏆 Hydration Champion!",
			titleMy: "🏆 ရေဓာတ်ချန်ပီယံ!",
			body:    "Amazing work! You've completed your daily hydration goal. Keep up the great habit!",
			bodyMy:  "အံ့သြဖွယ်ကောင်းပါတယ်! နေ့စဉ်ရေဓာတ်ပန်းတိုင်ပြည့်မီပါပြီ။ ကောင်းသောအလေ့အထကို ဆက်ထိန်းပါ!",
		},
		{
			title:   "⭐ Perfect Day!",
			titleMy: "⭐ ပြည့်စုံသောနေ့!",
			body:    "You did it! Staying hydrated is one of the best things you can do for your health.",
			bodyMy:  "သင်လုပ်နိုင်ခဲ့ပါပြီ! ရေဓာတ်ထိန်းထားခြင်းသည် သင့်ကျန်းမာရေးအတွက် အကောင်းဆုံးအရာတစ်ခုဖြစ်သည်။",
		},
		{
			title:   "💎 Wellness Winner!",
			titleMy: "💎 ကျန်းမာရေးအနိုင်ရသူ!",
			body:    "Daily goal complete! You're building a healthy habit that will benefit you for life.",
			bodyMy:  "နေ့စဉ်ပန်းတိုင်ပြည့်မီပြီ! တစ်သက်တာအကျိုးရှိမည့် ကျန်းမာရေးအလေ့အထကို တည်ဆောက်နေပါသည်။",
		},
	},
}

// Streak and progress messages carry {days}/{remaining}/{percent}
// placeholders substituted at send time.
var streakMessages = []entry{
	{
		title:   "🔥 Streak Milestone!",
		titleMy: "🔥 ဆက်တိုက်မှတ်တိုင်!",
		body:    "You've maintained your hydration goal for {days} days! Incredible dedication!",
		bodyMy:  "{days} ရက်ဆက်တိုက် ရေဓာတ်ပန်းတိုင်ထိန်းထားနိုင်ပါပြီ! အံ့သြဖွယ်ကောင်းသော ဇွဲလုံ့လ!",
	},
	{
		title:   "🌟 On Fire!",
		titleMy: "🌟 မီးတောက်နေပြီ!",
		body:    "{days} days in a row! Your consistency is truly inspiring. Keep it going!",
		bodyMy:  "{days} ရက်ဆက်တိုက်! သင့်တသမတ်တည်းမှုက အမှန်တကယ်စိတ်အားထက်သန်စေသည်။ ဆက်သွားပါ!",
	},
}

// progressMessages are ordered by descending progress threshold: almost
// there, halfway, good start. The selector indexes them directly.
var progressMessages = []entry{
	{
		title:   "🎯 Almost There!",
		titleMy: "🎯 နီးပါးရောက်ပြီ!",
		body:    "Only {remaining}ml to go! You're so close to completing your daily goal.",
		bodyMy:  "{remaining}ml သာကျန်ပါတော့သည်! နေ့စဉ်ပန်းတိုင်ပြည့်မီဖို့ အရမ်းနီးပါပြီ။",
	},
	{
		title:   "💪 Halfway There!",
		titleMy: "💪 တစ်ဝက်ရောက်ပြီ!",
		body:    "Great progress! You've completed {percent}% of your daily goal. Keep going!",
		bodyMy:  "ကောင်းသောတိုးတက်မှု! နေ့စဉ်ပန်းတိုင်၏ {percent}% ပြီးဆုံးပါပြီ။ ဆက်သွားပါ!",
	},
	{
		title:   "☀️ Good Start!",
		titleMy: "☀️ ကောင်းသောစတင်မှု!",
		body:    "You're at {percent}% of your goal. Stay consistent and you'll reach it!",
		bodyMy:  "ပန်းတိုင်၏ {percent}% ရောက်နေပါပြီ။ တသမတ်တည်းထားပြီး ပန်းတိုင်ရောက်ပါမည်!",
	},
}

// personalizedMessages substitute {name}; a neutral fallback is used when no
// name is known.
var personalizedMessages = []entry{
	{
		title:   "💧 Hey {name}!",
		titleMy: "💧 ဟေး {name}!",
		body:    "Have you had any water yet? If you have, tap \"Add Water\" to log it!",
		bodyMy:  "ရေသောက်ပြီးပြီလား? သောက်ပြီးရင် \"ရေထည့်ရန်\" ကိုနှိပ်ပြီး မှတ်တမ်းတင်ပါ!",
	},
	{
		title:   "☕ {name}, Break Time!",
		titleMy: "☕ {name}၊ အနားယူချိန်!",
		body:    "Time for a break with a cup of water! Your body will thank you.",
		bodyMy:  "ရေတစ်ခွက်နဲ့ အနားယူချိန်ရောက်ပြီ! သင့်ခန္ဓာကိုယ်က ကျေးဇူးတင်ပါလိမ့်မည်။",
	},
	{
		title:   "💦 Water Time, {name}!",
		titleMy: "💦 ရေသောက်ချိန်ပါ {name}!",
		body:    "Time to drink water! Water helps you feel better and stay focused.",
		bodyMy:  "ရေသောက်ချိန်ပါ! ရေက သင့်ကို ပိုကောင်းစေပြီး အာရုံစူးစိုက်မှုထိန်းထားပေးသည်။",
	},
	{
		title:   "🌟 {name}, Stay Hydrated!",
		titleMy: "🌟 {name}၊ ရေဓာတ်ထိန်းထားပါ!",
		body:    "A quick sip of water keeps you energized. Don't forget to hydrate!",
		bodyMy:  "ရေအနည်းငယ်သောက်ခြင်းက စွမ်းအင်ထိန်းထားပေးသည်။ ရေသောက်ဖို့ မမေ့ပါနဲ့!",
	},
	{
		title:   "✨ {name}, Feeling Tired?",
		titleMy: "✨ {name}၊ ပင်ပန်းနေသလား?",
		body:    "Dehydration can cause fatigue. A glass of water might be just what you need!",
		bodyMy:  "ရေဓာတ်ခန်းခြောက်မှုက ပင်ပန်းမှုဖြစ်စေနိုင်သည်။ ရေတစ်ခွက်က သင်လိုအပ်တာဖြစ်နိုင်ပါသည်!",
	},
	{
		title:   "🏆 {name}, Be a Champion!",
		titleMy: "🏆 {name}၊ ချန်ပီယံဖြစ်ပါ!",
		body:    "Champions stay hydrated! Drink some water and conquer your day.",
		bodyMy:  "ချန်ပီယံတွေက ရေဓာတ်ထိန်းထားကြသည်! ရေသောက်ပြီး သင့်နေ့ကို အောင်မြင်စေပါ။",
	},
}

// messageID builds the stable identifier of a catalog row.
func messageID(bucket string, index int) string {
	return fmt.Sprintf("%s-%d", bucket, index)
}

// PoolSize reports how many messages a period's pool holds.
func PoolSize(period Period) int {
	return len(periodMessages[period])
}
