package catalog

import (
	"fmt"
	"time"
)

var weekdayNames = [...]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// seasonFor maps a month to its Northern Hemisphere season, with the
// accepted spoken variants.
func seasonFor(month time.Month) string {
	switch {
	case month >= 3 && month <= 5:
		return "春季/春天/spring"
	case month >= 6 && month <= 8:
		return "夏季/夏天/summer"
	case month >= 9 && month <= 11:
		return "秋季/秋天/autumn"
	default:
		return "冬季/冬天/winter"
	}
}

// mmseQuestions builds the 22-item MMSE bank. Orientation rubrics embed
// the reference date so the grader checks against today, not against a
// date baked in at compile time.
func mmseQuestions(now time.Time) []Question {
	year := now.Year()
	month := int(now.Month())
	date := now.Day()
	weekday := weekdayNames[int(now.Weekday())]
	season := seasonFor(now.Month())

	return []Question{
		{
			ID: "mmse_time_year", Instrument: MMSE, Category: "定向力-时间",
			Text: "今年是哪一年？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: fmt.Sprintf("%d年", year),
			Rubric: fmt.Sprintf(`Current year: %d. Check if the answer is %d (accept %d, %d年, Chinese number form, or a reasonable short form like %d). Return ONLY: {"score": 1, "reasoning": "正确"} or {"score": 0, "reasoning": "错误，今年是%d年"}`,
				year, year, year, year, year%100, year),
		},
		{
			ID: "mmse_time_season", Instrument: MMSE, Category: "定向力-时间",
			Text: "现在是什么季节？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: season,
			Rubric: fmt.Sprintf(`Current month: %d月. Current season in the Northern Hemisphere: %s. Check if the answer matches any of those variants. Return ONLY: {"score": 1, "reasoning": "正确"} or {"score": 0, "reasoning": "错误，当前季节不符"}`,
				month, season),
		},
		{
			ID: "mmse_time_month", Instrument: MMSE, Category: "定向力-时间",
			Text: "现在是几月份？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: fmt.Sprintf("%d月", month),
			Rubric: fmt.Sprintf(`Current month: %d. Check if the answer is %d (accept %d, %d月, or the Chinese month name). Return ONLY: {"score": 1, "reasoning": "正确"} or {"score": 0, "reasoning": "错误，现在是%d月"}`,
				month, month, month, month, month),
		},
		{
			ID: "mmse_time_date", Instrument: MMSE, Category: "定向力-时间",
			Text: "今天是几号？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: fmt.Sprintf("%d号（±1天可接受）", date),
			Rubric: fmt.Sprintf(`Current date: %d-%d-%d. Today is %d号. Accept answers within ±1 day (%d, %d, %d), with or without 号/日. Return ONLY: {"score": 1, "reasoning": "正确"} or {"score": 0, "reasoning": "错误，今天是%d号"}`,
				year, month, date, date, date-1, date, date+1, date),
		},
		{
			ID: "mmse_time_day", Instrument: MMSE, Category: "定向力-时间",
			Text: "今天是星期几？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: weekday,
			Rubric: fmt.Sprintf(`Today is %s. Accept reasonable variants (周X, 礼拜X, bare number). Return ONLY: {"score": 1, "reasoning": "正确"} or {"score": 0, "reasoning": "错误，今天是%s"}`,
				weekday, weekday),
		},
		{
			ID: "mmse_place_province", Instrument: MMSE, Category: "定向力-地点",
			Text: "您住在哪个省？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "合理的省份名称",
			Rubric:    `Check if the answer is a reasonable Chinese province name. Accept exact names or reasonable variation (江苏 vs 江苏省). Return ONLY: {"score": 1, "reasoning": "省份合理"} or {"score": 0, "reasoning": "不合理"}`,
		},
		{
			ID: "mmse_place_city", Instrument: MMSE, Category: "定向力-地点",
			Text: "您住在什么市（区县）？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "合理的城市名称",
			Rubric:    `Check if the answer is a reasonable city or district name. Accept reasonable variation (南京 vs 南京市). Return ONLY: {"score": 1, "reasoning": "城市合理"} or {"score": 0, "reasoning": "不合理"}`,
		},
		{
			ID: "mmse_place_street", Instrument: MMSE, Category: "定向力-地点",
			Text: "您住在什么街道？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "合理的街道名称",
			Rubric:    `Check if the answer is a reasonable street or area name. Accept any plausible street name; "不知道具体街道" also scores 1 since the exact street is hard to recall. Return ONLY: {"score": 1, "reasoning": "街道名称合理"} or {"score": 0, "reasoning": "明显不合理"}`,
		},
		{
			ID: "mmse_place_location", Instrument: MMSE, Category: "定向力-地点",
			Text: "咱们现在在什么地方？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "医院/家里/诊所等合理地点",
			Rubric:    `Check if the answer is a reasonable current location: 医院, 家里/家中, 诊所, 医务室, 康复中心, 社区卫生服务中心, or a specific place name. General descriptions like "在家" are fine. Return ONLY: {"score": 1, "reasoning": "地点描述合理"} or {"score": 0, "reasoning": "不合理"}`,
		},
		{
			ID: "mmse_place_floor", Instrument: MMSE, Category: "定向力-地点",
			Text: "咱们现在在第几层楼？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "任何合理的楼层数",
			Rubric:    `Check if the answer is a reasonable floor number: 1-99, 一楼/底楼/一层, 1层/1F and similar. "不清楚楼层" also scores 1. Return ONLY: {"score": 1, "reasoning": "楼层合理"} or {"score": 0, "reasoning": "不合理"}`,
		},
		{
			ID: "mmse_memory_immediate", Instrument: MMSE, Category: "记忆力",
			Text: "记忆三个词：皮球、国旗、树木", Subtext: "请重复这三个词",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 3,
			AnswerKey: "皮球、国旗、树木",
			Rubric:    `Transcribe the audio carefully. Count how many of these words are mentioned: 皮球, 国旗, 树木. Each correct word = 1 point. Accept slight pronunciation variations but NOT synonyms (球 ≠ 皮球, 旗 ≠ 国旗). Return ONLY: {"score": <0-3>, "reasoning": "说出了X个：[列出具体的词]"}`,
		},
		{
			ID: "mmse_serial7_1", Instrument: MMSE, Category: "注意力和计算力",
			Text: "100减7等于多少？", Kind: InputText, Strategy: StrategySerialStep, MaxScore: 1,
			AnswerKey: "93", SerialExpected: 93,
		},
		{
			ID: "mmse_serial7_2", Instrument: MMSE, Category: "注意力和计算力",
			Text: "再减7是多少？", Kind: InputText, Strategy: StrategySerialStep, MaxScore: 1,
			AnswerKey: "86", SerialExpected: 86,
		},
		{
			ID: "mmse_serial7_3", Instrument: MMSE, Category: "注意力和计算力",
			Text: "再减7是多少？", Kind: InputText, Strategy: StrategySerialStep, MaxScore: 1,
			AnswerKey: "79", SerialExpected: 79,
		},
		{
			ID: "mmse_serial7_4", Instrument: MMSE, Category: "注意力和计算力",
			Text: "再减7是多少？", Kind: InputText, Strategy: StrategySerialStep, MaxScore: 1,
			AnswerKey: "72", SerialExpected: 72,
		},
		{
			ID: "mmse_serial7_5", Instrument: MMSE, Category: "注意力和计算力",
			Text: "最后再减7是多少？", Kind: InputText, Strategy: StrategySerialStep, MaxScore: 1,
			AnswerKey: "65", SerialExpected: 65,
		},
		{
			ID: "mmse_memory_recall", Instrument: MMSE, Category: "回忆能力",
			Text: "词语回忆", Subtext: "请回忆刚才的三个词",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 3,
			AnswerKey: "皮球、国旗、树木",
			Rubric:    `Transcribe the audio carefully. Count how many of these EXACT words are recalled: 皮球, 国旗, 树木. Each correct recall = 1 point. Must be spontaneous recall without prompting. Accept pronunciation variations but NOT synonyms. Return ONLY: {"score": <0-3>, "reasoning": "回忆出X个：[列出具体的词]"}`,
		},
		{
			ID: "mmse_naming_watch", Instrument: MMSE, Category: "语言能力-命名",
			Text: "看图命名：这是什么？", ImageRef: "pics/watch.jpg",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "手表/表",
			Rubric:    `Transcribe the audio. Check if the answer names a watch (accept 手表, 表, 腕表, watch). Do NOT accept 钟, clock, 闹钟. Return ONLY: {"score": 1, "reasoning": "正确"} or {"score": 0, "reasoning": "错误，说的是..."}`,
		},
		{
			ID: "mmse_naming_pen", Instrument: MMSE, Category: "语言能力-命名",
			Text: "看图命名：这是什么？", ImageRef: "pics/pen.jpg",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "钢笔/笔",
			Rubric:    `Transcribe the audio. Check if the answer names a pen (accept 钢笔, 笔, 圆珠笔, 水笔, 签字笔, pen). Do NOT accept overly generic words like 东西 or 工具. Return ONLY: {"score": 1, "reasoning": "正确"} or {"score": 0, "reasoning": "错误，说的是..."}`,
		},
		{
			ID: "mmse_repeat", Instrument: MMSE, Category: "语言能力-复述",
			Text: "复述：\"四十四只石狮子\"", Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "四十四只石狮子",
			Rubric:    `Transcribe the audio carefully. Check if it EXACTLY repeats 四十四只石狮子. Accept same-pronunciation transcriptions (44只 etc.) but NOT 四十四个 or 石头狮子. Return ONLY: {"score": 1, "reasoning": "准确复述"} or {"score": 0, "reasoning": "不准确，说的是..."}`,
		},
		{
			ID: "mmse_read", Instrument: MMSE, Category: "语言能力-阅读",
			Text: "阅读并执行：\"闭上你的眼睛\"", Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "朗读并闭眼",
			Rubric:    `Transcribe the audio. Check if the subject (1) reads aloud 闭上你的眼睛, AND (2) mentions closing their eyes or performing the action. Both reading and execution are required. Return ONLY: {"score": 1, "reasoning": "已读并执行"} or {"score": 0, "reasoning": "未完成阅读或执行"}`,
		},
		{
			ID: "mmse_command", Instrument: MMSE, Category: "语言能力-三步命令",
			Text: "三步命令：用右手拿纸，对折，放左腿上", Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 3,
			AnswerKey: "(1)右手拿 (2)对折 (3)放左腿",
			Rubric:    `Transcribe the audio. Check if the subject describes completing: (1) taking the paper with the RIGHT hand 用右手拿, (2) folding it 对折, (3) placing it on the LEFT leg 放左腿上. Each completed step = 1 point. Right hand and left leg must be explicit. Return ONLY: {"score": <0-3>, "reasoning": "完成X步：[列出完成的步骤]"}`,
		},
		{
			ID: "mmse_write", Instrument: MMSE, Category: "语言能力-书写",
			Text: "写一个完整句子（拍照上传）", Kind: InputDrawing, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "有主语和谓语的完整句子",
			Rubric:    `Analyze the image. Check if it shows a complete Chinese sentence with a subject (主语) and a predicate (谓语). The sentence must be meaningful and grammatically complete; ignore handwriting quality. Return ONLY: {"score": 1, "reasoning": "完整句子"} or {"score": 0, "reasoning": "不完整，缺少..."}`,
		},
		{
			ID: "mmse_copy_pentagon", Instrument: MMSE, Category: "结构能力",
			Text: "临摹两个相交的五边形", ImageRef: "pics/pentagons.png",
			Kind: InputDrawing, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "两个五边形相交形成四边形",
			Rubric:    `Analyze the drawing carefully. Requirements: (1) two distinct pentagons, each with 5 sides, (2) they intersect, (3) the intersection forms a quadrilateral. Minor drawing imperfections are fine as long as the structure is recognizable. Return ONLY: {"score": 1, "reasoning": "符合要求"} or {"score": 0, "reasoning": "不符合，因为..."}`,
		},
	}
}
