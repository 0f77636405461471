package catalog

import (
	"fmt"
	"time"
)

// mocaQuestions builds the 22-item MoCA bank. The learning-phase item
// carries MaxScore 0: it records the word list presentation but never
// contributes to the total.
func mocaQuestions(now time.Time) []Question {
	year := now.Year()
	month := int(now.Month())
	date := now.Day()
	weekday := weekdayNames[int(now.Weekday())]

	return []Question{
		{
			ID: "moca_trail", Instrument: MoCA, Category: "视空间/执行能力",
			Text: "交替连线测试", Subtext: "请按照 1→甲→2→乙→3→丙→4→丁→5 的顺序用笔连线",
			ImageRef: "pics/trail_making.png",
			Kind:     InputDrawing, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "1-甲-2-乙-3-丙-4-丁-5",
			Rubric:    `Analyze the drawing. Check if lines connect in this EXACT sequence: 1→甲→2→乙→3→丙→4→丁→5. Requirements: correct alternating number/character pattern, correct order, lines connect endpoints without skipping. Minor line quality issues are fine. Return ONLY: {"score": 1, "reasoning": "顺序正确"} or {"score": 0, "reasoning": "错误，因为..."}`,
		},
		{
			ID: "moca_cube", Instrument: MoCA, Category: "视空间/执行能力",
			Text: "复制立方体", Subtext: "请照着图片画出这个三维立方体",
			ImageRef: "pics/cube.png",
			Kind:     InputDrawing, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "三维立方体，透视关系正确",
			Rubric:    `Analyze the cube drawing. Requirements for 1 point: (1) a 3D cube structure, not a flat square, (2) roughly 12 edges, (3) basic perspective kept (parallel edges stay roughly parallel). Proportions need not be perfect. Return ONLY: {"score": 1, "reasoning": "正确3D立方体"} or {"score": 0, "reasoning": "不符合，因为..."}`,
		},
		{
			ID: "moca_clock", Instrument: MoCA, Category: "视空间/执行能力",
			Text: "画钟测试", Subtext: "请画一个圆形钟表，标上数字1-12，并画出指针指向11点10分",
			Kind: InputDrawing, Strategy: StrategyExternal, MaxScore: 3,
			AnswerKey: "轮廓(1分) + 数字(1分) + 指针(1分)",
			Rubric:    `Analyze the clock drawing and score three parts independently: (1) CONTOUR: a roughly round closed circle = 1pt, (2) NUMBERS: all twelve numbers present in roughly correct positions = 1pt, (3) HANDS: two hands pointing to 11:10 (hour hand between 11 and 12, minute hand at 2) = 1pt. Return ONLY: {"score": <0-3>, "reasoning": "轮廓X分+数字X分+指针X分，具体说明..."}`,
		},
		{
			ID: "moca_naming_lion", Instrument: MoCA, Category: "命名",
			Text: "看图命名", Subtext: "请说出图片中的动物名称", ImageRef: "pics/lion.jpg",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "狮子",
			Rubric:    `Transcribe the audio. Check if the animal is identified as a lion (accept 狮子, 雄狮, lion). Do NOT accept 老虎, 猫科, or 大猫. Return ONLY: {"score": 1, "reasoning": "正确识别为狮子"} or {"score": 0, "reasoning": "错误，说的是..."}`,
		},
		{
			ID: "moca_naming_rhino", Instrument: MoCA, Category: "命名",
			Text: "看图命名", Subtext: "请说出图片中的动物名称", ImageRef: "pics/rhino.jpg",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "犀牛",
			Rubric:    `Transcribe the audio. Correct answers: 犀牛, 犀, rhinoceros, rhino. NOT accepted: 牛 (too general), 水牛/野牛 (wrong species), unclear audio, or a different animal. Return ONLY: {"score": 0 or 1, "reasoning": "说了...，是否正确"}`,
		},
		{
			ID: "moca_naming_camel", Instrument: MoCA, Category: "命名",
			Text: "看图命名", Subtext: "请说出图片中的动物名称", ImageRef: "pics/camel.jpg",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "骆驼",
			Rubric:    `Transcribe the audio. Correct answers: 骆驼, 单峰驼, 双峰驼, camel, or a clear 驼. NOT accepted: 马, 驴, 羊, 羊驼, unclear audio. Return ONLY: {"score": 0 or 1, "reasoning": "命名是否准确"}`,
		},
		{
			ID: "moca_memory_learn", Instrument: MoCA, Category: "记忆",
			Text: "词语记忆学习", Subtext: "我会说5个词，请仔细听并重复：面孔、丝绒、寺庙、菊花、红色",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 0,
			Rubric: `This is the learning phase only. No scoring. Return ONLY: {"score": 0, "reasoning": "学习阶段已记录，稍后测试延迟回忆"}`,
		},
		{
			ID: "moca_attention_forward", Instrument: MoCA, Category: "注意力",
			Text: "请按顺序重复这些数字：2、1、8、5、4",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "2-1-8-5-4",
			Rubric:    `Transcribe the audio and extract the digits spoken. Check for EXACTLY 2-1-8-5-4 in that order, all five digits. Accept verbal Chinese or digit pronunciation. Return ONLY: {"score": 1, "reasoning": "正确顺序"} or {"score": 0, "reasoning": "错误，说的是..."}`,
		},
		{
			ID: "moca_attention_backward", Instrument: MoCA, Category: "注意力",
			Text: "请倒着重复这些数字：7、4、2",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "2-4-7",
			Rubric:    `Transcribe the audio and extract the digits. The original sequence is 7-4-2, so the reversed answer must be exactly 2-4-7. Accept verbal or digit pronunciation. Return ONLY: {"score": 1, "reasoning": "正确倒背"} or {"score": 0, "reasoning": "错误，说的是..."}`,
		},
		{
			ID: "moca_attention_tap", Instrument: MoCA, Category: "注意力",
			Text: "警觉性测试",
			Subtext: "我会读一串数字，每当你听到\"1\"时，请说\"敲\"。数字序列: 5 2 1 3 9 4 1 1 8 0 6 2 1 5 1 9 4 5 1 1 1 4 1 9 0 5 1 1 2",
			Kind:    InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "目标出现10次",
			Rubric:    `Transcribe the audio. Count how many times the subject says 敲 (or knock/tap). The digit 1 occurs 10 times in the sequence. Scoring: 8 or more correct responses = 1 point, fewer = 0. Return ONLY: {"score": 0 or 1, "reasoning": "说了X次敲，目标10次"}`,
		},
		{
			ID: "moca_attention_serial7", Instrument: MoCA, Category: "注意力",
			Text: "连续减7", Subtext: "从100开始，每次减7，连续说出5个答案",
			Kind: InputAudio, Strategy: StrategySerialChain, MaxScore: 3,
			AnswerKey: "93, 86, 79, 72, 65",
		},
		{
			ID: "moca_repeat_1", Instrument: MoCA, Category: "语言",
			Text: "复述句子(1)", Subtext: "请准确重复这句话: \"我只知道今天小张来帮忙\"",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "我只知道今天小张来帮忙",
			Rubric:    `Transcribe the audio word by word. The repetition must be EXACTLY 我只知道今天小张来帮忙. Any word added, removed, changed, or reordered scores 0 (e.g. 就 for 只, 张某 for 小张, shifted word order). Return ONLY: {"score": 0 or 1, "reasoning": "复述:[实际说的]，是否完全准确"}`,
		},
		{
			ID: "moca_repeat_2", Instrument: MoCA, Category: "语言",
			Text: "复述句子(2)", Subtext: "请准确重复这句话: \"狗在房间时，猫总躲在沙发下面\"",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "狗在房间时，猫总躲在沙发下面",
			Rubric:    `Transcribe the audio precisely. The repetition must be EXACTLY 狗在房间时，猫总躲在沙发下面. Any substitution, omission, addition, or order change scores 0. Return ONLY: {"score": 0 or 1, "reasoning": "复述:[实际]，是否一字不差"}`,
		},
		{
			ID: "moca_fluency", Instrument: MoCA, Category: "语言",
			Text: "语言流畅性", Subtext: "请在1分钟内说出尽可能多以\"yi\"音开头的词语(如: 医生、衣服、椅子、意思...)",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "11个或以上不重复的词",
			Rubric:    `Transcribe the audio. Count UNIQUE Chinese words starting with the "yi" sound (一/医/衣/椅/意/议/艺/易/益/异/忆/义/仪/宜...). Do not count repetitions, words with other initials, or bare number counting. Scoring: 11 or more unique words = 1 point, fewer = 0. Return ONLY: {"score": 0 or 1, "reasoning": "说出X个词:[列举]"}`,
		},
		{
			ID: "moca_abstraction_1", Instrument: MoCA, Category: "抽象",
			Text: "抽象思维(1)", Subtext: "火车和自行车有什么相同之处？",
			Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "交通工具 / 运输工具",
			Rubric:    `Scoring (1 point): the answer must name the ABSTRACT CATEGORY, not a concrete feature. Correct: 交通工具, 运输工具, 代步工具, 车辆. NOT accepted: 都有轮子, 都能动, 都是东西, or functional descriptions. Return ONLY: {"score": 0 or 1, "reasoning": "回答类别是否抽象正确"}`,
		},
		{
			ID: "moca_abstraction_2", Instrument: MoCA, Category: "抽象",
			Text: "抽象思维(2)", Subtext: "手表和直尺有什么相同之处？",
			Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "测量工具 / 度量工具",
			Rubric:    `Scoring (1 point): the answer must identify the measurement category. Correct: 测量工具, 度量工具, 测量仪器. NOT accepted: 都有刻度 (concrete feature), 都是工具 (too vague), or functional descriptions like 都能看时间/长度. Return ONLY: {"score": 0 or 1, "reasoning": "是否识别测量工具类别"}`,
		},
		{
			ID: "moca_memory_recall", Instrument: MoCA, Category: "延迟回忆",
			Text: "词语回忆", Subtext: "请回忆之前让你记住的5个词",
			Kind: InputAudio, Strategy: StrategyExternal, MaxScore: 5,
			AnswerKey: "面孔、丝绒、寺庙、菊花、红色",
			Rubric:    `Transcribe the audio. Count how many of these words are spontaneously recalled: 面孔, 丝绒, 寺庙, 菊花, 红色. Each correctly recalled word = 1 point. Must be unprompted recall. Accept slight pronunciation variations but NOT synonyms (脸 ≠ 面孔, 庙 alone ≠ 寺庙). Return ONLY: {"score": <0-5>, "reasoning": "回忆出X个:[列出词]"}`,
		},
		{
			ID: "moca_orientation_date", Instrument: MoCA, Category: "定向力",
			Text: "今天是几号？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: fmt.Sprintf("%d号", date),
			Rubric: fmt.Sprintf(`Current date: %d年%d月%d日. Today is %d号. Accept ±1 day (%d, %d, %d), with or without 号/日. More than one day off scores 0. Return ONLY: {"score": 0 or 1, "reasoning": "回答X号，今天是%d号"}`,
				year, month, date, date, date-1, date, date+1, date),
		},
		{
			ID: "moca_orientation_month", Instrument: MoCA, Category: "定向力",
			Text: "现在是几月份？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: fmt.Sprintf("%d月", month),
			Rubric: fmt.Sprintf(`Current month: %d月. Accept %d, %d月, or the Chinese month name. The month must be exact, no tolerance. Return ONLY: {"score": 0 or 1, "reasoning": "回答是否正确，现在是%d月"}`,
				month, month, month, month),
		},
		{
			ID: "moca_orientation_year", Instrument: MoCA, Category: "定向力",
			Text: "今年是哪一年？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: fmt.Sprintf("%d年", year),
			Rubric: fmt.Sprintf(`Current year: %d. Accept %d, %d年, or Chinese number form. The year must be exact. Return ONLY: {"score": 0 or 1, "reasoning": "是否正确，今年%d年"}`,
				year, year, year, year),
		},
		{
			ID: "moca_orientation_day", Instrument: MoCA, Category: "定向力",
			Text: "今天是星期几？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: weekday,
			Rubric: fmt.Sprintf(`Today is %s. Accept 周/礼拜 variants. The day must match exactly. Return ONLY: {"score": 0 or 1, "reasoning": "今天%s"}`,
				weekday, weekday),
		},
		{
			ID: "moca_orientation_place", Instrument: MoCA, Category: "定向力",
			Text: "我们现在在什么地方？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "医院/家里/诊所等合理地点",
			Rubric:    `Scoring (1 point): the answer must give a reasonable current location (医院, 家里/家中, 诊所, 康复中心, or a specific place name). Absurd answers (月球, 海底) or a bare 不知道 score 0. Return ONLY: {"score": 0 or 1, "reasoning": "地点描述合理性"}`,
		},
		{
			ID: "moca_orientation_city", Instrument: MoCA, Category: "定向力",
			Text: "我们现在在哪个城市？", Kind: InputText, Strategy: StrategyExternal, MaxScore: 1,
			AnswerKey: "合理的城市名称",
			Rubric:    `Scoring (1 point): the answer must be a reasonable city name, accepting variation like 南京 vs 南京市. Obviously-not-a-city or nonsensical answers score 0. Return ONLY: {"score": 0 or 1, "reasoning": "城市名称合理性"}`,
		},
	}
}
