package catalog

import "fmt"

// adlOptions are the four ordinal levels shared by every ADL item.
// The option number is the item's score: 1 is fully independent,
// 4 is unable to do at all.
var adlOptions = []string{
	"1. 自己可以做",
	"2. 有些困难",
	"3. 需要帮助",
	"4. 根本无法做",
}

var adlItems = []struct {
	id   string
	text string
}{
	{"adl_01_bus", "自己搭乘公共汽车"},
	{"adl_02_nearby", "在住地附近活动"},
	{"adl_03_cook_fire", "自己做饭（包括生火）"},
	{"adl_04_housework", "做家务"},
	{"adl_05_medicine", "吃药"},
	{"adl_06_eating", "吃饭"},
	{"adl_07_dressing", "穿衣服、脱衣服"},
	{"adl_08_grooming", "梳头、刷牙等"},
	{"adl_09_laundry", "洗自己的衣服"},
	{"adl_10_walk_indoor", "在平坦的室内走"},
	{"adl_11_stairs", "上下楼梯"},
	{"adl_12_bed_chair", "上下床、坐下或站起"},
	{"adl_13_prepare_meal", "做饭"},
	{"adl_14_bathing", "洗澡"},
	{"adl_15_toenails", "剪脚趾甲"},
	{"adl_16_shopping", "逛街、购物"},
	{"adl_17_toilet", "上厕所"},
	{"adl_18_phone", "打电话"},
	{"adl_19_money", "处理自己的钱财"},
	{"adl_20_alone", "独自在家"},
}

func adlQuestions() []Question {
	qs := make([]Question, 0, len(adlItems))
	for i, item := range adlItems {
		qs = append(qs, Question{
			ID:         item.id,
			Instrument: ADL,
			Category:   "日常生活能力",
			Text:       fmt.Sprintf("%d. %s", i+1, item.text),
			Kind:       InputChoice,
			Strategy:   StrategyChoice,
			MaxScore:   4,
			Options:    adlOptions,
			AnswerKey:  "1分=正常，2-4分=功能下降",
		})
	}
	return qs
}
