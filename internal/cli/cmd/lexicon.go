package cmd

import "github.com/qianyan/rimekit/internal/rime"

// demoLexicon is a small pinyin table for the interactive repl. Real
// deployments replace the demo engine with a full backend.
func demoLexicon() map[string][]string {
	return map[string][]string{
		"ni":       {"你", "尼", "泥", "逆"},
		"hao":      {"好", "号", "毫", "豪", "耗"},
		"nihao":    {"你好", "尼好"},
		"shi":      {"是", "时", "事", "十", "市", "试", "式", "世", "识", "石", "食", "使"},
		"jie":      {"界", "接", "街", "节"},
		"shijie":   {"世界", "视界"},
		"ma":       {"吗", "马", "妈", "码"},
		"zhong":    {"中", "种", "重", "钟"},
		"wen":      {"文", "问", "闻", "稳"},
		"zhongwen": {"中文"},
		"xie":      {"写", "谢", "些", "鞋"},
		"xiexie":   {"谢谢"},
	}
}

func demoSchemas() []rime.Schema {
	return []rime.Schema{
		{ID: "pinyin", Name: "Pinyin"},
		{ID: "wubi", Name: "Wubi 86"},
	}
}

func demoColorSchemes() []rime.ColorScheme {
	return []rime.ColorScheme{
		{Name: "aqua", Background: "#EDF4F7", Text: "#104B72", CandidateText: "#1A6E9C"},
		{Name: "ink", Background: "#1C1C1C", Text: "#E8E8E8", CandidateText: "#B5BD68"},
	}
}
