package diagnosis

// Bank is the fixed question bank, in display order.
var Bank = []Question{
	{
		ID:     1,
		Prompt: "あなたの体の「温度感覚」について教えてください",
		Options: []Option{
			{Value: "very_cold", Label: "手足が氷のように冷たく、夏でも靴下が必要", Category: "cold"},
			{Value: "cold", Label: "手足が冷たいことが多く、温かい飲み物が手放せない", Category: "cold"},
			{Value: "normal", Label: "普通の体温で、季節に応じて適切に感じる", Category: "balanced"},
			{Value: "warm", Label: "体が温かく、汗をかきやすい体質", Category: "heat"},
		},
	},
	{
		ID:     2,
		Prompt: "最近の「疲れの質」はどのような感じですか？",
		Options: []Option{
			{Value: "very_high", Label: "朝から疲れていて、何をするのも億劫", Category: "stress"},
			{Value: "high", Label: "夕方になると疲れがピークになり、家事もままならない", Category: "stress"},
			{Value: "medium", Label: "時々疲れを感じるが、休めば回復する", Category: "balanced"},
			{Value: "low", Label: "疲れを感じることは少なく、元気に過ごしている", Category: "balanced"},
		},
	},
	{
		ID:     3,
		Prompt: "「むくみ」で最も気になる部分はどこですか？",
		Options: []Option{
			{Value: "severe", Label: "夕方になると足がパンパンで、靴がきつくなる", Category: "swelling"},
			{Value: "often", Label: "朝起きると顔がむくんでいて、まぶたが重い", Category: "swelling"},
			{Value: "sometimes", Label: "時々むくみを感じるが、すぐに解消される", Category: "balanced"},
			{Value: "rarely", Label: "むくみを感じることはほとんどない", Category: "balanced"},
		},
	},
	{
		ID:     4,
		Prompt: "あなたの「肌の悩み」で最も深刻なものは？",
		Options: []Option{
			{Value: "very_dry", Label: "乾燥がひどく、かゆみや粉吹きが気になる", Category: "dry_skin"},
			{Value: "dry", Label: "乾燥しやすく、化粧のりが悪い", Category: "dry_skin"},
			{Value: "oily", Label: "皮脂が多く、ニキビやテカリが気になる", Category: "oily_skin"},
			{Value: "normal", Label: "特に肌の悩みはなく、安定している", Category: "balanced"},
		},
	},
	{
		ID:     5,
		Prompt: "「睡眠の質」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "very_poor", Label: "寝つきが悪く、夜中に何度も目が覚めてしまう", Category: "sleep"},
			{Value: "poor", Label: "眠りが浅く、朝起きても疲れが取れない", Category: "sleep"},
			{Value: "light", Label: "時々眠りが浅いが、基本的には眠れる", Category: "sleep"},
			{Value: "good", Label: "よく眠れて、朝すっきり起きられる", Category: "balanced"},
		},
	},
	{
		ID:     6,
		Prompt: "「女性特有の体調」で最も気になることは？（該当する方のみ）",
		Options: []Option{
			{Value: "very_irregular", Label: "生理が不規則で、痛みや出血量が多い", Category: "hormone"},
			{Value: "irregular", Label: "生理周期が不安定で、PMSがひどい", Category: "hormone"},
			{Value: "heavy", Label: "生理痛が重く、鎮痛剤が必要", Category: "hormone"},
			{Value: "normal", Label: "生理は比較的規則的で、大きな不調はない", Category: "balanced"},
		},
	},
	{
		ID:     7,
		Prompt: "日常的に感じる「体の不調」で最も気になるのは？",
		Options: []Option{
			{Value: "headache", Label: "頭痛や肩こりが慢性化していて、マッサージが欠かせない", Category: "stress"},
			{Value: "digestive", Label: "胃もたれや便秘が続き、お腹の調子が悪い", Category: "digestive"},
			{Value: "back_pain", Label: "腰痛や関節痛があり、体を動かすのが億劫", Category: "cold"},
			{Value: "none", Label: "特に体の不調は感じない", Category: "balanced"},
		},
	},
	{
		ID:     8,
		Prompt: "「運動習慣」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "none", Label: "ほとんど運動をしていない", Category: "balanced"},
			{Value: "light", Label: "散歩や軽いストレッチ程度", Category: "balanced"},
			{Value: "regular", Label: "週に2-3回程度、定期的に運動している", Category: "balanced"},
			{Value: "intense", Label: "毎日運動をしているか、激しい運動をしている", Category: "balanced"},
		},
	},
	{
		ID:     9,
		Prompt: "「食欲と食事」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "poor_appetite", Label: "食欲がなく、食べてもすぐ満腹になる", Category: "digestive"},
			{Value: "overeating", Label: "食欲が旺盛で、つい食べ過ぎてしまう", Category: "digestive"},
			{Value: "irregular", Label: "食事時間が不規則で、朝食を抜くことが多い", Category: "digestive"},
			{Value: "normal", Label: "普通の食欲で、規則正しく食べている", Category: "balanced"},
		},
	},
	{
		ID:     10,
		Prompt: "「心の状態」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "anxiety", Label: "不安やイライラを感じることが多く、心が落ち着かない", Category: "stress"},
			{Value: "depression", Label: "気分が落ち込みやすく、やる気が出ない", Category: "stress"},
			{Value: "mood_swings", Label: "気分の変動が激しく、感情のコントロールが難しい", Category: "hormone"},
			{Value: "stable", Label: "精神的に安定していて、前向きに過ごしている", Category: "balanced"},
		},
	},
	{
		ID:     11,
		Prompt: "「季節の変化」で最も体調を崩しやすいのは？",
		Options: []Option{
			{Value: "spring", Label: "春の花粉症やアレルギー症状がひどい", Category: "allergy"},
			{Value: "summer", Label: "夏の暑さで体調を崩しやすい", Category: "heat"},
			{Value: "autumn", Label: "秋の気温差で風邪をひきやすい", Category: "cold"},
			{Value: "winter", Label: "冬の寒さで体が冷えて不調になる", Category: "cold"},
		},
	},
	{
		ID:     12,
		Prompt: "「ストレス解消法」として、最も効果を感じるのは？",
		Options: []Option{
			{Value: "bath", Label: "お風呂に入ってリラックスする", Category: "relaxation"},
			{Value: "exercise", Label: "運動して体を動かす", Category: "active"},
			{Value: "sleep", Label: "十分な睡眠を取る", Category: "sleep"},
			{Value: "hobby", Label: "趣味に没頭する", Category: "balanced"},
		},
	},
	{
		ID:     13,
		Prompt: "「肩こり・首こり」の程度はどのくらいですか？",
		Options: []Option{
			{Value: "severe", Label: "常に肩が重く、マッサージが欠かせない", Category: "cold"},
			{Value: "often", Label: "よく肩こりを感じ、疲れるとひどくなる", Category: "stress"},
			{Value: "sometimes", Label: "時々肩こりを感じるが、すぐに解消される", Category: "balanced"},
			{Value: "rarely", Label: "肩こりを感じることはほとんどない", Category: "balanced"},
		},
	},
	{
		ID:     14,
		Prompt: "「便秘」の頻度はどのくらいですか？",
		Options: []Option{
			{Value: "chronic", Label: "慢性的に便秘で、薬に頼ることが多い", Category: "digestive"},
			{Value: "often", Label: "よく便秘になり、お腹の張りが気になる", Category: "digestive"},
			{Value: "sometimes", Label: "時々便秘になるが、自然に解消される", Category: "balanced"},
			{Value: "rarely", Label: "便秘を感じることはほとんどない", Category: "balanced"},
		},
	},
	{
		ID:     15,
		Prompt: "「生理痛」の程度はどのくらいですか？（該当する方のみ）",
		Options: []Option{
			{Value: "severe", Label: "鎮痛剤が必要で、動けないほど痛い", Category: "hormone"},
			{Value: "moderate", Label: "痛みがあり、体を休めたい", Category: "hormone"},
			{Value: "mild", Label: "軽い痛みがあるが、日常生活に支障はない", Category: "balanced"},
			{Value: "none", Label: "生理痛はほとんど感じない", Category: "balanced"},
		},
	},
	{
		ID:     16,
		Prompt: "「PMS（月経前症候群）」の症状はありますか？（該当する方のみ）",
		Options: []Option{
			{Value: "severe", Label: "イライラ、むくみ、頭痛など症状が重い", Category: "hormone"},
			{Value: "moderate", Label: "気分の変動や体調の変化を感じる", Category: "hormone"},
			{Value: "mild", Label: "軽い症状があるが、気にならない程度", Category: "balanced"},
			{Value: "none", Label: "PMSの症状は感じない", Category: "balanced"},
		},
	},
	{
		ID:     17,
		Prompt: "「頭痛」の頻度はどのくらいですか？",
		Options: []Option{
			{Value: "chronic", Label: "慢性的な頭痛があり、薬が手放せない", Category: "stress"},
			{Value: "often", Label: "よく頭痛になり、ストレスで悪化する", Category: "stress"},
			{Value: "sometimes", Label: "時々頭痛を感じるが、すぐに治る", Category: "balanced"},
			{Value: "rarely", Label: "頭痛を感じることはほとんどない", Category: "balanced"},
		},
	},
	{
		ID:     18,
		Prompt: "「腰痛」の程度はどのくらいですか？",
		Options: []Option{
			{Value: "severe", Label: "常に腰痛があり、動くのがつらい", Category: "pain"},
			{Value: "often", Label: "よく腰痛になり、長時間座ると悪化する", Category: "cold"},
			{Value: "sometimes", Label: "時々腰痛を感じるが、休めば治る", Category: "balanced"},
			{Value: "rarely", Label: "腰痛を感じることはほとんどない", Category: "balanced"},
		},
	},
	{
		ID:     19,
		Prompt: "「食欲」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "very_poor", Label: "食欲がなく、食べてもすぐ満腹になる", Category: "digestive"},
			{Value: "poor", Label: "食欲が少なく、少量でも満足する", Category: "stress"},
			{Value: "normal", Label: "普通の食欲で、おいしく食べられる", Category: "balanced"},
			{Value: "strong", Label: "食欲が旺盛で、つい食べ過ぎてしまう", Category: "digestive"},
		},
	},
	{
		ID:     20,
		Prompt: "「胃もたれ・胃痛」の頻度はどのくらいですか？",
		Options: []Option{
			{Value: "chronic", Label: "慢性的に胃の調子が悪く、薬を常用している", Category: "digestive"},
			{Value: "often", Label: "よく胃もたれを感じ、ストレスで悪化する", Category: "stress"},
			{Value: "sometimes", Label: "時々胃もたれを感じるが、すぐに治る", Category: "balanced"},
			{Value: "rarely", Label: "胃の不調を感じることはほとんどない", Category: "balanced"},
		},
	},
	{
		ID:     21,
		Prompt: "「肌の乾燥」の程度はどのくらいですか？",
		Options: []Option{
			{Value: "severe", Label: "とても乾燥していて、かゆみや粉吹きがある", Category: "dry_skin"},
			{Value: "moderate", Label: "乾燥しやすく、化粧のりが悪い", Category: "dry_skin"},
			{Value: "mild", Label: "時々乾燥を感じるが、保湿で改善する", Category: "balanced"},
			{Value: "none", Label: "肌の乾燥を感じることはほとんどない", Category: "balanced"},
		},
	},
	{
		ID:     22,
		Prompt: "「ニキビ・肌荒れ」の頻度はどのくらいですか？",
		Options: []Option{
			{Value: "chronic", Label: "慢性的にニキビができ、肌荒れが続いている", Category: "oily_skin"},
			{Value: "often", Label: "よくニキビができ、生理前やストレスで悪化する", Category: "hormone"},
			{Value: "sometimes", Label: "時々ニキビができるが、すぐに治る", Category: "balanced"},
			{Value: "rarely", Label: "ニキビや肌荒れを感じることはほとんどない", Category: "balanced"},
		},
	},
	{
		ID:     23,
		Prompt: "「夜中に目が覚める」頻度はどのくらいですか？",
		Options: []Option{
			{Value: "every_night", Label: "毎晩目が覚めて、再び眠るのが難しい", Category: "sleep"},
			{Value: "often", Label: "よく夜中に目が覚める", Category: "sleep"},
			{Value: "sometimes", Label: "時々夜中に目が覚めるが、すぐに眠れる", Category: "balanced"},
			{Value: "rarely", Label: "夜中に目が覚めることはほとんどない", Category: "balanced"},
		},
	},
	{
		ID:     24,
		Prompt: "「寝つきの悪さ」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "very_bad", Label: "寝つきがとても悪く、1時間以上かかる", Category: "sleep"},
			{Value: "bad", Label: "寝つきが悪く、30分以上かかることが多い", Category: "sleep"},
			{Value: "sometimes", Label: "時々寝つきが悪いが、基本的には眠れる", Category: "balanced"},
			{Value: "good", Label: "寝つきは良く、すぐに眠れる", Category: "balanced"},
		},
	},
	{
		ID:     25,
		Prompt: "「気分の変動」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "severe", Label: "気分の変動が激しく、感情のコントロールが難しい", Category: "hormone"},
			{Value: "moderate", Label: "時々気分が変わりやすく、イライラすることがある", Category: "stress"},
			{Value: "mild", Label: "軽い気分の変動はあるが、コントロールできる", Category: "balanced"},
			{Value: "stable", Label: "気分は安定していて、大きな変動はない", Category: "balanced"},
		},
	},
	{
		ID:     26,
		Prompt: "「集中力」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "very_poor", Label: "集中力がなく、何をしても続かない", Category: "stress"},
			{Value: "poor", Label: "集中力が低く、すぐに気が散る", Category: "sleep"},
			{Value: "normal", Label: "普通の集中力で、必要な時は集中できる", Category: "balanced"},
			{Value: "good", Label: "集中力があり、長時間作業できる", Category: "balanced"},
		},
	},
	{
		ID:     27,
		Prompt: "「免疫力」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "very_weak", Label: "風邪をひきやすく、体調を崩しやすい", Category: "cold"},
			{Value: "weak", Label: "疲れると体調を崩しやすい", Category: "stress"},
			{Value: "normal", Label: "普通の免疫力で、大きな病気はしない", Category: "balanced"},
			{Value: "strong", Label: "免疫力が強く、体調を崩すことは少ない", Category: "balanced"},
		},
	},
	{
		ID:     28,
		Prompt: "「体重の変動」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "large", Label: "体重の変動が大きく、1-2kgの増減がある", Category: "swelling"},
			{Value: "moderate", Label: "時々体重が変動する", Category: "digestive"},
			{Value: "small", Label: "体重の変動は少ない", Category: "balanced"},
			{Value: "stable", Label: "体重は安定していて、大きな変動はない", Category: "balanced"},
		},
	},
	{
		ID:     29,
		Prompt: "「疲れの回復」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "very_slow", Label: "疲れが取れにくく、何日も続く", Category: "stress"},
			{Value: "slow", Label: "疲れの回復が遅く、休んでもなかなか取れない", Category: "sleep"},
			{Value: "normal", Label: "普通の疲れで、休めば回復する", Category: "balanced"},
			{Value: "fast", Label: "疲れの回復が早く、すぐに元気になる", Category: "balanced"},
		},
	},
	{
		ID:     30,
		Prompt: "「生活習慣」について、最も当てはまるのは？",
		Options: []Option{
			{Value: "irregular", Label: "生活が不規則で、食事や睡眠時間がバラバラ", Category: "digestive"},
			{Value: "busy", Label: "忙しくて、自分の時間が取れない", Category: "stress"},
			{Value: "normal", Label: "普通の生活で、適度にリラックスタイムがある", Category: "balanced"},
			{Value: "healthy", Label: "健康的な生活を心がけている", Category: "balanced"},
		},
	},
}

// Titles holds the display title for each bank position. It is aligned
// by index, not by question id, and may be longer than Bank.
var Titles = []string{
	"あなたの手足の冷えの程度は？",
	"体の疲れやすさについて、最も当てはまるのは？",
	"むくみの程度はどのくらいですか？",
	"ストレスを感じる頻度はどのくらいですか？",
	"睡眠の質について、最も当てはまるのは？",
	"食欲について、最も当てはまるのは？",
	"肌の状態について、最も当てはまるのは？",
	"生理周期の規則性は？",
	"頭痛の頻度はどのくらいですか？",
	"腰痛の程度はどのくらいですか？",
	"胃もたれ・胃痛の頻度はどのくらいですか？",
	"便秘の頻度はどのくらいですか？",
	"下痢の頻度はどのくらいですか？",
	"肩こりの程度はどのくらいですか？",
	"めまいの頻度はどのくらいですか？",
	"動悸の頻度はどのくらいですか？",
	"息切れの頻度はどのくらいですか？",
	"生理痛の程度はどのくらいですか？",
	"PMS（月経前症候群）の症状はありますか？",
	"頭痛の頻度はどのくらいですか？",
	"腰痛の程度はどのくらいですか？",
	"食欲について、最も当てはまるのは？",
	"胃もたれ・胃痛の頻度はどのくらいですか？",
	"肌の乾燥の程度はどのくらいですか？",
	"ニキビ・肌荒れの頻度はどのくらいですか？",
	"夜中に目が覚める頻度はどのくらいですか？",
	"寝つきの悪さについて、最も当てはまるのは？",
	"気分の変動について、最も当てはまるのは？",
	"イライラの頻度はどのくらいですか？",
	"不安感の程度はどのくらいですか？",
	"集中力の低下について、最も当てはまるのは？",
}
