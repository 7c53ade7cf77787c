package diagnosis

// BodyType is the display bundle for a canonical category.
type BodyType struct {
	Key                string   `json:"key"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Symptoms           []string `json:"symptoms"`
	Recommendation     string   `json:"recommendation"`
	RecommendationDesc string   `json:"recommendation_desc"`
	Color              string   `json:"color"`
	DailyTips          []string `json:"daily_tips"`
	PositiveMessage    string   `json:"positive_message"`
}

var bodyTypes = map[string]BodyType{
	"cold": {
		Key:                "cold",
		Name:               "冷え性タイプ",
		Description:        "体の芯から冷えやすく、血行不良による様々な不調を感じやすいタイプです。冷えは万病の元と言われ、多くの症状の原因となっています。",
		Symptoms:           []string{"手足の冷え", "肩こり・首こり", "むくみ", "疲れやすさ", "生理痛", "腰痛", "便秘", "肌荒れ"},
		Recommendation:     "温活ブレンド",
		RecommendationDesc: "生姜、シナモン、よもぎを配合した温活ブレンドで、体の芯から温めて血行促進をサポートします。冷えによる不調を根本から改善します。",
		Color:              "blue",
		DailyTips: []string{
			"毎日10分の足湯で血行促進（40度のお湯で）",
			"生姜紅茶を習慣にして体を内側から温める",
			"腹巻きやレッグウォーマーで保温を徹底",
			"軽いストレッチで体を温める（特に下半身）",
			"温かい食事を心がけ、冷たい飲み物を避ける",
		},
		PositiveMessage: "冷えは改善可能です！多くの女性が冷えに悩んでいますが、体を温める習慣で、あなたの体は必ず変わります。よもぎ蒸しで芯から温まって、新しい自分に出会いましょう。",
	},
	"stress": {
		Key:                "stress",
		Name:               "ストレス・疲労タイプ",
		Description:        "日常的にストレスや疲れを感じやすく、心身の緊張が続いているタイプです。現代社会では多くの人がこのタイプに当てはまり、心身のバランスを崩しやすい状態です。",
		Symptoms:           []string{"慢性疲労", "イライラ・不安感", "睡眠不足", "頭痛・肩こり", "胃痛", "食欲不振", "集中力低下", "免疫力低下"},
		Recommendation:     "リラックスブレンド",
		RecommendationDesc: "ラベンダー、カモミール、よもぎを配合したリラックスブレンドで、心身の緊張を解きほぐし深いリラクゼーションを促します。ストレスによる不調を根本から改善します。",
		Color:              "purple",
		DailyTips: []string{
			"深呼吸を1日3回、5分ずつ行う（腹式呼吸で）",
			"アロマオイルでリラックスタイム（ラベンダーがおすすめ）",
			"軽い散歩で気分転換（自然の中を歩く）",
			"スマホの使用時間を制限（就寝1時間前から）",
			"温かいお風呂でリラックス（38-40度で20分）",
		},
		PositiveMessage: "ストレスは現代病ですが、あなたはもう対処法を知っています。多くの人が同じ悩みを抱えていますが、よもぎ蒸しで心身を癒して、本来の輝きを取り戻しましょう。",
	},
	"swelling": {
		Key:                "swelling",
		Name:               "むくみ・水分代謝タイプ",
		Description:        "水分代謝が滞りがちで、体内の余分な水分が蓄積しやすいタイプです。むくみは体からのSOSサインで、代謝機能の低下を示しています。",
		Symptoms:           []string{"足のむくみ", "顔のむくみ", "だるさ・重い感じ", "体重の変動", "冷え", "便秘", "肌のくすみ", "疲れやすさ"},
		Recommendation:     "デトックスブレンド",
		RecommendationDesc: "ハトムギ、どくだみ、よもぎを配合したデトックスブレンドで、余分な水分を排出し体内をクレンジングします。代謝機能を改善してむくみを根本から解決します。",
		Color:              "cyan",
		DailyTips: []string{
			"1日1.5Lの水をこまめに飲む（朝起きてコップ1杯から）",
			"塩分を控えた食事を心がける（1日6g以下）",
			"足を高くして寝る（15-20cm程度）",
			"軽いマッサージでリンパ流し（下から上へ）",
			"カリウム豊富な食材を摂る（バナナ、アボカドなど）",
		},
		PositiveMessage: "むくみは体からのSOSサイン。多くの女性がむくみに悩んでいますが、よもぎ蒸しでデトックスして、軽やかな体を手に入れましょう。あなたの体はもっと軽くなるはずです。",
	},
	"hormone": {
		Key:                "hormone",
		Name:               "ホルモンバランスタイプ",
		Description:        "女性ホルモンのバランスが乱れやすく、周期的な不調を感じやすいタイプです。女性の体は月のリズムと共に変化し、ホルモンの影響を大きく受けます。",
		Symptoms:           []string{"生理不順・PMS", "肌荒れ・ニキビ", "情緒不安定", "更年期症状", "疲れやすさ", "むくみ", "頭痛", "腰痛"},
		Recommendation:     "女性ケアブレンド",
		RecommendationDesc: "ローズ、チェストベリー、よもぎを配合した女性ケアブレンドで、女性ホルモンを整え女性特有の不調をケアします。女性らしい美しさを取り戻します。",
		Color:              "pink",
		DailyTips: []string{
			"大豆製品を積極的に摂る（納豆、豆腐、豆乳など）",
			"規則正しい生活リズムを保つ（睡眠時間を固定）",
			"ビタミンE豊富な食材を摂る（アーモンド、アボカドなど）",
			"適度な運動でホルモン分泌促進（ウォーキングがおすすめ）",
			"ストレスを溜めない生活を心がける（リラックスタイムを確保）",
		},
		PositiveMessage: "女性の体は月のリズムと共に変化します。多くの女性がホルモンバランスの乱れに悩んでいますが、よもぎ蒸しで女性ホルモンを整えて、美しく輝く女性らしさを取り戻しましょう。",
	},
	"digestive": {
		Key:                "digestive",
		Name:               "消化器系タイプ",
		Description:        "胃腸の働きが弱く、消化器系の不調を感じやすいタイプです。腸は第二の脳と言われ、全身の健康に大きく影響します。",
		Symptoms:           []string{"便秘・下痢", "胃もたれ・胃痛", "食欲不振・過食", "お腹の張り", "消化不良", "肌荒れ", "疲れやすさ", "免疫力低下"},
		Recommendation:     "胃腸ケアブレンド",
		RecommendationDesc: "カモミール、ペパーミント、よもぎを配合した胃腸ケアブレンドで、消化器系の働きを改善し胃腸を整えます。腸内環境を改善して全身の健康をサポートします。",
		Color:              "yellow",
		DailyTips: []string{
			"よく噛んでゆっくり食べる（一口30回以上）",
			"食物繊維豊富な食材を摂る（野菜、果物、玄米など）",
			"朝起きてコップ1杯の水を飲む（常温で）",
			"適度な運動で腸の動きを促進（ウォーキングが効果的）",
			"ストレスを避けた食事時間を心がける（リラックスして食べる）",
		},
		PositiveMessage: "腸は第二の脳と言われます。多くの人が胃腸の不調に悩んでいますが、よもぎ蒸しで胃腸を整えて、体の中から健康になりましょう。あなたの体は必ず応えてくれます。",
	},
	"sleep": {
		Key:                "sleep",
		Name:               "睡眠障害タイプ",
		Description:        "睡眠の質が悪く、心身の回復が十分でないタイプです。質の良い睡眠は最高の美容液と言われ、健康の基盤となります。",
		Symptoms:           []string{"寝つきの悪さ", "夜中覚醒", "眠りが浅い", "日中の眠気", "疲労感", "集中力低下", "イライラ", "肌荒れ"},
		Recommendation:     "安眠ブレンド",
		RecommendationDesc: "パッションフラワー、バレリアン、よもぎを配合した安眠ブレンドで、質の良い睡眠をサポートし心身の回復を促します。深い眠りで体を癒します。",
		Color:              "indigo",
		DailyTips: []string{
			"就寝1時間前はスマホを見ない（ブルーライトを避ける）",
			"温かいハーブティーでリラックス（カモミールがおすすめ）",
			"寝室を暗く静かに保つ（遮光カーテンを使用）",
			"毎日同じ時間に寝る習慣をつける（体内時計を整える）",
			"軽いストレッチで体をリラックス（就寝30分前）",
		},
		PositiveMessage: "質の良い睡眠は最高の美容液です。多くの人が睡眠の質に悩んでいますが、よもぎ蒸しで深い眠りを手に入れて、朝目覚めた時の爽快感を体験しましょう。",
	},
	"skin": {
		Key:                "skin",
		Name:               "肌トラブルタイプ",
		Description:        "肌の状態が不安定で、様々な肌トラブルを抱えやすいタイプです。美しい肌は健康の証で、内側からのケアが重要です。",
		Symptoms:           []string{"乾燥肌・敏感肌", "ニキビ・肌荒れ", "かゆみ・赤み", "くすみ・シミ", "毛穴の開き", "肌のたるみ", "アレルギー", "肌の疲れ"},
		Recommendation:     "美肌ブレンド",
		RecommendationDesc: "カレンデュラ、アロエベラ、よもぎを配合した美肌ブレンドで、肌を整え内側から輝く美しさをサポートします。肌のターンオーバーを促進します。",
		Color:              "green",
		DailyTips: []string{
			"十分な水分補給を心がける（1日1.5L以上）",
			"ビタミンC豊富な食材を摂る（柑橘類、ブロッコリーなど）",
			"肌に優しいスキンケア用品を使用（低刺激のものを選ぶ）",
			"十分な睡眠で肌の修復を促進（7-8時間の睡眠）",
			"ストレスを避けて肌の状態を安定（リラックスタイムを確保）",
		},
		PositiveMessage: "美しい肌は健康の証です。多くの女性が肌トラブルに悩んでいますが、よもぎ蒸しで肌を整えて、内側から輝く美しさを手に入れましょう。あなたの肌はもっと美しくなります。",
	},
	"balanced": {
		Key:                "balanced",
		Name:               "バランスタイプ",
		Description:        "全体的に健康的で、予防やリラクゼーションが中心のタイプです。予防は最高の治療と言われ、健康維持の意識が高い方です。",
		Symptoms:           []string{"健康維持", "美容効果", "リラクゼーション", "予防ケア", "体調管理", "免疫力向上", "アンチエイジング", "心身のバランス"},
		Recommendation:     "バランスブレンド",
		RecommendationDesc: "よもぎ、ローズヒップ、レモングラスを配合したバランスブレンドで、美容と健康維持を総合的にサポートします。予防医学の観点から健康をサポートします。",
		Color:              "emerald",
		DailyTips: []string{
			"バランスの取れた食事を心がける（和食中心の食事）",
			"適度な運動習慣を継続（週3回30分のウォーキング）",
			"十分な睡眠で体を休める（7-8時間の質の良い睡眠）",
			"ストレス管理を意識した生活（マインドフルネスを取り入れる）",
			"定期的なリラックスタイムを設ける（週末は自分時間を確保）",
		},
		PositiveMessage: "あなたは既に健康のバランスを保つ力を持っています。多くの人が健康維持に悩んでいますが、よもぎ蒸しでさらに美しく、より輝く自分になりましょう。予防は最高の治療です。",
	},
}

// LookupBodyType returns the bundle for a canonical category. Unknown keys
// yield the balanced bundle and false.
func LookupBodyType(key string) (BodyType, bool) {
	if bt, ok := bodyTypes[key]; ok {
		return bt, true
	}
	return bodyTypes[Balanced], false
}

// BodyTypes returns every bundle in canonical order.
func BodyTypes() []BodyType {
	out := make([]BodyType, 0, len(Canonical))
	for _, k := range Canonical {
		out = append(out, bodyTypes[k])
	}
	return out
}
