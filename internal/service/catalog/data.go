package catalog

var blends = []Blend{
	{
		Key:         "warming",
		Label:       "温活ブレンド",
		Subtitle:    "冷え性・血行不良の方に",
		Description: "トウキ、ケイヒ、センキュウを配合した温活ブレンドで、体の芯から温めて血行促進をサポートします。",
		Ingredients: []string{"ガイヨウ", "トウキ", "ケイヒ", "センキュウ"},
		Effects:     []string{"体温上昇", "血行促進", "冷え性改善", "新陳代謝向上"},
		Price:       6000,
		Color:       "orange",
	},
	{
		Key:         "relaxing",
		Label:       "リラックスブレンド",
		Subtitle:    "ストレス・疲労の方に",
		Description: "カミツレ、ウイキョウ、チンビを配合したリラックスブレンドで、心身の緊張を解きほぐし深いリラクゼーションを促します。",
		Ingredients: []string{"ガイヨウ", "カミツレ", "ウイキョウ", "チンビ"},
		Effects:     []string{"リラックス", "ストレス解消", "睡眠改善", "自律神経調整"},
		Price:       6500,
		Color:       "purple",
	},
	{
		Key:         "detox",
		Label:       "デトックスブレンド",
		Subtitle:    "むくみ・水分代謝の方に",
		Description: "インチンコウ、ビャクシ、ガイヨウを配合したデトックスブレンドで、余分な水分を排出し体内をクレンジングします。",
		Ingredients: []string{"ガイヨウ", "インチンコウ", "ビャクシ", "センキュウ"},
		Effects:     []string{"デトックス", "むくみ改善", "利尿作用", "老廃物排出"},
		Price:       6500,
		Color:       "blue",
	},
	{
		Key:         "hormone",
		Label:       "女性ケアブレンド",
		Subtitle:    "ホルモンバランスの方に",
		Description: "トウキ、センキュウ、ガイヨウを配合した女性ケアブレンドで、女性ホルモンを整え女性特有の不調をケアします。",
		Ingredients: []string{"ガイヨウ", "トウキ", "センキュウ", "ケイヒ"},
		Effects:     []string{"ホルモンバランス調整", "生理不順改善", "PMS緩和", "女性機能向上"},
		Price:       7000,
		Color:       "pink",
	},
	{
		Key:         "digestive",
		Label:       "胃腸ケアブレンド",
		Subtitle:    "消化器系の方に",
		Description: "カミツレ、ウイキョウ、ビャクシを配合した胃腸ケアブレンドで、消化器系の働きを改善し胃腸を整えます。",
		Ingredients: []string{"ガイヨウ", "カミツレ", "ウイキョウ", "ビャクシ"},
		Effects:     []string{"消化促進", "胃腸調整", "食欲改善", "便秘解消"},
		Price:       6000,
		Color:       "yellow",
	},
	{
		Key:         "sleep",
		Label:       "安眠ブレンド",
		Subtitle:    "睡眠障害の方に",
		Description: "カミツレ、チンビ、ウイキョウを配合した安眠ブレンドで、質の良い睡眠をサポートし心身の回復を促します。",
		Ingredients: []string{"ガイヨウ", "カミツレ", "チンビ", "ウイキョウ"},
		Effects:     []string{"睡眠改善", "リラックス", "ストレス解消", "心身回復"},
		Price:       6500,
		Color:       "indigo",
	},
	{
		Key:         "skin",
		Label:       "美肌ブレンド",
		Subtitle:    "美容効果を求める方に",
		Description: "インチンコウ、センキュウ、ガイヨウを配合した美肌ブレンドで、肌の調子を整え美しさを引き出します。",
		Ingredients: []string{"ガイヨウ", "インチンコウ", "センキュウ", "トウキ"},
		Effects:     []string{"美肌効果", "肌荒れ改善", "アンチエイジング", "保湿"},
		Price:       7000,
		Color:       "rose",
	},
	{
		Key:         "balanced",
		Label:       "バランスブレンド",
		Subtitle:    "全体のバランスを整えたい方に",
		Description: "ガイヨウ、チンビ、ウイキョウを配合したバランスブレンドで、心身のバランスを整えます。",
		Ingredients: []string{"ガイヨウ", "チンビ", "ウイキョウ", "カミツレ"},
		Effects:     []string{"バランス調整", "リフレッシュ", "ストレス緩和", "全体調整"},
		Price:       6000,
		Color:       "green",
	},
}

var menuItems = []MenuItem{
	{
		ID:            "body-reset-course",
		Title:         "1番人気!しっかり体質リセットコース!ボディメイクマッサージ付き劇的変身",
		Category:      "ボディトリ",
		Description:   "全身リンパ+水素足湯+ルルオン45分+ボディメイク付き。冷え性の方に特におすすめの「すごい」水素足湯。特定部位のボディケアで結果を重視する方の贅沢コース。",
		Price:         7200,
		OriginalPrice: 9800,
		Duration:      "90分",
		Tags:          []string{"ボディトリ", "ボディケア", "足裏・リフレ", "ヘッド", "ボディ", "その他"},
		Features:      []string{"全身リンパマッサージ", "水素足湯", "ルルオン45分", "ボディメイクマッサージ"},
		Conditions:    []string{"予約時・入店時に提示", "新規限定"},
		Expiration:    "2025年7月末日まで",
		New:           true,
		Popular:       true,
	},
	{
		ID:          "weight-loss-facial",
		Title:       "2番人気【大満足の20%オフ】痩せるだけじゃない! 小顔美肌フェイシャルつき",
		Category:    "ボディトリ",
		Description: "全身リンパマッサージ+水素足湯+ルルオン60分+柔らかくなった脂肪を全身造形マッサージでお仕上げ!+水素美顔。本気で痩せたい方に「脂肪燃焼! 滝汗デトックス!」",
		Price:       10400,
		Duration:    "120分",
		Tags:        []string{"ボディトリ", "ボディケア", "ボディ", "ブライダル"},
		Features:    []string{"全身リンパマッサージ", "水素足湯", "ルルオン60分", "全身造形マッサージ", "水素美顔"},
		Conditions:  []string{"予約時・入店時に提示", "新規限定"},
		Expiration:  "2025年7月末日まで",
		New:         true,
		Popular:     true,
	},
	{
		ID:          "basic-metabolism",
		Title:       "【らくらく代謝アップ】ルルオン60分+全身リンパ流しのベーシックコースです",
		Category:    "ボディトリ",
		Description: "全身リンパマッサージ15分+ルルオン60分。冷え/むくみ/女性特有のお悩みに◎。体中の深いリンパを流してスッキリ感を実感。最強デトックスルルオン(こだわりよもぎ蒸し)で美ボディに。",
		Price:       5000,
		Duration:    "75分",
		Tags:        []string{"ボディトリ", "ボディケア", "足裏・リフレ", "ボディ", "その他"},
		Features:    []string{"全身リンパマッサージ15分", "ルルオン60分"},
		Conditions:  []string{"予約時・入店時に提示", "新規限定"},
		Expiration:  "2025年7月末日まで",
		New:         true,
	},
	{
		ID:          "super-slimming-premium",
		Title:       "超最強痩身水素プレミアム! 本気痩せならHHOガスつきで最強燃焼痩身を!",
		Category:    "ボディ",
		Description: "水素酸素吸入60分+ルルオン60分同時進行+リンパマッサージ+水素足湯+ボディメイクマッサージ。最強痩身コース。有酸素運動と女性温活を組み合わせた痩身で「絶対痩せ」を実現。",
		Price:       12600,
		Duration:    "120分",
		Tags:        []string{"ボディ"},
		Features:    []string{"水素酸素吸入60分", "ルルオン60分", "リンパマッサージ", "水素足湯", "ボディメイクマッサージ"},
		Conditions:  []string{"予約必須", "新規限定"},
		Expiration:  "2025年7月末日まで",
		New:         true,
		Popular:     true,
	},
	{
		ID:            "waistline-cellulite",
		Title:         "くびれが欲しいセル脂肪が気になる等お悩み1つ解決 9600円→8000円",
		Category:      "ボディ",
		Description:   "1つのお悩みに集中したマッサージ。くびれが欲しい、太もものセル脂肪が気になる、二の腕を細くしたいなど。",
		Price:         8000,
		OriginalPrice: 9600,
		Duration:      "60分",
		Tags:          []string{"ボディ"},
		Features:      []string{"集中マッサージ", "部位別ケア"},
		Conditions:    []string{"予約必須", "1ヶ月以内使用"},
		Expiration:    "2025年7月末日まで",
		New:           true,
	},
	{
		ID:          "transformation-3course",
		Title:       "【期間限定】劇的!変身応援3回コース",
		Category:    "ボディトリ",
		Description: "進化したよもぎ蒸し「ルルオン」を3日連続または1週間以内に3回。体に変化を感じる人気No.1コース。",
		Price:       20000,
		Duration:    "3回分",
		Tags:        []string{"ボディトリ", "ボディケア", "ボディ", "ブライダル", "その他"},
		Features:    []string{"ルルオン3回", "進化したよもぎ蒸し"},
		Conditions:  []string{"予約時・入店時に提示", "誰でも利用可能"},
		Expiration:  "2025年7月末日まで",
		New:         true,
		Limited:     true,
	},
	{
		ID:            "1week-intensive",
		Title:         "イベント前1週間短期コース(5日)ホームケアつき♪",
		Category:      "ボディ",
		Description:   "1週間で5回の集中コース。イベント前に急いで痩せたい方に。むくみを解消して痩せボディに。目に見える体重減。セリテラで美脚も。",
		Price:         55000,
		OriginalPrice: 91000,
		Duration:      "5日間",
		Tags:          []string{"ボディ"},
		Features:      []string{"5回集中コース", "ホームケア付き", "セリテラ"},
		Conditions:    []string{"予約必須", "1週間以内に5日参加可能な方"},
		Expiration:    "2025年7月末日まで",
		New:           true,
		Limited:       true,
	},
	{
		ID:            "facial-skin-care",
		Title:         "肌トラブル改善! 美肌目指す水素スチーム炭酸パックつき",
		Category:      "フェイシャル",
		Description:   "水素洗顔+リンパマッサージ+ルルオン45分+エアーG(水素スチーム)45分+水素化粧品で水素フェイシャル。炭酸パック(3000円相当)を夜のホームケアで使用。肌トラブルを徹底的にアプローチ。",
		Price:         8000,
		OriginalPrice: 10500,
		Duration:      "90分",
		Tags:          []string{"フェイシャル"},
		Features:      []string{"水素洗顔", "リンパマッサージ", "ルルオン45分", "エアーG45分", "水素フェイシャル", "炭酸パック"},
		Conditions:    []string{"予約時・入店時に提示", "新規限定"},
		Expiration:    "2025年7月末日まで",
		New:           true,
	},
	{
		ID:            "pregnant-women",
		Title:         "妊婦さん限定 【妊娠中の冷え・むくみ対策に◎90分",
		Category:      "ボディトリ",
		Description:   "安定期の妊婦さんにおすすめ。ルルオン60分+水素足湯15分+糖鎖サプリメント。子宮をしっかり温めてホルモンバランスを整える。女性特有のお悩みに効果的。",
		Price:         5000,
		OriginalPrice: 6250,
		Duration:      "90分",
		Tags:          []string{"ボディトリ", "ボディケア", "ボディ", "その他"},
		Features:      []string{"ルルオン60分", "水素足湯15分", "糖鎖サプリメント"},
		Conditions:    []string{"予約時・入店時に提示", "妊婦限定"},
		Expiration:    "2025年7月末日まで",
		New:           true,
	},
	{
		ID:            "pair-warmup",
		Title:         "ペア割温活コース(リンパマッサージ+ルルオン45分) 2人で",
		Category:      "ボディケア",
		Description:   "お友達、ご家族、カップル、パートナーで。体の芯から温めて免疫力アップ。",
		Price:         8000,
		OriginalPrice: 12500,
		Duration:      "60分",
		Tags:          []string{"ボディケア"},
		Features:      []string{"リンパマッサージ", "ルルオン45分", "ペア割引"},
		Conditions:    []string{"予約時・入店時に提示", "2人での利用"},
		Expiration:    "2025年7月末日まで",
		New:           true,
	},
	{
		ID:          "warmup-lulon-experience",
		Title:       "【子宮から冷え改善◎】温活ルルオン体験。こだわりよもぎ蒸しを体験できます",
		Category:    "ボディトリ",
		Description: "ルルオン45分。リラックスしたい方、温活したい方におすすめ。疲れた心と体へのご褒美。カウンセリング込みで約80分。こだわりよもぎ蒸しを体験。",
		Price:       4000,
		Duration:    "80分",
		Tags:        []string{"ボディトリ", "ボディケア", "足裏・リフレ", "ボディ", "その他"},
		Features:    []string{"ルルオン45分", "カウンセリング"},
		Conditions:  []string{"予約時・入店時に提示", "新規限定"},
		Expiration:  "2025年7月末日まで",
		New:         true,
	},
	{
		ID:          "short-term-diet",
		Title:       "短期集中 (1ヶ月)! 美ダイエット! 気になる部位を集中的に全身痩身へと",
		Category:    "ボディ",
		Description: "初回カウンセリングで気になる部位をお聞かせください。徹底的にアタックします!(例：二の腕)美ダイエットを成功させましょう!1ヶ月以内使用可能な11回チケット。",
		Price:       90000,
		Duration:    "11回分",
		Tags:        []string{"ボディ"},
		Features:    []string{"11回チケット", "集中部位ケア", "カウンセリング"},
		Conditions:  []string{"入店時に提示", "1ヶ月以内使用"},
		Expiration:  "2025年7月末日まで",
		New:         true,
	},
	{
		ID:          "student-discount-u24",
		Title:       "【学割U24】生理・女性特有のお悩みに☆ルルオン+リンパマッサージ!",
		Category:    "ボディケア",
		Description: "《カウンセリング → 背中リンパマッサージ 10分 → ルルオン 40分》学生さんに嬉しいコース ♪ [NETが×の場合はお電話ください]",
		Price:       4000,
		Duration:    "50分",
		Tags:        []string{"ボディケア", "ボディ", "その他"},
		Features:    []string{"カウンセリング", "背中リンパマッサージ10分", "ルルオン40分"},
		Conditions:  []string{"予約時・入店時に提示", "学生証提示", "24歳以下"},
		Expiration:  "2025年7月末日まで",
		New:         true,
	},
	{
		ID:            "fertility-support",
		Title:         "【妊活応援】ベビ待ちコース(糖鎖付)通常価格13000円→8500円",
		Category:      "ボディトリ",
		Description:   "全身リンパマッサージでコリをほぐし、水素足湯で足を温めてルルオン60分。水素ヘッドマッサージでストレスフリーな体でママになって赤ちゃんを迎える準備をしましょう!",
		Price:         8500,
		OriginalPrice: 13000,
		Duration:      "90分",
		Tags:          []string{"ボディトリ"},
		Features:      []string{"全身リンパマッサージ", "水素足湯", "ルルオン60分", "水素ヘッドマッサージ", "糖鎖サプリメント"},
		Conditions:    []string{"予約時提示", "1ヶ月以内使用"},
		Expiration:    "2025年7月末日まで",
		New:           true,
	},
}

var recommendations = []recommendation{
	{
		bodyType:    "cold",
		primary:     []string{"body-reset-course", "warmup-lulon-experience", "pair-warmup"},
		secondary:   []string{"basic-metabolism", "fertility-support"},
		explanation: "冷え性タイプのあなたには、体の芯から温めるコースが最適です。水素足湯やルルオンで血行促進を促し、冷えによる不調を根本から改善します。",
		benefits:    []string{"手足の冷えを改善", "血行促進で体を温める", "代謝アップで痩せやすい体に", "免疫力向上"},
	},
	{
		bodyType:    "stress",
		primary:     []string{"relaxing-lulon", "basic-metabolism", "warmup-lulon-experience"},
		secondary:   []string{"pair-warmup", "student-discount-u24"},
		explanation: "ストレス・疲労タイプのあなたには、リラックス効果の高いコースがおすすめです。リンパマッサージとルルオンで心身の緊張を解きほぐします。",
		benefits:    []string{"ストレス解消", "心身のリラックス", "睡眠の質向上", "自律神経の調整"},
	},
	{
		bodyType:    "swelling",
		primary:     []string{"basic-metabolism", "super-slimming-premium", "weight-loss-facial"},
		secondary:   []string{"waistline-cellulite", "1week-intensive"},
		explanation: "むくみ・水分代謝タイプのあなたには、デトックス効果の高いコースが最適です。リンパマッサージとルルオンで余分な水分を排出し、代謝を改善します。",
		benefits:    []string{"むくみ解消", "デトックス効果", "代謝アップ", "スッキリした体感"},
	},
	{
		bodyType:    "hormone",
		primary:     []string{"fertility-support", "pregnant-women", "warmup-lulon-experience"},
		secondary:   []string{"pair-warmup", "student-discount-u24"},
		explanation: "ホルモンバランスタイプのあなたには、女性特有の不調にアプローチするコースがおすすめです。子宮を温めてホルモンバランスを整えます。",
		benefits:    []string{"ホルモンバランス調整", "生理不順改善", "PMS緩和", "女性機能向上"},
	},
	{
		bodyType:    "digestive",
		primary:     []string{"basic-metabolism", "warmup-lulon-experience", "pair-warmup"},
		secondary:   []string{"student-discount-u24", "fertility-support"},
		explanation: "消化器系タイプのあなたには、体を温めて代謝を改善するコースが最適です。ルルオンで内臓を温め、消化器系の働きをサポートします。",
		benefits:    []string{"消化器系の改善", "代謝アップ", "便秘解消", "胃腸の調子改善"},
	},
	{
		bodyType:    "sleep",
		primary:     []string{"warmup-lulon-experience", "pair-warmup", "student-discount-u24"},
		secondary:   []string{"basic-metabolism", "fertility-support"},
		explanation: "睡眠障害タイプのあなたには、リラックス効果の高いコースがおすすめです。ルルオンで心身をリラックスさせ、質の良い睡眠をサポートします。",
		benefits:    []string{"睡眠の質向上", "リラックス効果", "ストレス解消", "心身の回復"},
	},
	{
		bodyType:    "skin",
		primary:     []string{"facial-skin-care", "weight-loss-facial", "basic-metabolism"},
		secondary:   []string{"warmup-lulon-experience", "pair-warmup"},
		explanation: "肌トラブルタイプのあなたには、美肌効果の高いコースが最適です。水素フェイシャルや炭酸パックで肌を整え、内側から美しさを引き出します。",
		benefits:    []string{"美肌効果", "肌荒れ改善", "アンチエイジング", "保湿効果"},
	},
	{
		bodyType:    "balanced",
		primary:     []string{"basic-metabolism", "warmup-lulon-experience", "pair-warmup"},
		secondary:   []string{"student-discount-u24", "fertility-support"},
		explanation: "バランスタイプのあなたには、全体的な健康維持とリラクゼーションを目的としたコースがおすすめです。予防医学の観点から健康をサポートします。",
		benefits:    []string{"バランス調整", "リフレッシュ効果", "ストレス緩和", "全体的な健康維持"},
	},
}
