package nlp

// keywordEntry maps one canonical tag to its surface-form keywords,
// including informal ASCII-folded spellings. Entry order is fixed: it
// determines first-seen tag order in extracted intents.
type keywordEntry struct {
	Tag      string
	Keywords []string
}

// Immutable vocabulary tables, loaded once and shared read-only.
var (
	cuisineKeywords = []keywordEntry{
		{"vietnamese", []string{
			"vietnamese", "vietnam", "việt nam", "viet nam", "việt", "viet",
			"pho", "phở", "bun", "bún", "banh", "bánh", "che", "chè", "goi", "gỏi",
			"nem", "spring roll", "chả cá", "cha ca", "bún bò", "bun bo",
			"cơm tấm", "com tam", "bánh mì", "banh mi", "bánh xèo", "banh xeo",
			"cao lầu", "cao lau", "mì quảng", "mi quang", "hủ tiếu", "hu tieu",
			"bún riêu", "bun rieu", "bánh cuốn", "banh cuon", "chả cá lã vọng",
			"bún chả", "bun cha", "phở gà", "pho ga", "phở bò", "pho bo",
			"cháo", "chao", "xôi", "xoi", "bánh chưng", "banh chung",
		}},
		{"chinese", []string{
			"chinese", "china", "trung quốc", "trung quoc", "tàu", "tau",
			"dim sum", "dumpling", "há cảo", "ha cao", "sủi cảo", "sui cao",
			"mì xào", "mi xao", "cơm chiên", "com chien", "thịt xá xíu", "thit xa xiu",
			"kung pao", "mapo tofu", "peking duck", "vịt quay", "vit quay",
			"lẩu tứ xuyên", "lau tu xuyen", "món tàu", "mon tau", "dimsum",
		}},
		{"italian", []string{
			"italian", "italy", "ý", "italia", "pasta", "pizza", "spaghetti",
			"lasagna", "carbonara", "bolognese", "risotto", "ravioli",
			"gnocchi", "tiramisu", "gelato", "bruschetta", "focaccia",
			"mì ý", "mi y", "bánh pizza", "banh pizza",
		}},
		{"mexican", []string{
			"mexican", "mexico", "taco", "burrito", "quesadilla", "salsa",
			"guacamole", "nachos", "enchilada", "fajita", "churro",
			"mex", "món mê-hi-cô", "mon me-hi-co",
		}},
		{"indian", []string{
			"indian", "india", "ấn độ", "an do", "curry", "cà ri", "ca ri",
			"biryani", "tandoori", "masala", "naan", "samosa", "dal",
			"tikka", "vindaloo", "korma", "rogan josh", "lassi",
		}},
		{"japanese", []string{
			"japanese", "japan", "nhật bản", "nhat ban", "nhật", "nhat",
			"sushi", "sashimi", "ramen", "tempura", "miso", "udon", "soba",
			"yakitori", "tonkatsu", "okonomiyaki", "takoyaki", "bento",
			"mochi", "wasabi", "teriyaki", "katsu", "gyoza",
		}},
		{"thai", []string{
			"thai", "thailand", "thái lan", "thai lan", "thái",
			"tom yum", "pad thai", "green curry", "som tam", "massaman",
			"pad see ew", "larb", "sticky rice", "mango sticky rice",
			"tom kha", "red curry", "panang", "thai basil",
		}},
		{"korean", []string{
			"korean", "korea", "hàn quốc", "han quoc", "hàn", "han",
			"kimchi", "bulgogi", "bibimbap", "korean bbq", "galbi",
			"japchae", "tteokbokki", "samgyeopsal", "hotteok", "banchan",
		}},
	}

	dietaryKeywords = []keywordEntry{
		{"vegetarian", []string{
			"vegetarian", "veggie", "plant based", "no meat", "chay", "ăn chay", "an chay",
			"không thịt", "khong thit", "thuần chay", "thuan chay", "chay trường",
			"chay truong", "không động vật", "khong dong vat", "rau củ", "rau cu",
		}},
		{"vegan", []string{
			"vegan", "plant only", "dairy free", "no animal", "thuần chay", "thuan chay",
			"hoàn toàn chay", "hoan toan chay", "không sữa", "khong sua",
			"không trứng", "khong trung", "plant-based",
		}},
		{"low_calorie", []string{
			"low calorie", "diet", "light", "healthy", "low cal", "ít calo", "it calo",
			"giảm cân", "giam can", "ăn kiêng", "an kieng", "lành mạnh",
			"lanh manh", "ít béo", "it beo", "low fat", "fitness",
		}},
		{"high_protein", []string{
			"high protein", "protein rich", "muscle", "gym", "nhiều protein", "nhieu protein",
			"đạm cao", "dam cao", "tăng cơ", "tang co", "bodybuilding",
			"nhiều đạm", "nhieu dam",
		}},
		{"gluten_free", []string{
			"gluten free", "no gluten", "không gluten", "khong gluten",
			"không chứa gluten", "khong chua gluten", "celiac", "wheat free",
		}},
		{"diabetic", []string{
			"diabetic", "diabetes", "tiểu đường", "tieu duong", "đái tháo đường",
			"dai thao duong", "ít đường", "it duong", "no sugar", "sugar free",
		}},
	}

	tasteKeywords = []keywordEntry{
		{"spicy", []string{
			"spicy", "hot", "chili", "pepper", "fire", "cay",
			"ớt", "ot", "cay nồng", "cay nong", "cực cay", "cuc cay",
			"siêu cay", "sieu cay", "tê lưỡi", "te luoi", "cay như lửa",
			"cay nhu lua", "cháy miệng", "chay mieng",
		}},
		{"sweet", []string{
			"sweet", "dessert", "sugar", "cake", "candy", "ngọt", "ngot",
			"đường", "duong", "bánh ngọt", "banh ngot", "tráng miệng", "trang mieng",
			"chè", "che", "kem", "bánh", "banh", "kẹo", "keo", "mật", "mat",
		}},
		{"sour", []string{
			"sour", "acid", "lemon", "lime", "vinegar", "chua",
			"chanh", "giấm", "giam", "me", "mẻ", "chua cay", "chua ngọt",
			"chua ngot", "tamarind",
		}},
		{"salty", []string{
			"salty", "salt", "savory", "umami", "mặn", "man", "muối", "muoi",
			"mặn mà", "man ma", "đậm đà", "dam da", "mặn ngọt", "man ngot",
		}},
		{"bitter", []string{
			"bitter", "đắng", "dang", "khổ qua", "kho qua", "bitter melon",
			"coffee", "cà phê", "ca phe", "dark chocolate",
		}},
		{"mild", []string{
			"mild", "nhẹ", "nhe", "thanh đạm", "thanh dam", "không cay", "khong cay",
			"dịu", "diu", "nhạt", "nhat", "tươi mát", "tuoi mat",
		}},
	}

	ingredientKeywords = []keywordEntry{
		{"chicken", []string{
			"chicken", "poultry", "hen", "gà", "ga", "thịt gà", "thit ga",
			"gà ta", "ga ta", "gà công nghiệp", "ga cong nghiep", "ức gà", "uc ga",
			"đùi gà", "dui ga", "cánh gà", "canh ga", "gà rán", "ga ran",
		}},
		{"beef", []string{
			"beef", "cow", "steak", "ground beef", "bò", "bo", "thịt bò", "thit bo",
			"bò tái", "bo tai", "bò chín", "bo chin", "bò viên", "bo vien",
			"thăn bò", "than bo", "sườn bò", "suon bo", "bò kho", "bo kho",
		}},
		{"pork", []string{
			"pork", "pig", "bacon", "ham", "heo", "lợn", "lon", "thịt heo", "thit heo",
			"thịt lợn", "thit lon", "ba chỉ", "ba chi", "sườn heo", "suon heo",
			"chân giò", "chan gio", "thịt xá xíu", "thit xa xiu",
		}},
		{"fish", []string{
			"fish", "salmon", "tuna", "cod", "seafood", "cá", "ca", "cá hồi", "ca hoi",
			"cá ngừ", "ca ngu", "cá thu", "ca thu", "cá chép", "ca chep",
			"cá rô", "ca ro", "cá diêu hồng", "ca dieu hong", "cá basa", "ca basa",
		}},
		{"shrimp", []string{
			"shrimp", "prawn", "lobster", "crab", "tôm", "tom", "tôm càng", "tom cang",
			"tôm sú", "tom su", "cua", "cào cào", "cao cao", "tôm thẻ", "tom the",
			"tôm tít", "tom tit", "nghêu", "ngheu", "sò", "so",
		}},
		{"vegetables", []string{
			"vegetables", "veggie", "carrot", "broccoli", "spinach", "rau", "rau củ", "rau cu",
			"cà rót", "ca rot", "súp lơ", "sup lo", "rau bina", "cải bó xôi", "cai bo xoi",
			"cải thảo", "cai thao", "rau muống", "rau muong", "rau lang", "đu đủ xanh",
			"du du xanh", "bắp cải", "bap cai", "cà chua", "ca chua", "dưa chuột", "dua chuot",
		}},
		{"rice", []string{
			"rice", "grain", "jasmine rice", "brown rice", "cơm", "com", "gạo", "gao",
			"cơm trắng", "com trang", "cơm tấm", "com tam", "cơm dẻo", "com deo",
			"gạo tẻ", "gao te", "gạo nàng hương", "gao nang huong", "gạo st25",
		}},
		{"noodles", []string{
			"noodles", "pasta", "spaghetti", "ramen", "bún", "bun", "mì", "mi",
			"phở", "pho", "miến", "mien", "bánh canh", "banh canh", "bánh phở", "banh pho",
			"hủ tiếu", "hu tieu", "mì gói", "mi goi", "mì tôm", "mi tom",
		}},
		{"egg", []string{
			"egg", "eggs", "omelet", "scrambled", "trứng", "trung", "trứng gà", "trung ga",
			"trứng vịt", "trung vit", "trứng cút", "trung cut", "trứng chiên", "trung chien",
			"trứng luộc", "trung luoc", "trứng ốp la", "trung op la",
		}},
		{"tofu", []string{
			"tofu", "soy", "đậu hũ", "dau hu", "đậu phụ", "dau phu", "tàu hũ", "tau hu",
			"đậu", "dau", "đậu xanh", "dau xanh", "đậu đỏ", "dau do",
		}},
	}

	mealTimeKeywords = []keywordEntry{
		{"breakfast", []string{
			"breakfast", "morning", "brunch", "early", "sáng", "sang", "bữa sáng", "bua sang",
			"điểm tâm", "diem tam", "ăn sáng", "an sang", "sáng sớm", "sang som",
			"buổi sáng", "buoi sang", "bữa điểm tâm", "bua diem tam",
		}},
		{"lunch", []string{
			"lunch", "noon", "midday", "afternoon", "trưa", "trua", "bữa trưa", "bua trua",
			"ăn trưa", "an trua", "giữa trưa", "giua trua", "buổi trưa", "buoi trua",
			"cơm trưa", "com trua",
		}},
		{"dinner", []string{
			"dinner", "evening", "night", "supper", "tối", "toi", "bữa tối", "bua toi",
			"ăn tối", "an toi", "buổi tối", "buoi toi", "cơm tối", "com toi",
			"bữa chiều", "bua chieu", "chiều", "chieu",
		}},
		{"snack", []string{
			"snack", "light meal", "quick bite", "appetizer", "ăn vặt", "an vat",
			"đồ ăn vặt", "do an vat", "nhâm nhi", "nham nhi", "ăn chơi", "an choi",
			"bánh kẹo", "banh keo", "quà vặt", "qua vat",
		}},
	}

	cookingMethodKeywords = []keywordEntry{
		{"fried", []string{"chiên", "chien", "rán", "ran", "fried", "deep fried", "xào", "xao"}},
		{"grilled", []string{"nướng", "nuong", "grilled", "bbq", "barbecue", "nướng than", "nuong than"}},
		{"boiled", []string{"luộc", "luoc", "boiled", "luộc chín", "luoc chin"}},
		{"steamed", []string{"hấp", "hap", "steamed", "hấp chín", "hap chin"}},
		{"soup", []string{"canh", "súp", "sup", "soup", "nước", "nuoc", "lẩu", "lau"}},
		{"stir_fried", []string{"xào", "xao", "stir fried", "rang", "xào lăn", "xao lan"}},
		{"braised", []string{"kho", "braised", "rim", "om", "ốm", "niêu", "nieu"}},
	}

	restaurantTypeKeywords = []keywordEntry{
		{"street_food", []string{
			"street food", "food truck", "roadside", "đường phố", "duong pho",
			"quán vỉa hè", "quan via he", "ăn vặt", "an vat", "hàng rong", "hang rong",
		}},
		{"restaurant", []string{
			"restaurant", "nhà hàng", "nha hang", "quán ăn", "quan an",
			"fine dining", "sang trọng", "sang trong",
		}},
		{"fast_food", []string{
			"fast food", "quick", "nhanh", "thức ăn nhanh", "thuc an nhanh",
			"đồ ăn nhanh", "do an nhanh",
		}},
		{"home_cooking", []string{
			"home cooking", "homemade", "gia đình", "gia dinh", "nấu nhà", "nau nha",
			"cơm nhà", "com nha", "tự nấu", "tu nau",
		}},
	}
)

func keywordsFor(table []keywordEntry, tag string) []string {
	for _, entry := range table {
		if entry.Tag == tag {
			return entry.Keywords
		}
	}
	return nil
}
