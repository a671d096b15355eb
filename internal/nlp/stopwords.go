package nlp

// vietnameseStopwords lists Vietnamese function words in both accented and
// ASCII-folded spellings.
var vietnameseStopwords = []string{
	"tôi", "toi", "mình", "minh", "em", "anh", "chị", "chi", "của", "cua",
	"và", "va", "với", "voi", "cho", "để", "de", "từ", "tu", "trong", "ngoài",
	"ngoai", "trên", "tren", "dưới", "duoi", "này", "nay", "đó", "do",
	"rất", "rat", "lắm", "lam", "nhiều", "nhieu", "ít", "it", "một", "mot",
	"có", "co", "không", "khong", "được", "duoc", "là", "la", "sẽ", "se",
	"đã", "da", "đang", "dang", "bị", "bi", "hay", "hoặc", "hoac",
}

// englishStopwords covers the handful of English function words seen in
// mixed-language queries.
var englishStopwords = []string{
	"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
}

func buildStopwords() map[string]bool {
	out := make(map[string]bool, len(vietnameseStopwords)+len(englishStopwords))
	for _, w := range vietnameseStopwords {
		out[w] = true
	}
	for _, w := range englishStopwords {
		out[w] = true
	}
	return out
}
