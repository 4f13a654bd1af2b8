package features

import "strings"

// SensitiveBrands is the fixed list of brand and keyword strings used for
// typosquatting comparison. Not mutated at runtime.
var SensitiveBrands = []string{
	"facebook", "google", "youtube", "amazon", "apple", "paypal", "microsoft", "instagram", "netflix", "whatsapp",
	"twitter", "linkedin", "dropbox", "ebay", "binance", "coinbase", "blockchain",
	"mbbank", "vietcombank", "techcombank", "acb", "sacombank", "bidv", "agribank", "vpbank", "tpbank",
	"shopee", "lazada", "tiki", "zalo", "momo", "zalopay", "vnpay",
	"adobe", "icloud", "outlook", "hotmail", "yahoo", "support", "secure", "account", "login",
}

// ShorteningServices are known URL-shortener domains. Matching is by
// substring against the registrable domain.
var ShorteningServices = []string{
	"bit.ly", "goo.gl", "tinyurl.com", "ow.ly", "t.co", "is.gd", "buff.ly", "adf.ly", "bit.do",
	"mcaf.ee", "su.pr", "google.com/url", "short.gy", "v.gd", "shorte.st", "go2l.ink", "x.co",
	"tr.im", "cli.gs", "yfrog.com", "migre.me", "ff.im", "tiny.cc", "url4.eu", "twit.ac",
}

// IsShortener reports whether the registrable domain matches a known URL
// shortening service.
func IsShortener(registrable string) bool {
	if registrable == "" {
		return false
	}
	for _, s := range ShorteningServices {
		if strings.Contains(registrable, s) {
			return true
		}
	}
	return false
}

// leetSubstitutions maps visually-similar symbols and digits back to the
// letters they imitate. Applied in order, each replacing all occurrences,
// in a single pass over the table.
var leetSubstitutions = [][2]string{
	{"@", "a"}, {"4", "a"}, {"^", "a"},
	{"0", "o"}, {"()", "o"}, {".", ""},
	{"3", "e"}, {"1", "l"}, {"!", "i"},
	{"|", "l"}, {"$", "s"}, {"5", "s"},
}

// NormalizeLeetSpeak resolves leet-speak substitutions in a domain body so
// it can be compared against plain brand strings.
func NormalizeLeetSpeak(text string) string {
	normalized := strings.ToLower(text)
	for _, sub := range leetSubstitutions {
		normalized = strings.ReplaceAll(normalized, sub[0], sub[1])
	}
	return normalized
}
