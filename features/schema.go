package features

// Feature vector layout. The column order below is the schema contract
// between the dataset builder and the live extractor: models are trained
// on positional vectors, so both sides must emit this exact sequence.
const (
	// NumStatic is the number of features computed from the URL text alone.
	NumStatic = 27
	// NumFeatures is the full vector length including the three
	// network-derived features (domain_age, ssl_age, suspicious_age_combo).
	NumFeatures = 30
)

// Columns lists the 30 feature names in canonical order.
var Columns = []string{
	// Lengths (6)
	"len_url", "len_host", "len_path", "len_domain", "len_sub", "path_level",
	// Character counts (10)
	"num_dots", "num_dash", "num_dash_host", "num_at", "num_tilde",
	"num_underscore", "num_percent", "num_digits", "num_ampersand", "num_hash",
	// Query (2)
	"num_query_comps", "len_query",
	// Complexity (5)
	"entropy_host", "entropy_url", "entropy_sub", "sub_level", "sub_sensitive",
	// Static logic (4)
	"is_shortener", "double_slash", "is_typosquatting", "is_whitelisted",
	// Dynamic + combo (3)
	"domain_age", "ssl_age", "suspicious_age_combo",
}
