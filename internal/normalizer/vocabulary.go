package normalizer

// Recognized field names form the compatibility contract with the upstream
// export tools (several of which emit Spanish field names). Matching is
// case-sensitive and the order within each list is the lookup priority.
// Changing any of these breaks existing exports.
//
// The title and summary lists must stay in sync with miner.CandidateFields,
// which uses their union to detect candidate records during traversal.
var (
	TitleFields        = []string{"Título", "Titulo", "title", "Title"}
	YearFields         = []string{"Año", "Anio", "year", "Year"}
	TagFields          = []string{"Etiquetas", "etiquetas", "tags", "Tags"}
	SummaryFields      = []string{"Resumen", "resumen", "summary", "abstract"}
	ContributionFields = []string{"Contribución", "Contribucion", "contribution"}

	// LinkFields are the explicit link-bearing fields, inspected in order;
	// the first non-empty one wins and is placed ahead of links recovered
	// from free text.
	LinkFields = []string{"url", "URL", "link", "Link", "enlace", "Enlace", "doi", "DOI"}
)

// Defaults applied when a field is absent or unusable.
const (
	DefaultTitle   = "Untitled Paper"
	DefaultYear    = "N/D"
	DefaultSummary = "No summary provided."
)
