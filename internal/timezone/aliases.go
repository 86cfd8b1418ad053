package timezone

// Zones in the table must load on hosts without a system zoneinfo.
import _ "time/tzdata"

// Alias maps a lowercase location name to an IANA zone name.
type Alias struct {
	Name string
	Zone string
}

// DefaultAliases is the compiled-in location table. Order matters: partial
// matches are scanned top to bottom and the first hit wins.
var DefaultAliases = []Alias{
	// Brazil
	{"são paulo", "America/Sao_Paulo"},
	{"sao paulo", "America/Sao_Paulo"},
	{"rio de janeiro", "America/Sao_Paulo"},
	{"rio", "America/Sao_Paulo"},
	{"brasília", "America/Sao_Paulo"},
	{"brasilia", "America/Sao_Paulo"},
	{"salvador", "America/Sao_Paulo"},
	{"recife", "America/Sao_Paulo"},
	{"fortaleza", "America/Sao_Paulo"},
	{"manaus", "America/Manaus"},
	{"belém", "America/Belem"},
	{"belem", "America/Belem"},
	{"cuiabá", "America/Cuiaba"},
	{"cuiaba", "America/Cuiaba"},
	{"brasil", "America/Sao_Paulo"},

	// Europe
	{"paris", "Europe/Paris"},
	{"frança", "Europe/Paris"},
	{"france", "Europe/Paris"},
	{"londres", "Europe/London"},
	{"london", "Europe/London"},
	{"reino unido", "Europe/London"},
	{"united kingdom", "Europe/London"},
	{"berlim", "Europe/Berlin"},
	{"berlin", "Europe/Berlin"},
	{"alemanha", "Europe/Berlin"},
	{"germany", "Europe/Berlin"},
	{"moscou", "Europe/Moscow"},
	{"moscow", "Europe/Moscow"},
	{"rússia", "Europe/Moscow"},
	{"russia", "Europe/Moscow"},

	// Asia and Oceania
	{"tóquio", "Asia/Tokyo"},
	{"tokyo", "Asia/Tokyo"},
	{"japão", "Asia/Tokyo"},
	{"japan", "Asia/Tokyo"},
	{"sydney", "Australia/Sydney"},
	{"sidney", "Australia/Sydney"},
	{"austrália", "Australia/Sydney"},
	{"australia", "Australia/Sydney"},
	{"dubai", "Asia/Dubai"},
	{"singapura", "Asia/Singapore"},
	{"singapore", "Asia/Singapore"},
	{"hong kong", "Asia/Hong_Kong"},
	{"índia", "Asia/Kolkata"},
	{"india", "Asia/Kolkata"},

	// Americas
	{"nova york", "America/New_York"},
	{"new york", "America/New_York"},
	{"los angeles", "America/Los_Angeles"},
	{"chicago", "America/Chicago"},
	{"denver", "America/Denver"},
	{"méxico", "America/Mexico_City"},
	{"mexico", "America/Mexico_City"},
	{"canadá", "America/Toronto"},
	{"canada", "America/Toronto"},
	{"argentina", "America/Argentina/Buenos_Aires"},
	{"buenos aires", "America/Argentina/Buenos_Aires"},
	{"chile", "America/Santiago"},
	{"santiago", "America/Santiago"},

	// Africa
	{"egito", "Africa/Cairo"},
	{"egypt", "Africa/Cairo"},
	{"cairo", "Africa/Cairo"},
	{"áfrica do sul", "Africa/Johannesburg"},
	{"africa do sul", "Africa/Johannesburg"},
	{"south africa", "Africa/Johannesburg"},
	{"johannesburgo", "Africa/Johannesburg"},
	{"johannesburg", "Africa/Johannesburg"},
}
