package currency

// validCurrencies is the fixed set of ISO 4217 codes the normalizer treats as
// already canonical. Codes outside this set can still pass through when they
// are well formed (see Normalize).
var validCurrencies = map[string]bool{
	"AED": true, "AFN": true, "ALL": true, "AMD": true, "ANG": true,
	"AOA": true, "ARS": true, "AUD": true, "AWG": true, "AZN": true,
	"BAM": true, "BBD": true, "BDT": true, "BGN": true, "BHD": true,
	"BIF": true, "BMD": true, "BND": true, "BOB": true, "BRL": true,
	"BSD": true, "BTN": true, "BWP": true, "BYN": true, "BZD": true,
	"CAD": true, "CDF": true, "CHF": true, "CLP": true, "CNY": true,
	"COP": true, "CRC": true, "CUP": true, "CVE": true, "CZK": true,
	"DJF": true, "DKK": true, "DOP": true, "DZD": true, "EGP": true,
	"ERN": true, "ETB": true, "EUR": true, "FJD": true, "FKP": true,
	"GBP": true, "GEL": true, "GHS": true, "GIP": true, "GMD": true,
	"GNF": true, "GTQ": true, "GYD": true, "HKD": true, "HNL": true,
	"HRK": true, "HTG": true, "HUF": true, "IDR": true, "ILS": true,
	"INR": true, "IQD": true, "IRR": true, "ISK": true, "JMD": true,
	"JOD": true, "JPY": true, "KES": true, "KGS": true, "KHR": true,
	"KMF": true, "KRW": true, "KWD": true, "KYD": true, "KZT": true,
	"LAK": true, "LBP": true, "LKR": true, "LRD": true, "LSL": true,
	"LYD": true, "MAD": true, "MDL": true, "MGA": true, "MKD": true,
	"MMK": true, "MNT": true, "MOP": true, "MUR": true, "MVR": true,
	"MWK": true, "MXN": true, "MYR": true, "MZN": true, "NAD": true,
	"NGN": true, "NIO": true, "NOK": true, "NPR": true, "NZD": true,
	"OMR": true, "PAB": true, "PEN": true, "PGK": true, "PHP": true,
	"PKR": true, "PLN": true, "PYG": true, "QAR": true, "RON": true,
	"RSD": true, "RUB": true, "RWF": true, "SAR": true, "SBD": true,
	"SCR": true, "SDG": true, "SEK": true, "SGD": true, "SHP": true,
	"SLL": true, "SOS": true, "SRD": true, "SSP": true, "STN": true,
	"SYP": true, "SZL": true, "THB": true, "TJS": true, "TMT": true,
	"TND": true, "TOP": true, "TRY": true, "TTD": true, "TWD": true,
	"TZS": true, "UAH": true, "UGX": true, "USD": true, "UYU": true,
	"UZS": true, "VES": true, "VND": true, "VUV": true, "WST": true,
	"XAF": true, "XCD": true, "XOF": true, "XPF": true, "YER": true,
	"ZAR": true, "ZMW": true, "ZWL": true,
}

// corrections maps plural/informal currency names, known invalid markers and
// currency symbols to a canonical code. An empty value means "use the
// caller's default".
var corrections = map[string]string{
	// Plural and informal names
	"DOLLAR":          "USD",
	"DOLLARS":         "USD",
	"US DOLLAR":       "USD",
	"US DOLLARS":      "USD",
	"USD DOLLARS":     "USD",
	"BUCKS":           "USD",
	"EURO":            "EUR",
	"EUROS":           "EUR",
	"POUND":           "GBP",
	"POUNDS":          "GBP",
	"STERLING":        "GBP",
	"POUND STERLING":  "GBP",
	"YEN":             "JPY",
	"JAPANESE YEN":    "JPY",
	"YUAN":            "CNY",
	"RMB":             "CNY",
	"RENMINBI":        "CNY",
	"RUPEE":           "INR",
	"RUPEES":          "INR",
	"WON":             "KRW",
	"BAHT":            "THB",
	"PESO":            "MXN",
	"PESOS":           "MXN",
	"REAL":            "BRL",
	"REAIS":           "BRL",
	"FRANC":           "CHF",
	"FRANCS":          "CHF",
	"KRONA":           "SEK",
	"KRONOR":          "SEK",
	"KRONE":           "NOK",
	"KRONER":          "NOK",
	"ZLOTY":           "PLN",
	"FORINT":          "HUF",
	"KORUNA":          "CZK",
	"LIRA":            "TRY",
	"RAND":            "ZAR",
	"DIRHAM":          "AED",
	"DINAR":           "JOD",
	"RIYAL":           "SAR",
	"RINGGIT":         "MYR",
	"RUPIAH":          "IDR",
	"DONG":            "VND",
	"RUBLE":           "RUB",
	"RUBLES":          "RUB",
	"HRYVNIA":         "UAH",
	"SHEKEL":          "ILS",
	"SHEKELS":         "ILS",
	"NEW ZEALAND DOLLAR": "NZD",
	"AUSTRALIAN DOLLAR":  "AUD",
	"CANADIAN DOLLAR":    "CAD",

	// Invalid markers map to the default
	"N/A":     "",
	"NA":      "",
	"NULL":    "",
	"NONE":    "",
	"UNKNOWN": "",
	"INVALID": "",
	"LOCAL":   "",
	"-":       "",

	// Symbols
	"$":  "USD",
	"€":  "EUR",
	"£":  "GBP",
	"¥":  "JPY",
	"₹":  "INR",
	"₩":  "KRW",
	"₺":  "TRY",
	"₽":  "RUB",
	"₫":  "VND",
	"₪":  "ILS",
	"฿":  "THB",
	"R$": "BRL",
	"A$": "AUD",
	"C$": "CAD",
	"HK$": "HKD",
	"NZ$": "NZD",
	"KR₩": "KRW",
	"ZŁ": "PLN",
	"KČ": "CZK",
	"FT": "HUF",
}

// countryCurrencies maps lowercase country names to their currency. Keys are
// matched exactly first, then as substrings of the caller's country string,
// so "Tokyo, Japan" resolves through "japan".
var countryCurrencies = map[string]string{
	"japan":                "JPY",
	"united states":        "USD",
	"usa":                  "USD",
	"united kingdom":       "GBP",
	"england":              "GBP",
	"scotland":             "GBP",
	"wales":                "GBP",
	"france":               "EUR",
	"germany":              "EUR",
	"italy":                "EUR",
	"spain":                "EUR",
	"portugal":             "EUR",
	"netherlands":          "EUR",
	"belgium":              "EUR",
	"austria":              "EUR",
	"greece":               "EUR",
	"ireland":              "EUR",
	"finland":              "EUR",
	"slovenia":             "EUR",
	"slovakia":             "EUR",
	"estonia":              "EUR",
	"latvia":               "EUR",
	"lithuania":            "EUR",
	"luxembourg":           "EUR",
	"malta":                "EUR",
	"cyprus":               "EUR",
	"croatia":              "EUR",
	"china":                "CNY",
	"india":                "INR",
	"south korea":          "KRW",
	"korea":                "KRW",
	"thailand":             "THB",
	"vietnam":              "VND",
	"indonesia":            "IDR",
	"malaysia":             "MYR",
	"singapore":            "SGD",
	"philippines":          "PHP",
	"cambodia":             "KHR",
	"laos":                 "LAK",
	"myanmar":              "MMK",
	"taiwan":               "TWD",
	"hong kong":            "HKD",
	"macau":                "MOP",
	"australia":            "AUD",
	"new zealand":          "NZD",
	"fiji":                 "FJD",
	"canada":               "CAD",
	"mexico":               "MXN",
	"brazil":               "BRL",
	"argentina":            "ARS",
	"chile":                "CLP",
	"colombia":             "COP",
	"peru":                 "PEN",
	"ecuador":              "USD",
	"bolivia":              "BOB",
	"uruguay":              "UYU",
	"costa rica":           "CRC",
	"panama":               "PAB",
	"guatemala":            "GTQ",
	"cuba":                 "CUP",
	"switzerland":          "CHF",
	"norway":               "NOK",
	"sweden":               "SEK",
	"denmark":              "DKK",
	"iceland":              "ISK",
	"poland":               "PLN",
	"czech republic":       "CZK",
	"czechia":              "CZK",
	"hungary":              "HUF",
	"romania":              "RON",
	"bulgaria":             "BGN",
	"serbia":               "RSD",
	"turkey":               "TRY",
	"russia":               "RUB",
	"ukraine":              "UAH",
	"georgia":              "GEL",
	"israel":               "ILS",
	"united arab emirates": "AED",
	"uae":                  "AED",
	"dubai":                "AED",
	"saudi arabia":         "SAR",
	"qatar":                "QAR",
	"jordan":               "JOD",
	"oman":                 "OMR",
	"kuwait":               "KWD",
	"bahrain":              "BHD",
	"lebanon":              "LBP",
	"egypt":                "EGP",
	"morocco":              "MAD",
	"tunisia":              "TND",
	"south africa":         "ZAR",
	"kenya":                "KES",
	"tanzania":             "TZS",
	"ethiopia":             "ETB",
	"nigeria":              "NGN",
	"ghana":                "GHS",
	"uganda":               "UGX",
	"rwanda":               "RWF",
	"namibia":              "NAD",
	"botswana":             "BWP",
	"madagascar":           "MGA",
	"mauritius":            "MUR",
	"seychelles":           "SCR",
	"sri lanka":            "LKR",
	"nepal":                "NPR",
	"pakistan":             "PKR",
	"bangladesh":           "BDT",
	"bhutan":               "BTN",
	"maldives":             "MVR",
	"mongolia":             "MNT",
	"kazakhstan":           "KZT",
	"uzbekistan":           "UZS",
}
