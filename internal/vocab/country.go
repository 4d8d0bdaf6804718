package vocab

import "strings"

// CountryCodes maps country display names to ISO 3166-1 alpha-2 codes.
// Used to build country filters for geocoder queries and to expand bare
// codes found in address fields.
var CountryCodes = map[string]string{
	"Afghanistan":                      "AF",
	"Albania":                          "AL",
	"Algeria":                          "DZ",
	"Andorra":                          "AD",
	"Angola":                           "AO",
	"Argentina":                        "AR",
	"Armenia":                          "AM",
	"Australia":                        "AU",
	"Austria":                          "AT",
	"Azerbaijan":                       "AZ",
	"Bahamas":                          "BS",
	"Bahrain":                          "BH",
	"Bangladesh":                       "BD",
	"Barbados":                         "BB",
	"Belarus":                          "BY",
	"Belgium":                          "BE",
	"Belize":                           "BZ",
	"Benin":                            "BJ",
	"Bermuda":                          "BM",
	"Bhutan":                           "BT",
	"Bolivia, Plurinational State of":  "BO",
	"Bosnia and Herzegovina":           "BA",
	"Botswana":                         "BW",
	"Brazil":                           "BR",
	"Brunei Darussalam":                "BN",
	"Bulgaria":                         "BG",
	"Burkina Faso":                     "BF",
	"Burundi":                          "BI",
	"Cambodia":                         "KH",
	"Cameroon":                         "CM",
	"Canada":                           "CA",
	"Cape Verde":                       "CV",
	"Central African Republic":         "CF",
	"Chad":                             "TD",
	"Chile":                            "CL",
	"China":                            "CN",
	"Colombia":                         "CO",
	"Comoros":                          "KM",
	"Congo":                            "CG",
	"Congo, the Democratic Republic of the": "CD",
	"Costa Rica":                       "CR",
	"Croatia":                          "HR",
	"Cuba":                             "CU",
	"Curaçao":                          "CW",
	"Cyprus":                           "CY",
	"Czech Republic":                   "CZ",
	"Côte d'Ivoire":                    "CI",
	"Denmark":                          "DK",
	"Djibouti":                         "DJ",
	"Dominica":                         "DM",
	"Dominican Republic":               "DO",
	"Ecuador":                          "EC",
	"Egypt":                            "EG",
	"El Salvador":                      "SV",
	"Equatorial Guinea":                "GQ",
	"Eritrea":                          "ER",
	"Estonia":                          "EE",
	"Ethiopia":                         "ET",
	"Faroe Islands":                    "FO",
	"Fiji":                             "FJ",
	"Finland":                          "FI",
	"France":                           "FR",
	"Gabon":                            "GA",
	"Gambia":                           "GM",
	"Georgia":                          "GE",
	"Germany":                          "DE",
	"Ghana":                            "GH",
	"Gibraltar":                        "GI",
	"Greece":                           "GR",
	"Greenland":                        "GL",
	"Grenada":                          "GD",
	"Guatemala":                        "GT",
	"Guernsey":                         "GG",
	"Guinea":                           "GN",
	"Guinea-Bissau":                    "GW",
	"Guyana":                           "GY",
	"Haiti":                            "HT",
	"Honduras":                         "HN",
	"Hong Kong":                        "HK",
	"Hungary":                          "HU",
	"Iceland":                          "IS",
	"India":                            "IN",
	"Indonesia":                        "ID",
	"Iran, Islamic Republic of":        "IR",
	"Iraq":                             "IQ",
	"Ireland":                          "IE",
	"Isle of Man":                      "IM",
	"Israel":                           "IL",
	"Italy":                            "IT",
	"Jamaica":                          "JM",
	"Japan":                            "JP",
	"Jersey":                           "JE",
	"Jordan":                           "JO",
	"Kazakhstan":                       "KZ",
	"Kenya":                            "KE",
	"Kiribati":                         "KI",
	"Korea, Democratic People's Republic of": "KP",
	"Korea, Republic of":               "KR",
	"Kuwait":                           "KW",
	"Kyrgyzstan":                       "KG",
	"Lao People's Democratic Republic": "LA",
	"Latvia":                           "LV",
	"Lebanon":                          "LB",
	"Lesotho":                          "LS",
	"Liberia":                          "LR",
	"Libya":                            "LY",
	"Liechtenstein":                    "LI",
	"Lithuania":                        "LT",
	"Luxembourg":                       "LU",
	"Macao":                            "MO",
	"Madagascar":                       "MG",
	"Malawi":                           "MW",
	"Malaysia":                         "MY",
	"Maldives":                         "MV",
	"Mali":                             "ML",
	"Malta":                            "MT",
	"Marshall Islands":                 "MH",
	"Mauritania":                       "MR",
	"Mauritius":                        "MU",
	"Mexico":                           "MX",
	"Micronesia, Federated States of":  "FM",
	"Moldova, Republic of":             "MD",
	"Monaco":                           "MC",
	"Mongolia":                         "MN",
	"Montenegro":                       "ME",
	"Morocco":                          "MA",
	"Mozambique":                       "MZ",
	"Myanmar":                          "MM",
	"Namibia":                          "NA",
	"Nauru":                            "NR",
	"Nepal":                            "NP",
	"Netherlands":                      "NL",
	"New Zealand":                      "NZ",
	"Nicaragua":                        "NI",
	"Niger":                            "NE",
	"Nigeria":                          "NG",
	"North Macedonia":                  "MK",
	"Norway":                           "NO",
	"Oman":                             "OM",
	"Pakistan":                         "PK",
	"Palau":                            "PW",
	"Palestine, State of":              "PS",
	"Panama":                           "PA",
	"Papua New Guinea":                 "PG",
	"Paraguay":                         "PY",
	"Peru":                             "PE",
	"Philippines":                      "PH",
	"Poland":                           "PL",
	"Portugal":                         "PT",
	"Puerto Rico":                      "PR",
	"Qatar":                            "QA",
	"Romania":                          "RO",
	"Russian Federation":               "RU",
	"Rwanda":                           "RW",
	"Saint Kitts and Nevis":            "KN",
	"Saint Lucia":                      "LC",
	"Samoa":                            "WS",
	"San Marino":                       "SM",
	"Sao Tome and Principe":            "ST",
	"Saudi Arabia":                     "SA",
	"Senegal":                          "SN",
	"Serbia":                           "RS",
	"Seychelles":                       "SC",
	"Sierra Leone":                     "SL",
	"Singapore":                        "SG",
	"Slovakia":                         "SK",
	"Slovenia":                         "SI",
	"Solomon Islands":                  "SB",
	"Somalia":                          "SO",
	"South Africa":                     "ZA",
	"South Sudan":                      "SS",
	"Spain":                            "ES",
	"Sri Lanka":                        "LK",
	"Sudan":                            "SD",
	"Suriname":                         "SR",
	"Sweden":                           "SE",
	"Switzerland":                      "CH",
	"Syrian Arab Republic":             "SY",
	"Taiwan, Province of China":        "TW",
	"Tajikistan":                       "TJ",
	"Tanzania, United Republic of":     "TZ",
	"Thailand":                         "TH",
	"Timor-Leste":                      "TL",
	"Togo":                             "TG",
	"Tonga":                            "TO",
	"Trinidad and Tobago":              "TT",
	"Tunisia":                          "TN",
	"Turkey":                           "TR",
	"Turkmenistan":                     "TM",
	"Tuvalu":                           "TV",
	"Uganda":                           "UG",
	"Ukraine":                          "UA",
	"United Arab Emirates":             "AE",
	"United Kingdom":                   "GB",
	"United States":                    "US",
	"Uruguay":                          "UY",
	"Uzbekistan":                       "UZ",
	"Vanuatu":                          "VU",
	"Venezuela, Bolivarian Republic of": "VE",
	"Viet Nam":                         "VN",
	"Yemen":                            "YE",
	"Zambia":                           "ZM",
	"Zimbabwe":                         "ZW",
}

// countryNames is the reverse of CountryCodes, built once at load.
var countryNames = func() map[string]string {
	names := make(map[string]string, len(CountryCodes))
	for name, code := range CountryCodes {
		// Prefer the shorter display name when two names share a code.
		if existing, ok := names[code]; !ok || len(name) < len(existing) {
			names[code] = name
		}
	}
	return names
}()

// CountryCode returns the ISO alpha-2 code for a country display name,
// or "" when unknown.
func CountryCode(name string) string {
	return CountryCodes[name]
}

// CountryName expands an ISO alpha-2 code to a country display name,
// or returns "" when unknown.
func CountryName(code string) string {
	return countryNames[strings.ToUpper(code)]
}
