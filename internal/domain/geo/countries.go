package geo

// Country is one entry of the compiled-in country table. The slug is the
// join key shared with catalog categories; everything that renders a flag
// or a display name resolves through it.
type Country struct {
	Slug    string
	NameEN  string
	NameES  string
	ISO2    string // uppercase alpha-2
	ISO3    string // uppercase alpha-3
	Numeric string // ISO 3166-1 numeric, zero-padded
}

var Countries = []Country{
	// Europe
	{Slug: "spain", NameEN: "Spain", NameES: "España", ISO2: "ES", ISO3: "ESP", Numeric: "724"},
	{Slug: "france", NameEN: "France", NameES: "Francia", ISO2: "FR", ISO3: "FRA", Numeric: "250"},
	{Slug: "germany", NameEN: "Germany", NameES: "Alemania", ISO2: "DE", ISO3: "DEU", Numeric: "276"},
	{Slug: "italy", NameEN: "Italy", NameES: "Italia", ISO2: "IT", ISO3: "ITA", Numeric: "380"},
	{Slug: "portugal", NameEN: "Portugal", NameES: "Portugal", ISO2: "PT", ISO3: "PRT", Numeric: "620"},
	{Slug: "netherlands", NameEN: "Netherlands", NameES: "Países Bajos", ISO2: "NL", ISO3: "NLD", Numeric: "528"},
	{Slug: "belgium", NameEN: "Belgium", NameES: "Bélgica", ISO2: "BE", ISO3: "BEL", Numeric: "056"},
	{Slug: "austria", NameEN: "Austria", NameES: "Austria", ISO2: "AT", ISO3: "AUT", Numeric: "040"},
	{Slug: "switzerland", NameEN: "Switzerland", NameES: "Suiza", ISO2: "CH", ISO3: "CHE", Numeric: "756"},
	{Slug: "united-kingdom", NameEN: "United Kingdom", NameES: "Reino Unido", ISO2: "GB", ISO3: "GBR", Numeric: "826"},
	{Slug: "ireland", NameEN: "Ireland", NameES: "Irlanda", ISO2: "IE", ISO3: "IRL", Numeric: "372"},
	{Slug: "sweden", NameEN: "Sweden", NameES: "Suecia", ISO2: "SE", ISO3: "SWE", Numeric: "752"},
	{Slug: "norway", NameEN: "Norway", NameES: "Noruega", ISO2: "NO", ISO3: "NOR", Numeric: "578"},
	{Slug: "denmark", NameEN: "Denmark", NameES: "Dinamarca", ISO2: "DK", ISO3: "DNK", Numeric: "208"},
	{Slug: "finland", NameEN: "Finland", NameES: "Finlandia", ISO2: "FI", ISO3: "FIN", Numeric: "246"},
	{Slug: "poland", NameEN: "Poland", NameES: "Polonia", ISO2: "PL", ISO3: "POL", Numeric: "616"},
	{Slug: "czech-republic", NameEN: "Czech Republic", NameES: "República Checa", ISO2: "CZ", ISO3: "CZE", Numeric: "203"},
	{Slug: "greece", NameEN: "Greece", NameES: "Grecia", ISO2: "GR", ISO3: "GRC", Numeric: "300"},
	{Slug: "hungary", NameEN: "Hungary", NameES: "Hungría", ISO2: "HU", ISO3: "HUN", Numeric: "348"},
	{Slug: "romania", NameEN: "Romania", NameES: "Rumania", ISO2: "RO", ISO3: "ROU", Numeric: "642"},
	{Slug: "croatia", NameEN: "Croatia", NameES: "Croacia", ISO2: "HR", ISO3: "HRV", Numeric: "191"},
	{Slug: "iceland", NameEN: "Iceland", NameES: "Islandia", ISO2: "IS", ISO3: "ISL", Numeric: "352"},

	// Latin America
	{Slug: "mexico", NameEN: "Mexico", NameES: "México", ISO2: "MX", ISO3: "MEX", Numeric: "484"},
	{Slug: "argentina", NameEN: "Argentina", NameES: "Argentina", ISO2: "AR", ISO3: "ARG", Numeric: "032"},
	{Slug: "brazil", NameEN: "Brazil", NameES: "Brasil", ISO2: "BR", ISO3: "BRA", Numeric: "076"},
	{Slug: "chile", NameEN: "Chile", NameES: "Chile", ISO2: "CL", ISO3: "CHL", Numeric: "152"},
	{Slug: "colombia", NameEN: "Colombia", NameES: "Colombia", ISO2: "CO", ISO3: "COL", Numeric: "170"},
	{Slug: "peru", NameEN: "Peru", NameES: "Perú", ISO2: "PE", ISO3: "PER", Numeric: "604"},
	{Slug: "ecuador", NameEN: "Ecuador", NameES: "Ecuador", ISO2: "EC", ISO3: "ECU", Numeric: "218"},
	{Slug: "uruguay", NameEN: "Uruguay", NameES: "Uruguay", ISO2: "UY", ISO3: "URY", Numeric: "858"},
	{Slug: "paraguay", NameEN: "Paraguay", NameES: "Paraguay", ISO2: "PY", ISO3: "PRY", Numeric: "600"},
	{Slug: "bolivia", NameEN: "Bolivia", NameES: "Bolivia", ISO2: "BO", ISO3: "BOL", Numeric: "068"},
	{Slug: "venezuela", NameEN: "Venezuela", NameES: "Venezuela", ISO2: "VE", ISO3: "VEN", Numeric: "862"},
	{Slug: "guatemala", NameEN: "Guatemala", NameES: "Guatemala", ISO2: "GT", ISO3: "GTM", Numeric: "320"},
	{Slug: "costa-rica", NameEN: "Costa Rica", NameES: "Costa Rica", ISO2: "CR", ISO3: "CRI", Numeric: "188"},
	{Slug: "panama", NameEN: "Panama", NameES: "Panamá", ISO2: "PA", ISO3: "PAN", Numeric: "591"},

	// North America
	{Slug: "united-states", NameEN: "United States", NameES: "Estados Unidos", ISO2: "US", ISO3: "USA", Numeric: "840"},
	{Slug: "canada", NameEN: "Canada", NameES: "Canadá", ISO2: "CA", ISO3: "CAN", Numeric: "124"},

	// Caribbean
	{Slug: "dominican-republic", NameEN: "Dominican Republic", NameES: "República Dominicana", ISO2: "DO", ISO3: "DOM", Numeric: "214"},
	{Slug: "cuba", NameEN: "Cuba", NameES: "Cuba", ISO2: "CU", ISO3: "CUB", Numeric: "192"},
	{Slug: "jamaica", NameEN: "Jamaica", NameES: "Jamaica", ISO2: "JM", ISO3: "JAM", Numeric: "388"},
	{Slug: "bahamas", NameEN: "Bahamas", NameES: "Bahamas", ISO2: "BS", ISO3: "BHS", Numeric: "044"},

	// Asia
	{Slug: "japan", NameEN: "Japan", NameES: "Japón", ISO2: "JP", ISO3: "JPN", Numeric: "392"},
	{Slug: "china", NameEN: "China", NameES: "China", ISO2: "CN", ISO3: "CHN", Numeric: "156"},
	{Slug: "south-korea", NameEN: "South Korea", NameES: "Corea del Sur", ISO2: "KR", ISO3: "KOR", Numeric: "410"},
	{Slug: "thailand", NameEN: "Thailand", NameES: "Tailandia", ISO2: "TH", ISO3: "THA", Numeric: "764"},
	{Slug: "vietnam", NameEN: "Vietnam", NameES: "Vietnam", ISO2: "VN", ISO3: "VNM", Numeric: "704"},
	{Slug: "singapore", NameEN: "Singapore", NameES: "Singapur", ISO2: "SG", ISO3: "SGP", Numeric: "702"},
	{Slug: "malaysia", NameEN: "Malaysia", NameES: "Malasia", ISO2: "MY", ISO3: "MYS", Numeric: "458"},
	{Slug: "indonesia", NameEN: "Indonesia", NameES: "Indonesia", ISO2: "ID", ISO3: "IDN", Numeric: "360"},
	{Slug: "india", NameEN: "India", NameES: "India", ISO2: "IN", ISO3: "IND", Numeric: "356"},
	{Slug: "philippines", NameEN: "Philippines", NameES: "Filipinas", ISO2: "PH", ISO3: "PHL", Numeric: "608"},
	{Slug: "hong-kong", NameEN: "Hong Kong", NameES: "Hong Kong", ISO2: "HK", ISO3: "HKG", Numeric: "344"},
	{Slug: "taiwan", NameEN: "Taiwan", NameES: "Taiwán", ISO2: "TW", ISO3: "TWN", Numeric: "158"},

	// Africa
	{Slug: "egypt", NameEN: "Egypt", NameES: "Egipto", ISO2: "EG", ISO3: "EGY", Numeric: "818"},
	{Slug: "morocco", NameEN: "Morocco", NameES: "Marruecos", ISO2: "MA", ISO3: "MAR", Numeric: "504"},
	{Slug: "south-africa", NameEN: "South Africa", NameES: "Sudáfrica", ISO2: "ZA", ISO3: "ZAF", Numeric: "710"},
	{Slug: "kenya", NameEN: "Kenya", NameES: "Kenia", ISO2: "KE", ISO3: "KEN", Numeric: "404"},
	{Slug: "nigeria", NameEN: "Nigeria", NameES: "Nigeria", ISO2: "NG", ISO3: "NGA", Numeric: "566"},
	{Slug: "tanzania", NameEN: "Tanzania", NameES: "Tanzania", ISO2: "TZ", ISO3: "TZA", Numeric: "834"},

	// Oceania
	{Slug: "australia", NameEN: "Australia", NameES: "Australia", ISO2: "AU", ISO3: "AUS", Numeric: "036"},
	{Slug: "new-zealand", NameEN: "New Zealand", NameES: "Nueva Zelanda", ISO2: "NZ", ISO3: "NZL", Numeric: "554"},
	{Slug: "fiji", NameEN: "Fiji", NameES: "Fiyi", ISO2: "FJ", ISO3: "FJI", Numeric: "242"},

	// Middle East
	{Slug: "united-arab-emirates", NameEN: "United Arab Emirates", NameES: "Emiratos Árabes Unidos", ISO2: "AE", ISO3: "ARE", Numeric: "784"},
	{Slug: "israel", NameEN: "Israel", NameES: "Israel", ISO2: "IL", ISO3: "ISR", Numeric: "376"},
	{Slug: "saudi-arabia", NameEN: "Saudi Arabia", NameES: "Arabia Saudita", ISO2: "SA", ISO3: "SAU", Numeric: "682"},
	{Slug: "qatar", NameEN: "Qatar", NameES: "Catar", ISO2: "QA", ISO3: "QAT", Numeric: "634"},
	{Slug: "turkey", NameEN: "Turkey", NameES: "Turquía", ISO2: "TR", ISO3: "TUR", Numeric: "792"},
	{Slug: "jordan", NameEN: "Jordan", NameES: "Jordania", ISO2: "JO", ISO3: "JOR", Numeric: "400"},
}
