package gazetteer

// Built-in word lists used when no files are configured. These are seed lists
// covering common coreference antecedents; production deployments point the
// config at full gazetteer dumps instead.

var defaultCities = []string{
	"paris", "london", "berlin", "madrid", "rome", "vienna", "moscow",
	"beijing", "shanghai", "tokyo", "seoul", "delhi", "mumbai", "jakarta",
	"cairo", "lagos", "nairobi", "johannesburg", "sydney", "melbourne",
	"new york", "los angeles", "chicago", "houston", "boston", "seattle",
	"san francisco", "washington", "honolulu", "toronto", "vancouver",
	"montreal", "mexico city", "sao paulo", "rio de janeiro", "buenos aires",
	"lima", "bogota", "amsterdam", "brussels", "stockholm", "oslo",
	"copenhagen", "helsinki", "warsaw", "prague", "budapest", "athens",
	"istanbul", "dubai", "singapore", "hong kong", "bangkok", "manila",
}

var defaultRegions = []string{
	"california", "texas", "florida", "new york", "illinois", "ohio",
	"washington", "oregon", "hawaii", "alaska", "ontario", "quebec",
	"british columbia", "alberta", "bavaria", "saxony", "catalonia",
	"andalusia", "tuscany", "lombardy", "provence", "normandy", "brittany",
	"queensland", "victoria", "new south wales", "punjab", "kerala",
	"guangdong", "sichuan", "hokkaido", "siberia",
}

var defaultCountries = []string{
	"france", "germany", "spain", "italy", "austria", "russia", "china",
	"japan", "south korea", "india", "indonesia", "egypt", "nigeria",
	"kenya", "south africa", "australia", "new zealand", "united states",
	"canada", "mexico", "brazil", "argentina", "peru", "colombia",
	"netherlands", "belgium", "sweden", "norway", "denmark", "finland",
	"poland", "czech republic", "hungary", "greece", "turkey",
	"united arab emirates", "singapore", "thailand", "philippines",
	"united kingdom", "ireland", "portugal", "switzerland",
}
