package annotate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/relextract/slotscan/internal/gazetteer"
	"github.com/relextract/slotscan/internal/model"
)

// personPronouns lists personal pronouns likely to corefer with a PERSON
// mention. Possessives (his, her, my) are excluded: they are poor slot
// referents.
var personPronouns = map[string]bool{
	"he": true, "him": true, "himself": true,
	"she": true, "her": true, "herself": true,
	"themself": true, "themselves": true, "'em": true,
	"you": true, "yourself": true, "yourselves": true,
	"i": true, "me": true, "myself": true,
	"ourself": true, "ourselves": true,
}

// RewriteCoreferentNER overwrites the NER tag of untagged personal pronouns
// whose coreference antecedent is a proper noun: person pronouns become
// PERSON, and location-referring words become CITY, STATE_OR_PROVINCE, or
// COUNTRY per the gazetteer, first match winning. Returns the number of
// rewrites. Must run before span scanning, since it changes which tokens are
// scan-eligible.
func RewriteCoreferentNER(tokens []*model.Token, gaz gazetteer.Gazetteer) int {
	rewrites := 0
	for _, token := range tokens {
		antecedent := token.Antecedent
		if token.NER != model.NERBlank || token.POS != "PRP" ||
			antecedent == "" || !startsUpper(antecedent) {
			continue
		}

		switch {
		case personPronouns[strings.ToLower(token.Word)]:
			token.NER = model.TagPerson.String()
		case gaz.IsValidCity(antecedent):
			token.NER = model.TagCity.String()
		case gaz.IsValidRegion(antecedent):
			token.NER = model.TagStateOrProvince.String()
		case gaz.IsValidCountry(antecedent):
			token.NER = model.TagCountry.String()
		default:
			continue
		}
		rewrites++
	}
	return rewrites
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
