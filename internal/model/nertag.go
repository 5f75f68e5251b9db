package model

// NERTag is the closed enumeration of recognized entity types.
type NERTag int

const (
	TagPerson NERTag = iota
	TagOrganization
	TagCity
	TagStateOrProvince
	TagCountry
	TagNationality
	TagReligion
	TagTitle
	TagDate
	TagNumber
	TagDuration
	TagCauseOfDeath
	TagCriminalCharge
	TagIdeology
	TagURL
	TagMisc
)

var tagNames = map[NERTag]string{
	TagPerson:          "PERSON",
	TagOrganization:    "ORGANIZATION",
	TagCity:            "CITY",
	TagStateOrProvince: "STATE_OR_PROVINCE",
	TagCountry:         "COUNTRY",
	TagNationality:     "NATIONALITY",
	TagReligion:        "RELIGION",
	TagTitle:           "TITLE",
	TagDate:            "DATE",
	TagNumber:          "NUMBER",
	TagDuration:        "DURATION",
	TagCauseOfDeath:    "CAUSE_OF_DEATH",
	TagCriminalCharge:  "CRIMINAL_CHARGE",
	TagIdeology:        "IDEOLOGY",
	TagURL:             "URL",
	TagMisc:            "MISC",
}

func (t NERTag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// tagLookup maps a tag string to the ordered set of NERTag values it denotes.
// Canonical names map to a single tag; coarse location labels fan out to the
// geographic tags from widest to narrowest. Unknown strings map to nothing.
var tagLookup = map[string][]NERTag{
	"PERSON":            {TagPerson},
	"PER":               {TagPerson},
	"ORGANIZATION":      {TagOrganization},
	"ORG":               {TagOrganization},
	"CITY":              {TagCity},
	"STATE_OR_PROVINCE": {TagStateOrProvince},
	"COUNTRY":           {TagCountry},
	"NATIONALITY":       {TagNationality},
	"RELIGION":          {TagReligion},
	"TITLE":             {TagTitle},
	"DATE":              {TagDate},
	"NUMBER":            {TagNumber},
	"DURATION":          {TagDuration},
	"CAUSE_OF_DEATH":    {TagCauseOfDeath},
	"CRIMINAL_CHARGE":   {TagCriminalCharge},
	"IDEOLOGY":          {TagIdeology},
	"URL":               {TagURL},
	"MISC":              {TagMisc},
	"LOC":               {TagCountry, TagStateOrProvince, TagCity},
	"LOCATION":          {TagCountry, TagStateOrProvince, TagCity},
	"GPE":               {TagCountry, TagStateOrProvince, TagCity},
}

// TagsFromString resolves a tag string to the NERTag values it maps to, in
// deterministic order. A string may map to zero, one, or several tags; callers
// iterate over all of them.
func TagsFromString(s string) []NERTag {
	return tagLookup[s]
}
