// Package vocab holds the shared, immutable lookup tables used by the
// conversion and deduplication stages: stop words, name synonym rules, the
// activity and organisational-structure vocabularies, and country codes.
// The tables are read-only; they are loaded once and never mutated.
package vocab

// StopWords are the small words removed from initiative names before
// fuzzy comparison. Matched case-insensitively against the uppercased name.
var StopWords = []string{"on", "the", "and", "ltd", "limited", "llp", "community", "SCCL"}

// NameSynonyms maps spelling variants to canonical tokens. Applied after
// stop-word removal, against the uppercased name. An empty replacement
// removes the token entirely.
var NameSynonyms = []struct {
	From, To string
}{
	{"COOPERATIVE", "COOP"},
	{"SCCL", ""},
}

// PrimaryActivities maps survey activity codes to their display labels.
var PrimaryActivities = map[string]string{
	"SQ001": "Arts, Media, Culture & Leisure",
	"SQ002": "Campaigning, Activism & Advocacy",
	"SQ003": "Community & Collective Spaces",
	"SQ004": "Education",
	"SQ005": "Energy",
	"SQ006": "Food",
	"SQ007": "Goods & Services",
	"SQ008": "Health, Social Care & Wellbeing",
	"SQ009": "Housing",
	"SQ010": "Money & Finance",
	"SQ011": "Nature, Conservation & Environment",
	"SQ012": "Reduce, Reuse, Repair & Recycle",
}

// SecondaryActivityLabels lists the secondary-activity labels in survey
// sub-question order (SQ002..SQ013).
var SecondaryActivityLabels = []string{
	"Arts, Media, Culture & Leisure",
	"Campaigning, Activism & Advocacy",
	"Community & Collective Spaces",
	"Education",
	"Energy",
	"Food",
	"Goods & Services",
	"Health, Social Care & Wellbeing",
	"Housing",
	"Money & Finance",
	"Nature, Conservation & Environment",
	"Reduce, Reuse, Repair & Recycle",
}

// OrganisationalStructureLabels lists the legal-form labels in survey
// sub-question order (SQ001..SQ012). The labels are prefLabels from the
// ESSGLOBAL legal-form vocabulary.
var OrganisationalStructureLabels = []string{
	"Community group (formal or informal)",
	"Not-for-profit organisation",
	"Social enterprise",
	"Charity",
	"Company (Other)",
	"Workers co-operative",
	"Housing co-operative",
	"Consumer co-operative",
	"Producer co-operative",
	"Multi-stakeholder co-operative",
	"Community Interest Company (CIC)",
	"Community Benefit Society / Industrial and Provident Society (IPS)",
}
