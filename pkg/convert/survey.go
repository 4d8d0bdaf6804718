package convert

import (
	"fmt"
	"strings"

	"github.com/solidata/solidata/internal/vocab"
	"github.com/solidata/solidata/pkg/normalize"
	"github.com/solidata/solidata/pkg/schema"
)

// Survey field IDs the survey transform reads from its source schema. The
// source schema itself is loaded from a YAML declaration alongside the
// survey export, since surveys add and drop questions between rounds.
var surveyRequired = []schema.FieldID{
	"id", "name", "description", "approved", "activity", "location",
	"address_a", "address_b", "address_c", "address_d", "address_e",
	"email", "phone", "website", "facebook", "twitter",
}

// structureFieldIDs returns the survey sub-question field IDs for the
// organisational-structure question, in vocabulary order.
func structureFieldIDs() []schema.FieldID {
	ids := make([]schema.FieldID, len(vocab.OrganisationalStructureLabels))
	for ix := range ids {
		ids[ix] = schema.FieldID(fmt.Sprintf("structure_SQ%03d", ix+1))
	}
	return ids
}

// secondaryActivityFieldIDs returns the survey sub-question field IDs for
// the secondary-activities question. Numbering starts at SQ002; the survey
// never issued an SQ001 for this question.
func secondaryActivityFieldIDs() []schema.FieldID {
	ids := make([]schema.FieldID, len(vocab.SecondaryActivityLabels))
	for ix := range ids {
		ids[ix] = schema.FieldID(fmt.Sprintf("secondaryActivities_SQ%03d", ix+2))
	}
	return ids
}

// NewSurveyConverter maps raw survey export rows onto the standard schema.
//
// Survey exports are semicolon-delimited. Rows not marked approved are
// dropped. Multi-choice questions arrive as one Y/empty column per choice
// and are folded into sub-field lists; contact fields are run through the
// normalizers, with malformed values replaced by an empty default rather
// than failing the batch.
func NewSurveyConverter(from *schema.Schema, opts ...Option) *Converter {
	structIDs := structureFieldIDs()
	secondaryIDs := secondaryActivityFieldIDs()

	required := append([]schema.FieldID{}, surveyRequired...)
	required = append(required, structIDs...)
	required = append(required, secondaryIDs...)

	transform := func(rec schema.Record) ([]schema.Record, error) {
		if !strings.EqualFold(rec.Value("approved"), "yes") {
			return nil, nil
		}

		// The location cell holds "lat;lng" when the respondent pinned
		// a map location.
		latitude, longitude := splitLocation(rec.Value("location"))

		out := schema.Record{
			schema.FieldIdentifier:  rec.Value("id"),
			schema.FieldName:        rec.Value("name"),
			schema.FieldDescription: rec.Value("description"),
			schema.FieldStructure: joinChecked(rec, structIDs,
				vocab.OrganisationalStructureLabels),
			schema.FieldPrimaryActivity: vocab.PrimaryActivities[rec.Value("activity")],
			schema.FieldActivities: joinChecked(rec, secondaryIDs,
				vocab.SecondaryActivityLabels),
			schema.FieldStreetAddress: joinNonEmpty(
				rec.Value("address_a"), rec.Value("address_b"), rec.Value("address_c")),
			schema.FieldLocality:        rec.Value("address_d"),
			schema.FieldRegion:          "",
			schema.FieldPostcode:        strings.ToUpper(rec.Value("address_e")),
			schema.FieldCountryName:     "",
			schema.FieldHomepage:        normalize.URL(rec.Value("website"), ""),
			schema.FieldPhone:           normalize.Phone(rec.Value("phone")),
			schema.FieldEmail:           rec.Value("email"),
			schema.FieldTwitter:         normalize.Twitter(rec.Value("twitter")),
			schema.FieldFacebook:        normalize.FacebookHandle(rec.Value("facebook")),
			schema.FieldCompaniesHouse:  "",
			schema.FieldLatitude:        latitude,
			schema.FieldLongitude:       longitude,
			schema.FieldGeoContainer:    "",
			schema.FieldGeoContainerLat: "",
			schema.FieldGeoContainerLon: "",
		}
		return []schema.Record{out}, nil
	}

	opts = append([]Option{
		WithInputComma(';'),
		WithRequired(required...),
	}, opts...)
	return New(from, schema.StandardV1, transform, opts...)
}

// joinChecked collects the labels whose survey checkbox column holds "Y"
// into one sub-field list.
func joinChecked(rec schema.Record, ids []schema.FieldID, labels []string) string {
	var picked []string
	for ix, id := range ids {
		if rec.Value(id) == "Y" {
			picked = append(picked, labels[ix])
		}
	}
	return strings.Join(picked, schema.SubFieldSeparator)
}

// joinNonEmpty folds address lines into one sub-field list, skipping blanks.
func joinNonEmpty(vals ...string) string {
	var kept []string
	for _, val := range vals {
		if val != "" {
			kept = append(kept, val)
		}
	}
	return strings.Join(kept, schema.SubFieldSeparator)
}

// splitLocation splits a "lat;lng" cell, tolerating missing parts.
func splitLocation(location string) (latitude, longitude string) {
	parts := strings.SplitN(location, ";", 2)
	if len(parts) > 0 {
		latitude = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		longitude = strings.TrimSpace(parts[1])
	}
	return latitude, longitude
}
