package schema

// Standard field IDs for the canonical initiative schema. Code should use
// these rather than header text, so header wording stays an output concern.
const (
	FieldIdentifier       FieldID = "id"
	FieldName             FieldID = "name"
	FieldDescription      FieldID = "description"
	FieldStructure        FieldID = "organisational_structure"
	FieldPrimaryActivity  FieldID = "primary_activity"
	FieldActivities       FieldID = "activities"
	FieldStreetAddress    FieldID = "street_address"
	FieldLocality         FieldID = "locality"
	FieldRegion           FieldID = "region"
	FieldPostcode         FieldID = "postcode"
	FieldCountryName      FieldID = "country_name"
	FieldHomepage         FieldID = "homepage"
	FieldPhone            FieldID = "phone"
	FieldEmail            FieldID = "email"
	FieldTwitter          FieldID = "twitter"
	FieldFacebook         FieldID = "facebook"
	FieldCompaniesHouse   FieldID = "companies_house_number"
	FieldLatitude         FieldID = "latitude"
	FieldLongitude        FieldID = "longitude"
	FieldGeoContainer     FieldID = "geocontainer"
	FieldGeoContainerLat  FieldID = "geocontainer_lat"
	FieldGeoContainerLon  FieldID = "geocontainer_lon"
)

// SubFieldSeparator is the delimiter used within a cell to encode
// list-valued fields in the standard schema.
const SubFieldSeparator = ";"

// UniqueKeys lists the field IDs that together uniquely identify a row in
// the standard schema.
var UniqueKeys = []FieldID{FieldIdentifier}

// StandardV1 is version one of the canonical initiative schema that all
// source data is converted into.
//
// Latitude/Longitude hold the exact geolocation of the initiative when
// known. When only a postcode or address is known, the Geo Container
// fields hold the location of that containing area instead; they are
// populated by the geocoding pass, not by hand.
var StandardV1 = MustNew("sse_initiatives", "Solidarity Economy Initiatives",
	[]Field{
		{ID: FieldIdentifier, Header: "Identifier", Desc: "A unique identifier for this initiative"},
		{ID: FieldName, Header: "Name"},
		{ID: FieldDescription, Header: "Description"},
		{ID: FieldStructure, Header: "Organisational Structure",
			Comment: "Formerly legal_form. Values come from the ESSGLOBAL legal-form vocabulary."},
		{ID: FieldPrimaryActivity, Header: "Primary Activity"},
		{ID: FieldActivities, Header: "Activities"},
		{ID: FieldStreetAddress, Header: "Street Address"},
		{ID: FieldLocality, Header: "Locality"},
		{ID: FieldRegion, Header: "Region"},
		{ID: FieldPostcode, Header: "Postcode"},
		{ID: FieldCountryName, Header: "Country Name"},
		{ID: FieldHomepage, Header: "Website"},
		{ID: FieldPhone, Header: "Phone"},
		{ID: FieldEmail, Header: "Email"},
		{ID: FieldTwitter, Header: "Twitter"},
		{ID: FieldFacebook, Header: "Facebook"},
		{ID: FieldCompaniesHouse, Header: "Companies House Number"},
		{ID: FieldLatitude, Header: "Latitude"},
		{ID: FieldLongitude, Header: "Longitude"},
		{ID: FieldGeoContainer, Header: "Geo Container"},
		{ID: FieldGeoContainerLat, Header: "Geo Container Latitude"},
		{ID: FieldGeoContainerLon, Header: "Geo Container Longitude"},
	},
	WithVersion(1),
	WithComment("Initial version"),
)

// Versions lists the standard schema versions in order of creation.
// Field IDs are stable within a version and must not be renamed.
var Versions = []*Schema{StandardV1}

// Latest is the most recent standard schema version.
var Latest = Versions[len(Versions)-1]
