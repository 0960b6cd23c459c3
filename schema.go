package socketkit

// fieldKind is the primitive kind a schema field accepts.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInteger
	kindNumber
	kindBool
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindInteger:
		return "integer"
	case kindNumber:
		return "number"
	case kindBool:
		return "boolean"
	}
	return "unknown"
}

// fieldSpec describes one type-specific field of an event schema.
type fieldSpec struct {
	Name     string
	Kind     fieldKind
	Required bool
}

// schema is the structural contract for one event type. Strict schemas
// reject fields outside the declared set.
type schema struct {
	Fields []fieldSpec
	Strict bool
}

const (
	fieldLibraryVersion  = "library_version"
	fieldLocale          = "locale"
	fieldPlatform        = "platform"
	fieldOSName          = "os_name"
	fieldOSVersion       = "os_version"
	fieldDeviceName      = "device_name"
	fieldCarrier         = "carrier"
	fieldProductName     = "product_name"
	fieldProductPrice    = "product_price"
	fieldProductCurrency = "product_currency"
	fieldProductQuantity = "product_quantity"
	fieldDistinctID      = "distinct_id"
	fieldReferer         = "referer"
	fieldPushToken       = "push_token"
	fieldIsOptOut        = "is_opt_out"
)

// schemaRegistry is the closed mapping from event type to schema.
// Adding a new event type means adding an entry here and a variant to
// EventType; nothing is negotiated at runtime.
var schemaRegistry = map[EventType]schema{
	EventAppOpen: {
		Strict: true,
		Fields: []fieldSpec{
			{Name: fieldLibraryVersion, Kind: kindString, Required: true},
			{Name: fieldLocale, Kind: kindString},
			{Name: fieldPlatform, Kind: kindString},
			{Name: fieldOSName, Kind: kindString},
			{Name: fieldOSVersion, Kind: kindString},
			{Name: fieldDeviceName, Kind: kindString},
			{Name: fieldCarrier, Kind: kindString},
		},
	},
	EventInAppPurchase: {
		Strict: true,
		Fields: []fieldSpec{
			{Name: fieldProductName, Kind: kindString, Required: true},
			{Name: fieldProductPrice, Kind: kindNumber, Required: true},
			{Name: fieldProductCurrency, Kind: kindString, Required: true},
			{Name: fieldProductQuantity, Kind: kindInteger},
		},
	},
	EventSetClient: {
		Strict: true,
		Fields: []fieldSpec{
			{Name: fieldDistinctID, Kind: kindString, Required: true},
			{Name: fieldReferer, Kind: kindString},
			{Name: fieldPushToken, Kind: kindString},
			{Name: fieldIsOptOut, Kind: kindBool},
		},
	},
	EventCustom: {
		Strict: true,
	},
}

// lookupSchema returns the schema for an event type.
func lookupSchema(t EventType) (schema, bool) {
	s, ok := schemaRegistry[t]
	return s, ok
}
