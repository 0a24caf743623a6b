package content

// DefaultIcon is used when a lesson carries an unknown icon tag
const DefaultIcon = "book-open"

// iconIdentifiers enumerates the icon tags lessons may carry and the
// client-side identifier each resolves to. Resolution happens here at
// content-load time; there is no runtime name-based lookup.
var iconIdentifiers = map[string]string{
	"book":     "book-open",
	"hand":     "hand-waving",
	"numbers":  "list-ordered",
	"family":   "users",
	"food":     "utensils",
	"animals":  "paw-print",
	"colors":   "palette",
	"calendar": "calendar-days",
}

// ResolveIcon maps a lesson icon tag to its icon identifier, falling
// back to DefaultIcon for unknown tags.
func ResolveIcon(tag string) string {
	if id, ok := iconIdentifiers[tag]; ok {
		return id
	}
	return DefaultIcon
}
