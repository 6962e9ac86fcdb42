package audible

import "fmt"

// Locale describes one Audible marketplace.
type Locale struct {
	CountryCode   string // Two-letter code used to select the marketplace
	Domain        string // Top-level domain of the marketplace (e.g. "com", "co.uk")
	MarketplaceID string // Amazon marketplace identifier
}

// APIURL returns the base URL of the marketplace's customer API.
func (l Locale) APIURL() string {
	return fmt.Sprintf("https://api.audible.%s", l.Domain)
}

// AuthURL returns the base URL of the marketplace's auth endpoint.
func (l Locale) AuthURL() string {
	return fmt.Sprintf("https://www.audible.%s", l.Domain)
}

// Locales lists the supported marketplaces, keyed by country code.
var Locales = map[string]Locale{
	"us": {CountryCode: "us", Domain: "com", MarketplaceID: "AF2M0KC94RCEA"},
	"uk": {CountryCode: "uk", Domain: "co.uk", MarketplaceID: "A2I9A3Q2GNFNGQ"},
	"de": {CountryCode: "de", Domain: "de", MarketplaceID: "AN7V1F1VY261K"},
	"fr": {CountryCode: "fr", Domain: "fr", MarketplaceID: "A2728XDNODOQ8T"},
	"ca": {CountryCode: "ca", Domain: "ca", MarketplaceID: "A2CQZ5RBY40XE"},
	"au": {CountryCode: "au", Domain: "com.au", MarketplaceID: "AN7EY7DTAW63G"},
	"in": {CountryCode: "in", Domain: "in", MarketplaceID: "AJO3FBRUE6J4S"},
	"it": {CountryCode: "it", Domain: "it", MarketplaceID: "A2N7FU2W2BU2ZC"},
	"es": {CountryCode: "es", Domain: "es", MarketplaceID: "ALMIKO4SZCSAR"},
	"jp": {CountryCode: "jp", Domain: "co.jp", MarketplaceID: "A1QAP3MOU4173J"},
}

// LocaleFor looks up the marketplace for a country code.
func LocaleFor(countryCode string) (Locale, error) {
	loc, ok := Locales[countryCode]
	if !ok {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, countryCode)
	}
	return loc, nil
}
