// Package patterns exposes named regex source strings for common data
// formats, ready to pass to stringgen.New. Each constant deliberately
// avoids \w \d \s \W \D \S and '.' shorthand classes so its shape
// stays independent of any alphabet override.
package patterns

const (
	// UUID4 matches a version-4 UUID.
	UUID4 = "[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}"
	// ObjectID matches a 24-hex-digit Mongo-style object ID.
	ObjectID = "[a-f0-9]{24}"

	// IPv4 matches a dotted-quad address with each octet in 0-255.
	IPv4 = "(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])\\." +
		"(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])\\." +
		"(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])\\." +
		"(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])"
	// IPv6Short matches an eight-group lowercase-hex IPv6 address.
	IPv6Short = "[a-f0-9]{1,4}(:[a-f0-9]{1,4}){7}"
	// MACAddress matches a colon-separated six-octet MAC address.
	MACAddress = "[a-f0-9]{2}(:[a-f0-9]{2}){5}"

	// HexColor matches a six-digit '#rrggbb' color.
	HexColor = "#[a-fA-F0-9]{6}"
	// HexColorShort matches a three-digit '#rgb' color.
	HexColorShort = "#[a-fA-F0-9]{3}"
	// Slug matches a lowercase dash-separated URL slug.
	Slug = "[a-z][a-z0-9]*(-[a-z0-9]+){1,5}"

	// Semver matches a bare MAJOR.MINOR.PATCH version (no pre-release
	// or build metadata).
	Semver = "(0|[1-9][0-9]*)\\.(0|[1-9][0-9]*)\\.(0|[1-9][0-9]*)"
	// DateISO matches a YYYY-MM-DD date in the 2020s/2030s.
	DateISO = "20[2-3][0-9]-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])"
	// Time24h matches an HH:MM:SS 24-hour time.
	Time24h = "([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]"

	// JWTLike matches three dot-separated base64url-ish segments,
	// shaped like a JSON Web Token but without decoding its contents.
	JWTLike = "[A-Za-z0-9_-]{20,40}\\.[A-Za-z0-9_-]{20,60}\\.[A-Za-z0-9_-]{20,40}"
	// APIKey matches a Stripe-style "sk_live_..." / "pk_test_..." key.
	APIKey = "(sk|pk)_(live|test)_[a-zA-Z0-9]{20}"
)
