package payload

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Kind identifies a QR payload variant.
type Kind string

const (
	KindText   Kind = "text"
	KindURL    Kind = "url"
	KindTel    Kind = "tel"
	KindSMS    Kind = "sms"
	KindEmail  Kind = "email"
	KindWifi   Kind = "wifi"
	KindMeCard Kind = "mecard"
)

// Spec is the sealed set of payload variants produced by Resolve. Simple
// variants expose Content returning the exact string handed to the encoder;
// Wifi and MeCard are passed to the encoder's specialized constructors as
// structured fields instead.
type Spec interface {
	Kind() Kind
}

// Text carries free-form text encoded verbatim.
type Text struct {
	Text string
}

func (Text) Kind() Kind { return KindText }

func (t Text) Content() string { return t.Text }

// URL carries a web address. Addresses without an http:// or https:// prefix
// get https:// prepended.
type URL struct {
	URL string
}

func (URL) Kind() Kind { return KindURL }

func (u URL) Content() string {
	if strings.HasPrefix(u.URL, "http://") || strings.HasPrefix(u.URL, "https://") {
		return u.URL
	}
	return "https://" + u.URL
}

// Tel carries a phone number, encoded as a tel: URI.
type Tel struct {
	Number string
}

func (Tel) Kind() Kind { return KindTel }

func (t Tel) Content() string { return "tel:" + t.Number }

// SMS carries a phone number and optional prefilled message.
type SMS struct {
	Number  string
	Message string
}

func (SMS) Kind() Kind { return KindSMS }

// Content renders the widely supported SMSTO form. The trailing colon is
// always present, even with an empty message.
func (s SMS) Content() string {
	return "SMSTO:" + s.Number + ":" + s.Message
}

// Email carries a mailto target with optional subject and body.
type Email struct {
	To      string
	Subject string
	Body    string
}

func (Email) Kind() Kind { return KindEmail }

// Content renders a mailto: URI. The query string is built only from the
// non-empty parts, subject before body.
func (e Email) Content() string {
	var params []string
	if e.Subject != "" {
		params = append(params, "subject="+url.QueryEscape(e.Subject))
	}
	if e.Body != "" {
		params = append(params, "body="+url.QueryEscape(e.Body))
	}
	content := "mailto:" + quotePath(e.To)
	if len(params) > 0 {
		content += "?" + strings.Join(params, "&")
	}
	return content
}

// Wifi carries network credentials as structured fields. Password and
// Security are nil for open networks.
type Wifi struct {
	SSID     string
	Password *string
	Security *string
	Hidden   bool
}

func (Wifi) Kind() Kind { return KindWifi }

// MeCard carries a compact contact card. Only Name is mandatory; empty
// optional fields are omitted from the encoded card.
type MeCard struct {
	Name    string
	Phone   string
	Email   string
	URL     string
	Org     string
	Address string
	Note    string
}

func (MeCard) Kind() Kind { return KindMeCard }

// Resolve validates the loose data map for the given kind and narrows it into
// a typed payload spec. It is a pure function: the produced spec depends only
// on kind and data.
func Resolve(kind Kind, data map[string]any) (Spec, error) {
	d := fields(data)

	switch kind {
	case KindText:
		if err := d.require(kind, "text"); err != nil {
			return nil, err
		}
		return Text{Text: d.get("text")}, nil

	case KindURL:
		if err := d.require(kind, "url"); err != nil {
			return nil, err
		}
		return URL{URL: d.get("url")}, nil

	case KindTel:
		if err := d.require(kind, "number"); err != nil {
			return nil, err
		}
		return Tel{Number: d.get("number")}, nil

	case KindSMS:
		if err := d.require(kind, "number"); err != nil {
			return nil, err
		}
		return SMS{Number: d.get("number"), Message: d.get("message")}, nil

	case KindEmail:
		if err := d.require(kind, "to"); err != nil {
			return nil, err
		}
		return Email{To: d.get("to"), Subject: d.get("subject"), Body: d.get("body")}, nil

	case KindWifi:
		return resolveWifi(d)

	case KindMeCard:
		return resolveMeCard(d)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, string(kind))
	}
}

func resolveWifi(d fields) (Spec, error) {
	if err := d.require(KindWifi, "ssid"); err != nil {
		return nil, err
	}

	security := strings.ToUpper(d.get("security"))
	if security == "" {
		security = "WPA"
	}

	w := Wifi{SSID: d.get("ssid"), Hidden: d.getBool("hidden")}
	switch security {
	case "NOPASS":
		// Open network: both password and security stay nil regardless of
		// what the caller supplied.
	case "WEP", "WPA":
		password := d.get("password")
		w.Password = &password
		w.Security = &security
	default:
		return nil, &InvalidFieldError{Field: "security", Reason: `must be one of "WEP", "WPA", "nopass"`}
	}
	return w, nil
}

func resolveMeCard(d fields) (Spec, error) {
	name := d.get("name")
	first := d.get("first_name")
	last := d.get("last_name")
	if name == "" && first == "" && last == "" {
		return nil, ErrMeCardIdentity
	}
	if name == "" {
		// "last,first" with a stray comma trimmed when one half is empty.
		name = strings.Trim(strings.TrimSpace(last)+","+strings.TrimSpace(first), ",")
	}
	return MeCard{
		Name:    name,
		Phone:   d.get("phone"),
		Email:   d.get("email"),
		URL:     d.get("url"),
		Org:     d.get("org"),
		Address: d.get("address"),
		Note:    d.get("note"),
	}, nil
}

// fields wraps the raw JSON data map with typed accessors.
type fields map[string]any

// get returns the value under key rendered as a string. JSON numbers render
// without a trailing ".0", booleans as "true"/"false", null as "".
func (f fields) get(key string) string {
	switch v := f[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (f fields) getBool(key string) bool {
	v, _ := f[key].(bool)
	return v
}

// require checks that every key resolves to a non-empty string and reports
// all missing keys at once, in the order they were asked for.
func (f fields) require(kind Kind, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if f.get(k) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Kind: kind, Fields: missing}
	}
	return nil
}

const upperhex = "0123456789ABCDEF"

// quotePath percent-encodes s for use in the opaque part of a mailto: URI.
// Everything outside unreserved characters and "/" is escaped with uppercase
// hex, so spaces become %20 rather than "+".
func quotePath(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~':
		return true
	}
	return false
}
