package qr

import (
	"strings"

	"github.com/amanranjan113114/qr-generator/internal/payload"
)

// contentEscaper backslash-escapes the characters reserved by the WIFI: and
// MECARD: formats.
var contentEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

// WifiContent assembles the WIFI: network configuration string understood by
// phone cameras. Security and password segments are omitted for open
// networks, the hidden flag only when set.
func WifiContent(w payload.Wifi) string {
	var b strings.Builder
	b.WriteString("WIFI:")
	if w.Security != nil {
		b.WriteString("T:")
		b.WriteString(*w.Security)
		b.WriteString(";")
	}
	b.WriteString("S:")
	b.WriteString(contentEscaper.Replace(w.SSID))
	b.WriteString(";")
	if w.Password != nil {
		b.WriteString("P:")
		b.WriteString(contentEscaper.Replace(*w.Password))
		b.WriteString(";")
	}
	if w.Hidden {
		b.WriteString("H:true;")
	}
	b.WriteString(";")
	return b.String()
}

// MeCardContent assembles a MECARD: contact card. Empty optional fields are
// dropped entirely.
func MeCardContent(m payload.MeCard) string {
	var b strings.Builder
	b.WriteString("MECARD:N:")
	b.WriteString(contentEscaper.Replace(m.Name))
	b.WriteString(";")
	writeMeCardField(&b, "TEL", m.Phone)
	writeMeCardField(&b, "EMAIL", m.Email)
	writeMeCardField(&b, "URL", m.URL)
	writeMeCardField(&b, "ORG", m.Org)
	writeMeCardField(&b, "ADR", m.Address)
	writeMeCardField(&b, "NOTE", m.Note)
	b.WriteString(";")
	return b.String()
}

func writeMeCardField(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	b.WriteString(tag)
	b.WriteString(":")
	b.WriteString(contentEscaper.Replace(value))
	b.WriteString(";")
}
