package qr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amanranjan113114/qr-generator/internal/payload"
	"github.com/amanranjan113114/qr-generator/internal/qr"
)

func strPtr(s string) *string { return &s }

func TestWifiContent(t *testing.T) {
	t.Parallel()

	t.Run("protected network", func(t *testing.T) {
		t.Parallel()
		content := qr.WifiContent(payload.Wifi{
			SSID:     "HomeNet",
			Password: strPtr("hunter2"),
			Security: strPtr("WPA"),
		})
		assert.Equal(t, "WIFI:T:WPA;S:HomeNet;P:hunter2;;", content)
	})

	t.Run("open network omits security and password", func(t *testing.T) {
		t.Parallel()
		content := qr.WifiContent(payload.Wifi{SSID: "OpenNet"})
		assert.Equal(t, "WIFI:S:OpenNet;;", content)
	})

	t.Run("hidden network", func(t *testing.T) {
		t.Parallel()
		content := qr.WifiContent(payload.Wifi{
			SSID:     "Secret",
			Password: strPtr("pw"),
			Security: strPtr("WEP"),
			Hidden:   true,
		})
		assert.Equal(t, "WIFI:T:WEP;S:Secret;P:pw;H:true;;", content)
	})

	t.Run("reserved characters are escaped", func(t *testing.T) {
		t.Parallel()
		content := qr.WifiContent(payload.Wifi{
			SSID:     `Net;with,specials:"\`,
			Password: strPtr("p;w"),
			Security: strPtr("WPA"),
		})
		assert.Equal(t, `WIFI:T:WPA;S:Net\;with\,specials\:\"\\;P:p\;w;;`, content)
	})
}

func TestMeCardContent(t *testing.T) {
	t.Parallel()

	t.Run("name only", func(t *testing.T) {
		t.Parallel()
		content := qr.MeCardContent(payload.MeCard{Name: "Smith,John"})
		assert.Equal(t, `MECARD:N:Smith\,John;;`, content)
	})

	t.Run("all fields in fixed order", func(t *testing.T) {
		t.Parallel()
		content := qr.MeCardContent(payload.MeCard{
			Name:    "Smith,John",
			Phone:   "+15551234567",
			Email:   "john@example.com",
			URL:     "https://example.com",
			Org:     "ACME",
			Address: "1 Main St",
			Note:    "note",
		})
		assert.Equal(t,
			`MECARD:N:Smith\,John;TEL:+15551234567;EMAIL:john@example.com;URL:https\://example.com;ORG:ACME;ADR:1 Main St;NOTE:note;;`,
			content)
	})

	t.Run("empty optional fields are dropped", func(t *testing.T) {
		t.Parallel()
		content := qr.MeCardContent(payload.MeCard{Name: "Smith", Phone: "+1555"})
		assert.Equal(t, "MECARD:N:Smith;TEL:+1555;;", content)
	})
}
