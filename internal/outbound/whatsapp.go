// Package outbound builds links into the messaging app used for orders.
package outbound

import (
	"net/url"
	"strings"
)

const (
	DefaultNumber = "212689941995"

	// CTAMessage is prefilled on the main call-to-action.
	CTAMessage = "مرحبًا، أريد الطلب من متجر BIOMAE DELICE."
)

type WhatsApp struct {
	Number string
}

// URL returns the wa.me deep link carrying message as prefilled text.
func (w WhatsApp) URL(message string) string {
	number := w.Number
	if number == "" {
		number = DefaultNumber
	}
	return "https://wa.me/" + number + "?text=" + EncodeURIComponent(message)
}

// OrderMessage is the prefilled text for ordering one product.
func OrderMessage(name, price string) string {
	return "مرحبًا، أريد طلب " + name + " بسعر " + price + "."
}

// EncodeURIComponent percent-encodes s for use as a query value. Spaces
// become %20 rather than '+', matching what the browser produces.
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
