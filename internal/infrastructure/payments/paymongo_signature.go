package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gcash_checkout/internal/usecase/interfaces"
)

// SignatureHeader is the header PayMongo signs webhook deliveries with:
//
//	Paymongo-Signature: t=<unix seconds>,te=<test mode hmac>,li=<live mode hmac>
const SignatureHeader = "Paymongo-Signature"

type PayMongoSignatureVerifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

var _ interfaces.IWebhookSignatureVerifier = (*PayMongoSignatureVerifier)(nil)

// NewPayMongoSignatureVerifier returns nil when secret is empty, which callers
// treat as "verification disabled". A zero tolerance skips the timestamp check.
func NewPayMongoSignatureVerifier(secret string, tolerance time.Duration) *PayMongoSignatureVerifier {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil
	}
	return &PayMongoSignatureVerifier{secret: []byte(secret), tolerance: tolerance, now: time.Now}
}

// Verify checks the li signature for live mode events and the te signature
// for everything else.
func (v *PayMongoSignatureVerifier) Verify(payload []byte, signatureHeader string) error {
	sig, ok := parseSignatureHeader(signatureHeader)
	if !ok {
		return interfaces.ErrInvalidWebhookSignature
	}
	candidate := sig.test
	if eventLivemode(payload) {
		candidate = sig.live
	}
	if candidate == "" {
		return interfaces.ErrInvalidWebhookSignature
	}
	timestamp := sig.timestamp

	if v.tolerance > 0 {
		unix, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			return interfaces.ErrInvalidWebhookSignature
		}
		skew := v.now().Sub(time.Unix(unix, 0))
		if skew < 0 {
			skew = -skew
		}
		if skew > v.tolerance {
			return interfaces.ErrInvalidWebhookSignature
		}
	}

	if !hmac.Equal([]byte(candidate), []byte(Sign(v.secret, timestamp, payload))) {
		return interfaces.ErrInvalidWebhookSignature
	}
	return nil
}

// Sign computes hex(HMAC-SHA256(secret, "<timestamp>.<payload>")).
func Sign(secret []byte, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	_, _ = mac.Write([]byte(timestamp))
	_, _ = mac.Write([]byte("."))
	_, _ = mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

type signatureParts struct {
	timestamp string
	test      string
	live      string
}

func parseSignatureHeader(header string) (signatureParts, bool) {
	var parts signatureParts
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "t":
			parts.timestamp = value
		case "te":
			parts.test = value
		case "li":
			parts.live = value
		}
	}
	if parts.timestamp == "" || (parts.test == "" && parts.live == "") {
		return signatureParts{}, false
	}
	return parts, true
}

// eventLivemode reads data.attributes.livemode. Anything other than a JSON
// true counts as test mode.
func eventLivemode(payload []byte) bool {
	var env struct {
		Data struct {
			Attributes struct {
				Livemode json.RawMessage `json:"livemode"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &env); err != nil {
		return false
	}
	return string(env.Data.Attributes.Livemode) == "true"
}
