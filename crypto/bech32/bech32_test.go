package bech32

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	addr := make([]byte, 20)
	for i := range addr {
		addr[i] = byte(i + 1)
	}

	cases := map[string]struct {
		encoded     string
		wantHRP     string
		wantPayload []byte
		wantErr     bool
	}{
		"address": {
			encoded:     "iov1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5qjzkwa",
			wantHRP:     "iov",
			wantPayload: addr,
		},
		"text": {
			encoded:     "tiov1w96k7un4d5s4wtvn",
			wantHRP:     "tiov",
			wantPayload: []byte("quorum"),
		},
		"broken checksum": {
			encoded: "tiov1w96k7un4d5s4wtvp",
			wantErr: true,
		},
		"mixed case": {
			encoded: "tiov1W96k7un4d5s4wtvn",
			wantErr: true,
		},
		"no separator": {
			encoded: "tiovw96k7un4d5s4wtvn",
			wantErr: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			hrp, payload, err := Decode(tc.encoded)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("decoded %q into %x", tc.encoded, payload)
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot decode: %s", err)
			}
			if hrp != tc.wantHRP || !bytes.Equal(payload, tc.wantPayload) {
				t.Fatalf("got %q %x", hrp, payload)
			}
			raw, err := Encode(hrp, payload)
			if err != nil {
				t.Fatalf("cannot encode: %s", err)
			}
			if string(raw) != tc.encoded {
				t.Fatalf("encoded as %q", raw)
			}
		})
	}
}
