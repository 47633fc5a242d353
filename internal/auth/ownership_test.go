package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOwnership(t *testing.T) {
	cases := []struct {
		name      string
		claimed   string
		principal string
		allowed   bool
	}{
		{name: "same identifier", claimed: "u1", principal: "u1", allowed: true},
		{name: "other identifier", claimed: "u2", principal: "u1"},
		{name: "missing claim", claimed: "", principal: "u1"},
		{name: "case differs", claimed: "U1", principal: "u1"},
		{name: "both empty", claimed: "", principal: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckOwnership(tc.claimed, tc.principal)
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrOwnershipMismatch)
		})
	}
}
