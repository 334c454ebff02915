package pickup

import (
	"testing"

	"foodshare-backend/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name  string
		from  string
		to    string
		actor string
		want  bool
	}{
		{"claim", domain.DonationStatusAvailable, domain.DonationStatusPickedUp, ActorPickup, true},
		{"deliver", domain.DonationStatusPickedUp, domain.DonationStatusDelivered, ActorPickup, true},
		{"deliver by admin", domain.DonationStatusPickedUp, domain.DonationStatusDelivered, ActorAdmin, true},
		{"cancel claim", domain.DonationStatusPickedUp, domain.DonationStatusAvailable, ActorPickup, true},
		{"expire", domain.DonationStatusAvailable, domain.DonationStatusExpired, ActorSystem, true},
		{"same state no-op", domain.DonationStatusDelivered, domain.DonationStatusDelivered, ActorPickup, true},

		{"claim by system", domain.DonationStatusAvailable, domain.DonationStatusPickedUp, ActorSystem, false},
		{"expire by pickup", domain.DonationStatusAvailable, domain.DonationStatusExpired, ActorPickup, false},
		{"skip to delivered", domain.DonationStatusAvailable, domain.DonationStatusDelivered, ActorPickup, false},
		{"revive delivered", domain.DonationStatusDelivered, domain.DonationStatusAvailable, ActorAdmin, false},
		{"revive expired", domain.DonationStatusExpired, domain.DonationStatusAvailable, ActorSystem, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, canTransition(tc.from, tc.to, tc.actor))
		})
	}
}
