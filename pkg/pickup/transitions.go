package pickup

import (
	"foodshare-backend/domain"
)

// Actor identifies who is driving a donation status change.
const (
	ActorPickup = "pickup"
	ActorAdmin  = "admin"
	ActorSystem = "system"
)

// transition defines a legal donation status change and who may perform it.
type transition struct {
	From  string
	To    string
	Actor string
}

// donationTransitions is the authoritative lifecycle definition. Donation
// status moves forward only: available → picked_up → delivered, with
// expiry as a system-driven exit from available. Cancelling a pending
// pickup is the one backwards edge.
var donationTransitions = []transition{
	{From: domain.DonationStatusAvailable, To: domain.DonationStatusPickedUp, Actor: ActorPickup},
	{From: domain.DonationStatusPickedUp, To: domain.DonationStatusDelivered, Actor: ActorPickup},
	{From: domain.DonationStatusPickedUp, To: domain.DonationStatusDelivered, Actor: ActorAdmin},
	{From: domain.DonationStatusPickedUp, To: domain.DonationStatusAvailable, Actor: ActorPickup},
	{From: domain.DonationStatusPickedUp, To: domain.DonationStatusAvailable, Actor: ActorAdmin},
	{From: domain.DonationStatusAvailable, To: domain.DonationStatusExpired, Actor: ActorSystem},
}

var transitionSet = func() map[transition]bool {
	m := make(map[transition]bool, len(donationTransitions))
	for _, t := range donationTransitions {
		m[t] = true
	}
	return m
}()

// canTransition reports whether actor may move a donation from one status
// to another. Same-state moves are a no-op and always allowed.
func canTransition(from, to, actor string) bool {
	if from == to {
		return true
	}
	return transitionSet[transition{From: from, To: to, Actor: actor}]
}
