package model

import "errors"

// Engine error taxonomy. Integrity-class errors (invalid pillar, parse,
// integrity) are fatal for the request that hits them: they mean the
// static tables or the calendar oracle are broken, not that the user
// supplied bad data.
var (
	// ErrInvalidPillar marks an impossible stem-branch pairing.
	ErrInvalidPillar = errors.New("invalid pillar")
	// ErrConversion marks a date the calendar oracle cannot resolve.
	ErrConversion = errors.New("calendar conversion failed")
	// ErrParse marks an oracle-returned symbol outside the closed
	// stem/branch vocabulary.
	ErrParse = errors.New("symbol parse failed")
	// ErrIntegrity marks corrupt engine input detected downstream of
	// the oracle boundary.
	ErrIntegrity = errors.New("integrity violation")
)
