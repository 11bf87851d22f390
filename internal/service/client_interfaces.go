package service

import (
	"context"

	"github.com/MKhiriev/go-tg-userbot/models"
)

// ClientSessionService establishes an authenticated transport session.
type ClientSessionService interface {
	// Start connects using the credentials held in cfg, prompting the
	// operator for missing or rejected credentials and for the second-factor
	// password when the account requires one. It loops until a session is
	// authenticated and returns cfg with the credentials actually used.
	//
	// A generic connection failure removes the stored record before the
	// operator is asked again. A failed second-factor password never does.
	// Returns only when the operator quits or ctx is canceled.
	Start(ctx context.Context, cfg models.Configuration) (models.Configuration, error)
}

// ClientSelectorService lets the operator choose which conversations to
// monitor for the rest of the run.
type ClientSelectorService interface {
	// Select lists the groups and channels visible to the session and
	// returns the identifiers the operator chose, in selection order. A
	// saved selection in cfg is offered for reuse first; a fresh pick is
	// persisted together with the rest of cfg. An empty result means there
	// is nothing to monitor.
	Select(ctx context.Context, cfg models.Configuration) ([]int64, error)

	// Resolve maps identifiers to conversation snapshots, keeping the order
	// of ids and skipping identifiers no longer visible to the session.
	Resolve(ctx context.Context, ids []int64) ([]models.Conversation, error)
}
