package repository

import (
	"time"

	"kidsplatform/internal/domain"
)

// Versioned migration chain. Each step lifts a document exactly one schema
// version; Load runs the chain until the document is current. A document
// without a schemaVersion field is treated as version 1.

type migration func(p *domain.UserProfile, now time.Time)

var migrations = map[int]migration{
	1: migrateV1toV2,
}

func migrate(p *domain.UserProfile, now time.Time) {
	v := p.SchemaVersion
	if v < 1 {
		v = 1
	}
	for v < CurrentSchemaVersion {
		step, ok := migrations[v]
		if !ok {
			break
		}
		step(p, now)
		v++
	}
	p.SchemaVersion = CurrentSchemaVersion
}

// v1 profiles predate the pet update: stars and level only. v2 introduces
// coins, ownership sets, the pet map and per-activity levels.
func migrateV1toV2(p *domain.UserProfile, now time.Time) {
	if p.Coins == 0 {
		p.Coins = defaultCoins
	}
	fillDefaults(p, p.ID, now)
}
