package specialist

import (
	"context"

	"github.com/tanpawarit/chative-specialists/agent/costdb"
	"github.com/tanpawarit/chative-specialists/pkg/nominatim"
)

type stubGeocoder struct{}

func (stubGeocoder) Search(ctx context.Context, query string, limit int) ([]nominatim.Place, error) {
	return []nominatim.Place{{DisplayName: query, City: "Madrid", CountryCode: "es"}}, nil
}

type stubCosts struct{}

func (stubCosts) Lookup(ctx context.Context, item string) ([]costdb.Entry, error) {
	return []costdb.Entry{{ItemName: item, DamageType: "general", RepairCost: 10, ReplacementCost: 40, Currency: "EUR"}}, nil
}
