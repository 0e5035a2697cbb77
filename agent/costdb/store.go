package costdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	_ "modernc.org/sqlite"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultLimit = 10

	itemDamageIndex = "repair_costs_item_damage_key"
)

var ErrUnsupportedDriver = errors.New("unsupported cost database driver")

type Config struct {
	Driver string `envconfig:"DRIVER" split_words:"true" default:"sqlite"`
	DSN    string `envconfig:"DSN" split_words:"true" default:"costs.db"`
	Limit  int    `envconfig:"LIMIT" split_words:"true" default:"10"`
}

// Entry is one priced repair option for an item.
type Entry struct {
	bun.BaseModel `bun:"table:repair_costs,alias:rc"`

	ID              int64   `bun:"id,pk,autoincrement" json:"-"`
	ItemName        string  `bun:"item_name,notnull" json:"item_name"`
	DamageType      string  `bun:"damage_type,notnull" json:"damage_type"`
	RepairCost      float64 `bun:"repair_cost,notnull" json:"repair_cost"`
	ReplacementCost float64 `bun:"replacement_cost,notnull" json:"replacement_cost"`
	Currency        string  `bun:"currency,notnull" json:"currency"`
}

// Store looks up repair costs in a SQL database through bun.
type Store struct {
	db    *bun.DB
	limit int
}

func Open(cfg Config) (*Store, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("%w: cost database dsn is required", contractx.ErrValidation)
	}

	var db *bun.DB
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverPostgres:
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		db = bun.NewDB(sqldb, pgdialect.New())
	case DriverSQLite, "":
		sqldb, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite cost database: %w", err)
		}
		// sqlite serialises writers; a single connection avoids SQLITE_BUSY.
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	return NewStore(db, cfg.Limit), nil
}

func NewStore(db *bun.DB, limit int) *Store {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Store{db: db, limit: limit}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the repair_costs table and its (item_name, damage_type)
// unique index when missing.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*Entry)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create repair_costs table: %w", err)
	}
	if _, err := s.db.NewCreateIndex().
		Model((*Entry)(nil)).
		Unique().
		IfNotExists().
		Index(itemDamageIndex).
		Column("item_name", "damage_type").
		Exec(ctx); err != nil {
		return fmt.Errorf("create %s index: %w", itemDamageIndex, err)
	}
	return nil
}

// Seed upserts entries keyed by (item_name, damage_type), so running it
// again only refreshes prices. Within one call the last duplicate wins.
func (s *Store) Seed(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]Entry, 0, len(entries))
	seen := make(map[[2]string]int, len(entries))
	for _, e := range entries {
		e.ID = 0
		e.ItemName = strings.TrimSpace(e.ItemName)
		e.DamageType = strings.TrimSpace(e.DamageType)
		if e.ItemName == "" {
			return fmt.Errorf("%w: item name is required", contractx.ErrValidation)
		}
		if e.Currency == "" {
			e.Currency = "EUR"
		}
		key := [2]string{e.ItemName, e.DamageType}
		if i, ok := seen[key]; ok {
			rows[i] = e
			continue
		}
		seen[key] = len(rows)
		rows = append(rows, e)
	}

	if _, err := s.upsertQuery(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("insert repair costs: %w", err)
	}
	return nil
}

// Lookup returns the entries whose item name contains item, ignoring case.
func (s *Store) Lookup(ctx context.Context, item string) ([]Entry, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("%w: item name is required", contractx.ErrValidation)
	}

	var entries []Entry
	if err := s.lookupQuery(item, &entries).Scan(ctx); err != nil {
		return nil, fmt.Errorf("lookup repair costs for %q: %w", item, err)
	}
	return entries, nil
}

func (s *Store) upsertQuery(rows *[]Entry) *bun.InsertQuery {
	return s.db.NewInsert().
		Model(rows).
		On("CONFLICT (item_name, damage_type) DO UPDATE").
		Set("repair_cost = EXCLUDED.repair_cost").
		Set("replacement_cost = EXCLUDED.replacement_cost").
		Set("currency = EXCLUDED.currency")
}

func (s *Store) lookupQuery(item string, dest *[]Entry) *bun.SelectQuery {
	return s.db.NewSelect().
		Model(dest).
		Where("LOWER(rc.item_name) LIKE ?", "%"+strings.ToLower(item)+"%").
		OrderExpr("rc.item_name ASC, rc.damage_type ASC").
		Limit(s.limit)
}
