package costdb

// DefaultCatalog is the price list loaded by `costdb seed` for local setups.
func DefaultCatalog() []Entry {
	return []Entry{
		{ItemName: "Televisor", DamageType: "pantalla rota", RepairCost: 320, ReplacementCost: 549, Currency: "EUR"},
		{ItemName: "Televisor", DamageType: "no enciende", RepairCost: 120, ReplacementCost: 549, Currency: "EUR"},
		{ItemName: "Portátil", DamageType: "pantalla rota", RepairCost: 260, ReplacementCost: 899, Currency: "EUR"},
		{ItemName: "Portátil", DamageType: "teclado dañado", RepairCost: 95, ReplacementCost: 899, Currency: "EUR"},
		{ItemName: "Smartphone", DamageType: "pantalla rota", RepairCost: 180, ReplacementCost: 699, Currency: "EUR"},
		{ItemName: "Smartphone", DamageType: "batería hinchada", RepairCost: 70, ReplacementCost: 699, Currency: "EUR"},
		{ItemName: "Lavadora", DamageType: "golpe en carcasa", RepairCost: 60, ReplacementCost: 429, Currency: "EUR"},
		{ItemName: "Lavadora", DamageType: "no centrifuga", RepairCost: 150, ReplacementCost: 429, Currency: "EUR"},
		{ItemName: "Silla de oficina", DamageType: "pieza faltante", RepairCost: 25, ReplacementCost: 189, Currency: "EUR"},
		{ItemName: "Auriculares", DamageType: "no suena un lado", RepairCost: 45, ReplacementCost: 129, Currency: "EUR"},
	}
}
