package venue

// BuiltinEntries is the default allow-list of venues outside the home
// country. A deployment can extend or replace it with a YAML table (see
// LoadTable) that hot-reloads while the server runs.
func BuiltinEntries() []Entry {
	return []Entry{
		{Name: "Montevideo", Country: "Uruguay", RequiresCustoms: true},
		{Name: "Teatro de Verano", Country: "Uruguay", RequiresCustoms: true},
		{Name: "Punta del Este", Country: "Uruguay", RequiresCustoms: true},
		{Name: "Santiago", Country: "Chile", RequiresCustoms: true},
		{Name: "Movistar Arena Santiago", Country: "Chile", RequiresCustoms: true},
		{Name: "Asunción", Country: "Paraguay", RequiresCustoms: true},
		{Name: "São Paulo", Country: "Brazil", RequiresCustoms: true},
		{Name: "Rio de Janeiro", Country: "Brazil", RequiresCustoms: true},
		{Name: "Lima", Country: "Peru", RequiresCustoms: true},
		{Name: "Bogotá", Country: "Colombia", RequiresCustoms: true},
		{Name: "Ciudad de México", Country: "Mexico", RequiresCustoms: true},
		{Name: "Madrid", Country: "Spain", RequiresCustoms: true},
		{Name: "Miami", Country: "United States", RequiresCustoms: true},
	}
}
