package mapgen

import "github.com/mitchelldurbincs/ConquestRules/internal/game/core"

// ClassicName is the registered name of the standard board.
const ClassicName = "classic"

// Classic returns the standard 42 territory, 6 continent board.
func Classic() Definition {
	return Definition{
		Name: ClassicName,
		Continents: []ContinentDef{
			{Name: "North America", Bonus: 5, Territories: []core.Territory{
				"Alaska", "Northwest Territory", "Greenland", "Alberta", "Ontario",
				"Quebec", "Western United States", "Eastern United States", "Central America",
			}},
			{Name: "South America", Bonus: 2, Territories: []core.Territory{
				"Venezuela", "Peru", "Brazil", "Argentina",
			}},
			{Name: "Europe", Bonus: 5, Territories: []core.Territory{
				"Iceland", "Scandinavia", "Ukraine", "Great Britain",
				"Northern Europe", "Western Europe", "Southern Europe",
			}},
			{Name: "Africa", Bonus: 3, Territories: []core.Territory{
				"North Africa", "Egypt", "East Africa", "Congo", "South Africa", "Madagascar",
			}},
			{Name: "Asia", Bonus: 7, Territories: []core.Territory{
				"Ural", "Siberia", "Yakutsk", "Kamchatka", "Irkutsk", "Mongolia",
				"Japan", "Afghanistan", "China", "Middle East", "India", "Siam",
			}},
			{Name: "Australia", Bonus: 2, Territories: []core.Territory{
				"Indonesia", "New Guinea", "Western Australia", "Eastern Australia",
			}},
		},
		Borders: [][2]core.Territory{
			// North America
			{"Alaska", "Northwest Territory"},
			{"Alaska", "Alberta"},
			{"Alaska", "Kamchatka"},
			{"Northwest Territory", "Alberta"},
			{"Northwest Territory", "Ontario"},
			{"Northwest Territory", "Greenland"},
			{"Greenland", "Ontario"},
			{"Greenland", "Quebec"},
			{"Greenland", "Iceland"},
			{"Alberta", "Ontario"},
			{"Alberta", "Western United States"},
			{"Ontario", "Quebec"},
			{"Ontario", "Western United States"},
			{"Ontario", "Eastern United States"},
			{"Quebec", "Eastern United States"},
			{"Western United States", "Eastern United States"},
			{"Western United States", "Central America"},
			{"Eastern United States", "Central America"},
			{"Central America", "Venezuela"},

			// South America
			{"Venezuela", "Peru"},
			{"Venezuela", "Brazil"},
			{"Peru", "Brazil"},
			{"Peru", "Argentina"},
			{"Brazil", "Argentina"},
			{"Brazil", "North Africa"},

			// Europe
			{"Iceland", "Great Britain"},
			{"Iceland", "Scandinavia"},
			{"Scandinavia", "Great Britain"},
			{"Scandinavia", "Northern Europe"},
			{"Scandinavia", "Ukraine"},
			{"Great Britain", "Northern Europe"},
			{"Great Britain", "Western Europe"},
			{"Northern Europe", "Western Europe"},
			{"Northern Europe", "Southern Europe"},
			{"Northern Europe", "Ukraine"},
			{"Western Europe", "Southern Europe"},
			{"Western Europe", "North Africa"},
			{"Southern Europe", "Ukraine"},
			{"Southern Europe", "North Africa"},
			{"Southern Europe", "Egypt"},
			{"Southern Europe", "Middle East"},
			{"Ukraine", "Ural"},
			{"Ukraine", "Afghanistan"},
			{"Ukraine", "Middle East"},

			// Africa
			{"North Africa", "Egypt"},
			{"North Africa", "East Africa"},
			{"North Africa", "Congo"},
			{"Egypt", "East Africa"},
			{"Egypt", "Middle East"},
			{"East Africa", "Congo"},
			{"East Africa", "South Africa"},
			{"East Africa", "Madagascar"},
			{"East Africa", "Middle East"},
			{"Congo", "South Africa"},
			{"South Africa", "Madagascar"},

			// Asia
			{"Ural", "Siberia"},
			{"Ural", "China"},
			{"Ural", "Afghanistan"},
			{"Siberia", "Yakutsk"},
			{"Siberia", "Irkutsk"},
			{"Siberia", "Mongolia"},
			{"Siberia", "China"},
			{"Yakutsk", "Kamchatka"},
			{"Yakutsk", "Irkutsk"},
			{"Kamchatka", "Irkutsk"},
			{"Kamchatka", "Mongolia"},
			{"Kamchatka", "Japan"},
			{"Irkutsk", "Mongolia"},
			{"Mongolia", "Japan"},
			{"Mongolia", "China"},
			{"Afghanistan", "China"},
			{"Afghanistan", "India"},
			{"Afghanistan", "Middle East"},
			{"China", "India"},
			{"China", "Siam"},
			{"Middle East", "India"},
			{"India", "Siam"},
			{"Siam", "Indonesia"},

			// Australia
			{"Indonesia", "New Guinea"},
			{"Indonesia", "Western Australia"},
			{"New Guinea", "Western Australia"},
			{"New Guinea", "Eastern Australia"},
			{"Western Australia", "Eastern Australia"},
		},
	}
}
