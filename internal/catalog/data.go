package catalog

// games is the built-in storefront catalog. Reference data only; the service
// never writes to it. Prices are per-store, 2-decimal strings.
var games = []Game{
	{
		ID:          "1",
		Title:       "Elden Ring",
		Genres:      []string{"Action", "RPG", "Souls-like"},
		Platforms:   []string{"PC", "PlayStation", "Xbox"},
		ReleaseDate: "2022-02-25",
		Developer:   "FromSoftware",
		Publisher:   "Bandai Namco Entertainment",
		Description: "A new fantasy action RPG where you rise as a Tarnished to explore the Lands Between, a vast world full of danger and discovery.",
		Stores: []Store{
			{Name: "Steam", URL: "https://store.steampowered.com/app/1245620/ELDEN_RING/", Price: "59.99"},
			{Name: "PlayStation Store", URL: "https://store.playstation.com/en-us/product/UP0700-PPSA05916_00-ELDENRING0000000", Price: "59.99"},
			{Name: "Xbox Store", URL: "https://www.xbox.com/en-US/games/store/elden-ring/9P3J32CTXLRZ", Price: "59.99"},
		},
	},
	{
		ID:          "2",
		Title:       "Baldur's Gate 3",
		Genres:      []string{"RPG", "Turn-Based", "Fantasy"},
		Platforms:   []string{"PC", "PlayStation", "Xbox"},
		ReleaseDate: "2023-08-03",
		Developer:   "Larian Studios",
		Publisher:   "Larian Studios",
		Description: "Gather your party and return to the Forgotten Realms in this next-generation D&D RPG filled with choices and consequences.",
		Stores: []Store{
			{Name: "Steam", URL: "https://store.steampowered.com/app/1086940/Baldurs_Gate_3/", Price: "59.99"},
			{Name: "GOG", URL: "https://www.gog.com/en/game/baldurs_gate_iii", Price: "59.99"},
			{Name: "PlayStation Store", URL: "https://store.playstation.com/en-us/product/UP3526-PPSA09159_00-BG3STANDARDEDPS5", Price: "69.99"},
		},
	},
	{
		ID:          "3",
		Title:       "Cyberpunk 2077",
		Genres:      []string{"Action", "RPG", "Open World"},
		Platforms:   []string{"PC", "PlayStation", "Xbox"},
		ReleaseDate: "2020-12-10",
		Developer:   "CD Projekt Red",
		Publisher:   "CD Projekt",
		Description: "An open-world action-adventure RPG set in Night City, a megalopolis obsessed with power, glamour and body modification.",
		Stores: []Store{
			{Name: "Steam", URL: "https://store.steampowered.com/app/1091500/Cyberpunk_2077/", Price: "59.99"},
			{Name: "GOG", URL: "https://www.gog.com/en/game/cyberpunk_2077", Price: "59.99"},
			{Name: "Epic Games", URL: "https://store.epicgames.com/en-US/p/cyberpunk-2077", Price: "59.99"},
		},
	},
	{
		ID:          "4",
		Title:       "The Legend of Zelda: Tears of the Kingdom",
		Genres:      []string{"Action", "Adventure", "Open World"},
		Platforms:   []string{"Switch"},
		ReleaseDate: "2023-05-12",
		Developer:   "Nintendo",
		Publisher:   "Nintendo",
		Description: "Explore the vast land and skies of Hyrule with new abilities that let Link craft weapons and vehicles in this sequel to Breath of the Wild.",
		Stores: []Store{
			{Name: "Nintendo eShop", URL: "https://www.nintendo.com/us/store/products/the-legend-of-zelda-tears-of-the-kingdom-switch/", Price: "69.99"},
			{Name: "Amazon", URL: "https://www.amazon.com/Legend-Zelda-Tears-Kingdom-Nintendo-Switch/dp/B0C2TXWC3M", Price: "69.99"},
			{Name: "GameStop", URL: "https://www.gamestop.com/video-games/nintendo-switch/products/the-legend-of-zelda-tears-of-the-kingdom---nintendo-switch/355156.html", Price: "69.99"},
		},
	},
	{
		ID:          "5",
		Title:       "Hades",
		Genres:      []string{"Roguelike", "Action", "Indie"},
		Platforms:   []string{"PC", "PlayStation", "Xbox", "Switch"},
		ReleaseDate: "2020-09-17",
		Developer:   "Supergiant Games",
		Publisher:   "Supergiant Games",
		Description: "Defy the god of the dead as you battle out of the Underworld in this roguelike dungeon crawler with award-winning narrative.",
		Stores: []Store{
			{Name: "Steam", URL: "https://store.steampowered.com/app/1145360/Hades/", Price: "24.99"},
			{Name: "Epic Games", URL: "https://store.epicgames.com/en-US/p/hades", Price: "24.99"},
			{Name: "Nintendo eShop", URL: "https://www.nintendo.com/us/store/products/hades-switch/", Price: "24.99"},
		},
	},
	{
		ID:          "6",
		Title:       "God of War Ragnarök",
		Genres:      []string{"Action", "Adventure", "Hack and Slash"},
		Platforms:   []string{"PC", "PlayStation"},
		ReleaseDate: "2022-11-09",
		Developer:   "Santa Monica Studio",
		Publisher:   "Sony Interactive Entertainment",
		Description: "Embark on an epic journey as Kratos and Atreus struggle with holding on and letting go across the Nine Realms.",
		Stores: []Store{
			{Name: "Steam", URL: "https://store.steampowered.com/app/2322010/God_of_War_Ragnarok/", Price: "59.99"},
			{Name: "PlayStation Store", URL: "https://store.playstation.com/en-us/product/UP9000-PPSA08332_00-YOURLEGENDGODEPS", Price: "69.99"},
			{Name: "Epic Games", URL: "https://store.epicgames.com/en-US/p/god-of-war-ragnarok", Price: "59.99"},
		},
	},
	{
		ID:          "7",
		Title:       "Red Dead Redemption 2",
		Genres:      []string{"Action", "Adventure", "Open World"},
		Platforms:   []string{"PC", "PlayStation", "Xbox"},
		ReleaseDate: "2018-10-26",
		Developer:   "Rockstar Games",
		Publisher:   "Rockstar Games",
		Description: "America, 1899. Arthur Morgan and the Van der Linde gang must flee across America as federal agents hunt them down.",
		Stores: []Store{
			{Name: "Steam", URL: "https://store.steampowered.com/app/1174180/Red_Dead_Redemption_2/", Price: "59.99"},
			{Name: "Rockstar Store", URL: "https://store.rockstargames.com/en/game/buy-red-dead-redemption-2", Price: "59.99"},
			{Name: "Epic Games", URL: "https://store.epicgames.com/en-US/p/red-dead-redemption-2", Price: "59.99"},
		},
	},
	{
		ID:          "8",
		Title:       "Hollow Knight",
		Genres:      []string{"Metroidvania", "Action", "Indie"},
		Platforms:   []string{"PC", "PlayStation", "Xbox", "Switch"},
		ReleaseDate: "2017-02-24",
		Developer:   "Team Cherry",
		Publisher:   "Team Cherry",
		Description: "Descend into the depths of Hallownest, a vast ruined kingdom beneath the surface, and uncover ancient secrets.",
		Stores: []Store{
			{Name: "Steam", URL: "https://store.steampowered.com/app/367520/Hollow_Knight/", Price: "14.99"},
			{Name: "GOG", URL: "https://www.gog.com/en/game/hollow_knight", Price: "14.99"},
			{Name: "Nintendo eShop", URL: "https://www.nintendo.com/us/store/products/hollow-knight-switch/", Price: "14.99"},
		},
	},
	{
		ID:          "9",
		Title:       "The Witcher 3: Wild Hunt",
		Genres:      []string{"RPG", "Action", "Open World"},
		Platforms:   []string{"PC", "PlayStation", "Xbox", "Switch"},
		ReleaseDate: "2015-05-19",
		Developer:   "CD Projekt Red",
		Publisher:   "CD Projekt",
		Description: "As Geralt of Rivia, a monster hunter, search for the Child of Prophecy in a vast open world rich with adventure.",
		Stores: []Store{
			{Name: "Steam", URL: "https://store.steampowered.com/app/292030/The_Witcher_3_Wild_Hunt/", Price: "39.99"},
			{Name: "GOG", URL: "https://www.gog.com/en/game/the_witcher_3_wild_hunt", Price: "39.99"},
			{Name: "Epic Games", URL: "https://store.epicgames.com/en-US/p/the-witcher-3-wild-hunt", Price: "39.99"},
		},
	},
}
