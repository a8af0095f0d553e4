package teams

// mlbTeams lists all 30 clubs keyed by their MLB Stats API team id.
var mlbTeams = []Team{
	{ID: "109", Abbreviation: "ARI", Name: "Diamondbacks", FullName: "Arizona Diamondbacks"},
	{ID: "144", Abbreviation: "ATL", Name: "Braves", FullName: "Atlanta Braves"},
	{ID: "110", Abbreviation: "BAL", Name: "Orioles", FullName: "Baltimore Orioles"},
	{ID: "111", Abbreviation: "BOS", Name: "Red Sox", FullName: "Boston Red Sox"},
	{ID: "112", Abbreviation: "CHC", Name: "Cubs", FullName: "Chicago Cubs"},
	{ID: "145", Abbreviation: "CWS", Name: "White Sox", FullName: "Chicago White Sox"},
	{ID: "113", Abbreviation: "CIN", Name: "Reds", FullName: "Cincinnati Reds"},
	{ID: "114", Abbreviation: "CLE", Name: "Guardians", FullName: "Cleveland Guardians"},
	{ID: "115", Abbreviation: "COL", Name: "Rockies", FullName: "Colorado Rockies"},
	{ID: "116", Abbreviation: "DET", Name: "Tigers", FullName: "Detroit Tigers"},
	{ID: "117", Abbreviation: "HOU", Name: "Astros", FullName: "Houston Astros"},
	{ID: "118", Abbreviation: "KC", Name: "Royals", FullName: "Kansas City Royals"},
	{ID: "108", Abbreviation: "LAA", Name: "Angels", FullName: "Los Angeles Angels"},
	{ID: "119", Abbreviation: "LAD", Name: "Dodgers", FullName: "Los Angeles Dodgers"},
	{ID: "146", Abbreviation: "MIA", Name: "Marlins", FullName: "Miami Marlins"},
	{ID: "158", Abbreviation: "MIL", Name: "Brewers", FullName: "Milwaukee Brewers"},
	{ID: "142", Abbreviation: "MIN", Name: "Twins", FullName: "Minnesota Twins"},
	{ID: "121", Abbreviation: "NYM", Name: "Mets", FullName: "New York Mets"},
	{ID: "147", Abbreviation: "NYY", Name: "Yankees", FullName: "New York Yankees"},
	{ID: "133", Abbreviation: "OAK", Name: "Athletics", FullName: "Oakland Athletics"},
	{ID: "143", Abbreviation: "PHI", Name: "Phillies", FullName: "Philadelphia Phillies"},
	{ID: "134", Abbreviation: "PIT", Name: "Pirates", FullName: "Pittsburgh Pirates"},
	{ID: "135", Abbreviation: "SD", Name: "Padres", FullName: "San Diego Padres"},
	{ID: "137", Abbreviation: "SF", Name: "Giants", FullName: "San Francisco Giants"},
	{ID: "136", Abbreviation: "SEA", Name: "Mariners", FullName: "Seattle Mariners"},
	{ID: "138", Abbreviation: "STL", Name: "Cardinals", FullName: "St. Louis Cardinals"},
	{ID: "139", Abbreviation: "TB", Name: "Rays", FullName: "Tampa Bay Rays"},
	{ID: "140", Abbreviation: "TEX", Name: "Rangers", FullName: "Texas Rangers"},
	{ID: "141", Abbreviation: "TOR", Name: "Blue Jays", FullName: "Toronto Blue Jays"},
	{ID: "120", Abbreviation: "WSH", Name: "Nationals", FullName: "Washington Nationals"},
}

var defaultDirectory = NewDirectory(mlbTeams)

// Default returns the directory of all 30 MLB clubs.
func Default() *Directory {
	return defaultDirectory
}
