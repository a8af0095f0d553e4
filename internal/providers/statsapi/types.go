package statsapi

type scheduleResponse struct {
	TotalGames int            `json:"totalGames"`
	Dates      []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk       int           `json:"gamePk"`
	GameDate     string        `json:"gameDate"`
	OfficialDate string        `json:"officialDate"`
	Status       gameStatus    `json:"status"`
	Teams        scheduleTeams `json:"teams"`
	Venue        namedRef      `json:"venue"`
	DoubleHeader string        `json:"doubleHeader"`
	GameNumber   int           `json:"gameNumber"`
}

type gameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	CodedGameState    string `json:"codedGameState"`
	DetailedState     string `json:"detailedState"`
	StartTimeTBD      bool   `json:"startTimeTBD"`
}

type scheduleTeams struct {
	Away scheduleTeam `json:"away"`
	Home scheduleTeam `json:"home"`
}

type scheduleTeam struct {
	Team            namedRef   `json:"team"`
	ProbablePitcher *personRef `json:"probablePitcher"`
}

type namedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type personRef struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type boxscoreResponse struct {
	Teams     boxscoreTeams `json:"teams"`
	Officials []official    `json:"officials"`
}

type boxscoreTeams struct {
	Away boxscoreTeam `json:"away"`
	Home boxscoreTeam `json:"home"`
}

type boxscoreTeam struct {
	Team         namedRef                  `json:"team"`
	BattingOrder []int                     `json:"battingOrder"`
	Pitchers     []int                     `json:"pitchers"`
	Players      map[string]boxscorePlayer `json:"players"`
}

type boxscorePlayer struct {
	Person       personRef   `json:"person"`
	JerseyNumber string      `json:"jerseyNumber"`
	Position     positionRef `json:"position"`
}

type positionRef struct {
	Abbreviation string `json:"abbreviation"`
}

type official struct {
	Official     personRef `json:"official"`
	OfficialType string    `json:"officialType"`
}

type peopleResponse struct {
	People []person `json:"people"`
}

type person struct {
	ID            int     `json:"id"`
	FullName      string  `json:"fullName"`
	PrimaryNumber string  `json:"primaryNumber"`
	PitchHand     codeRef `json:"pitchHand"`
}

type codeRef struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
