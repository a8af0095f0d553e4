package teams

// Team is a club in the fixed team set. ID is the sports data provider's team identifier.
type Team struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
}

// DisplayName returns the full name, falling back to the short name and then the abbreviation.
func (t Team) DisplayName() string {
	switch {
	case t.FullName != "":
		return t.FullName
	case t.Name != "":
		return t.Name
	default:
		return t.Abbreviation
	}
}
