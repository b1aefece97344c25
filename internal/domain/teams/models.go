package teams

import "fmt"

const logoURLFormat = "https://cdn.nba.com/logos/nba/%d/primary/D/logo.svg"

// Team is one side of a scheduled or finished game.
type Team struct {
	TeamID  int    `json:"team_id"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Tricode string `json:"tricode"`
	Score   int    `json:"score"`
	Logo    string `json:"logo"`
}

// LogoURL builds the CDN logo link for a team id.
func LogoURL(teamID int) string {
	return fmt.Sprintf(logoURLFormat, teamID)
}
