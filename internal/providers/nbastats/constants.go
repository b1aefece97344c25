package nbastats

import "time"

const (
	providerName = "nbastats"

	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultReferer     = "https://www.nba.com/"
	defaultOrigin      = "https://www.nba.com"

	defaultBreakerFailures = 5
	defaultBreakerCooldown = 60 * time.Second

	leagueID          = "00"
	seasonTypeRegular = "Regular Season"
	perModeTotals     = "Totals"
	scoreboardDate    = "2006-01-02"
	maxErrorBody      = 512
)

// Endpoint paths under the stats base URL.
const (
	endpointScoreboard      = "/scoreboardv3"
	endpointBoxScore        = "/boxscoretraditionalv3"
	endpointBoxScoreSummary = "/boxscoresummaryv3"
	endpointStandings       = "/leaguestandingsv3"
	endpointCareerStats     = "/playercareerstats"
	endpointAllPlayers      = "/commonallplayers"
)

// Result set names inside resultSets payloads.
const (
	resultStandings       = "Standings"
	resultSeasonTotals    = "SeasonTotalsRegularSeason"
	resultCareerTotals    = "CareerTotalsRegularSeason"
	resultCommonAllPlayer = "CommonAllPlayers"
	// Traded players get one row per team plus a combined row with this team abbreviation.
	combinedTeamAbbr = "TOT"
)
