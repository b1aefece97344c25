package news

// PublishTimeLayout is the UTC layout used for ArticleInfo.PublishTime.
const PublishTimeLayout = "2006-01-02T15:04:05Z"

// ArticleInfo is one headline returned by /news/.
type ArticleInfo struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Href        string `json:"href"`
	PublishTime string `json:"publish_time"`
}
