package models

// WebhookMessage - тело сообщения Discord-вебхука с одним embed
type WebhookMessage struct {
	Username   string         `json:"username"`
	AvatarURL  string         `json:"avatar_url"`
	Content    string         `json:"content"`
	Embeds     []WebhookEmbed `json:"embeds"`
	Components []any          `json:"components"`
}

type WebhookEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description"`
	Timestamp   string              `json:"timestamp"`
	URL         string              `json:"url"`
	Author      WebhookEmbedAuthor  `json:"author"`
	Image       struct{}            `json:"image"`
	Thumbnail   struct{}            `json:"thumbnail"`
	Footer      WebhookEmbedFooter  `json:"footer"`
	Fields      []WebhookEmbedField `json:"fields"`
}

type WebhookEmbedAuthor struct {
	Name string `json:"name"`
}

type WebhookEmbedFooter struct {
	Text string `json:"text"`
}

type WebhookEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}
