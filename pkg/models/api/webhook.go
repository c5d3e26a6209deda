package api

// WebhookMessage is the JSON body of one notification POST.
type WebhookMessage struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}
