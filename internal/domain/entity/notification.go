package entity

// NotificationRequest is the ephemeral value object handed to the mail
// delivery subsystem. Variable values are strings or int64s; whether they
// match the template's declared types is checked by the subsystem, not here.
type NotificationRequest struct {
	TemplateName string                 `json:"template_name"`
	Recipients   []string               `json:"recipients"`
	Variables    map[string]interface{} `json:"variables"`
}
