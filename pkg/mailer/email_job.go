package mailer

// EmailJob is the JSON payload placed on the RabbitMQ queue for the mail
// worker. Text is the plain body; HTML is optional.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// WelcomeEmail builds the job enqueued after a successful registration.
func WelcomeEmail(to, name string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Welcome to Inkpress",
		Text:    "Hi " + name + ",\n\nYour account is ready. Happy writing!",
		HTML:    "<p>Hi " + name + ",</p><p>Your account is ready. Happy writing!</p>",
	}
}
