package mail

type AutomationEmailData struct {
	Name    string
	Subject string
	Body    string
}
