package domain

type Email struct {
	From        string
	To          []string
	Subject     string
	Body        string
	Attachments []*Attachment
}
