package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateMemberWelcome corresponds to templates/member_welcome.html
	TemplateMemberWelcome Template = "member_welcome"
)

// File is the template's file name inside the embedded templates directory.
func (t Template) File() string {
	return string(t) + ".html"
}
