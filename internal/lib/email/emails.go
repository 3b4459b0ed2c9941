package email

import "strconv"

// SendMemberWelcomeEmail greets a newly registered member.
func (c *Client) SendMemberWelcomeEmail(to, name string, memberID int) error {
	data := map[string]string{
		"MemberName": name,
		"MemberID":   strconv.Itoa(memberID),
	}

	return c.SendEmail(
		to,
		"Welcome to the Fitness Center!",
		TemplateMemberWelcome,
		data,
	)
}
