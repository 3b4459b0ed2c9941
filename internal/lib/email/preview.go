package email

// PreviewData contains sample template data for local preview/testing.
//
//	PreviewData[TemplateMemberWelcome]["MemberName"] == "Jane Doe"
var PreviewData = map[Template]map[string]string{
	TemplateMemberWelcome: {
		"MemberName": "Jane Doe",
		"MemberID":   "42",
	},
}
