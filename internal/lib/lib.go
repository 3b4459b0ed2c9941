// Package lib holds integrations that sit outside the request layers:
// the Resend email client (lib/email) and the asynq job worker that
// delivers member welcome emails (lib/job).
package lib
