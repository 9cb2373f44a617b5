// cmd/membership-apply/form.go
package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	processsubmission "membership-portal/internal/membership/process-submission"
	"membership-portal/internal/models"
)

const (
	fullNameFlag       = "full-name"
	emailFlag          = "email"
	telephoneFlag      = "telephone"
	postcodeFlag       = "postcode"
	membershipTypeFlag = "membership-type"
	laaFlag            = "laa"
)

// formFlags returns fresh flag values each call; the root command and the
// validate subcommand each need their own.
func formFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: fullNameFlag, Usage: "Applicant full name", EnvVars: []string{"MEMBERSHIP_FULL_NAME"}},
		&cli.StringFlag{Name: emailFlag, Usage: "Contact email address", EnvVars: []string{"MEMBERSHIP_EMAIL"}},
		&cli.StringFlag{Name: telephoneFlag, Usage: "Contact telephone number", EnvVars: []string{"MEMBERSHIP_TELEPHONE"}},
		&cli.StringFlag{Name: postcodeFlag, Usage: "UK postcode", EnvVars: []string{"MEMBERSHIP_POSTCODE"}},
		&cli.StringFlag{Name: membershipTypeFlag, Usage: "full or associate", EnvVars: []string{"MEMBERSHIP_TYPE"}},
		&cli.BoolFlag{Name: laaFlag, Usage: "Applicant holds Legal Aid Agency status"},
	}
}

// flagSource is the command-line form: the flags are the inputs.
type flagSource struct {
	form models.ApplicationForm
}

func newFlagSource(ctx *cli.Context) *flagSource {
	return &flagSource{form: models.ApplicationForm{
		FullName:       ctx.String(fullNameFlag),
		Email:          ctx.String(emailFlag),
		Telephone:      ctx.String(telephoneFlag),
		Postcode:       ctx.String(postcodeFlag),
		MembershipType: ctx.String(membershipTypeFlag),
		LAAStatus:      ctx.Bool(laaFlag),
	}}
}

func (s *flagSource) ReadForm() models.ApplicationForm { return s.form }

func (s *flagSource) Reset() { s.form = models.ApplicationForm{} }

func printNotifier(ctx *cli.Context) processsubmission.Notifier {
	return processsubmission.NotifierFunc(func(message string) {
		fmt.Fprintln(ctx.App.Writer, message)
	})
}
