package notify

import (
	"fmt"
	"strings"
)

// BuildInviteSubject renders the invite subject line.
func BuildInviteSubject(inv Invite) string {
	if inv.JobTitle == "" {
		return "Your interview is scheduled"
	}
	return fmt.Sprintf("Your interview for %s is scheduled", inv.JobTitle)
}

// BuildInviteBody renders the plain-text invite body. The link line is
// omitted when the URL was withheld.
func BuildInviteBody(inv Invite) string {
	var b strings.Builder

	name := inv.CandidateName
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "Hi %s,\n\n", name)

	if inv.JobTitle != "" {
		fmt.Fprintf(&b, "Your interview for the %s position is scheduled for %s.\n\n", inv.JobTitle, inv.StartsAtLocal)
	} else {
		fmt.Fprintf(&b, "Your interview is scheduled for %s.\n\n", inv.StartsAtLocal)
	}

	if inv.URL != "" {
		fmt.Fprintf(&b, "Join here at the scheduled time:\n%s\n\n", inv.URL)
		b.WriteString("The link activates 15 minutes before your start time. ")
		b.WriteString("Please have your ID card ready and allow camera and microphone access.\n")
	} else {
		b.WriteString("You will receive your interview link separately.\n")
	}

	b.WriteString("\nGood luck!\n")
	return b.String()
}
